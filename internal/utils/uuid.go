package utils

import "github.com/google/uuid"

// UUIDGenerator issues session ids. Version 7 ids sort by creation time,
// which keeps the sessions primary key index append-mostly.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random version 4 id when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
