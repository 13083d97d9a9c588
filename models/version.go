package models

// ServerVersion is the body of the version endpoint.
type ServerVersion struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
