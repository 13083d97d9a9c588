package models

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Sessions string `json:"sessions"`
}

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
