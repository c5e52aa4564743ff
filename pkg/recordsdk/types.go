package recordsdk

import "time"

// Status discriminators carried in every response body, independent of the
// HTTP status code.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ============================================================================
// Records
// ============================================================================

// Record is the wire form of one row of the records collection.
type Record struct {
	// ID is assigned by the server and never changes
	ID int64 `json:"id" example:"1"`

	// Name is the only mutable field and is never blank
	Name string `json:"name" example:"Widget"`

	// CreatedAt is set once at insertion (RFC 3339, UTC)
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
}

// RecordRequest is the body of POST /api/data and PUT /api/data/{id}.
type RecordRequest struct {
	Name string `json:"name" example:"Widget"`
}

// ListRecordsResponse is returned by GET /api/data.
type ListRecordsResponse struct {
	Status string   `json:"status" example:"ok"`
	Data   []Record `json:"data"`
}

// RecordResponse is returned by POST /api/data and PUT /api/data/{id}.
type RecordResponse struct {
	Status string `json:"status" example:"ok"`
	Data   Record `json:"data"`
}

// MessageResponse carries a status and a human readable message. It is the
// body of GET /, GET /api/health and DELETE /api/data/{id}.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Deleted successfully"`
}

// ErrorResponse is the body of every 4xx/5xx response from the records API.
// For database failures Message is the upstream error text, unmodified.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Name is required"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for the probe endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok", "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
