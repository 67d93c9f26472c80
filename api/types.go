package api

import (
	"time"

	"github.com/Sagarika1109/Network-Security-Scanner/scanner"
)

// ScanTask represents a scanning job managed by the API service.
type ScanTask struct {
	// ID is the immutable identifier of the scan task (UUID v4).
	ID string `json:"id" format:"uuid" example:"a3f5c62e-1234-4f72-a84a-1c2d3e4f5678"`
	// Status reflects the asynchronous lifecycle state of the task.
	Status string `json:"status" enums:"pending,running,completed,failed" example:"pending"`
	// Target is the hostname or IP submitted for the scan.
	Target string `json:"target" example:"scanme.nmap.org"`
	// Ports is the requested port selection as comma-separated values and
	// ranges. Empty means the default 1-1024 range.
	Ports string `json:"ports" example:"22,80,443,1000-1100"`
	// Threads bounds the number of concurrent probes.
	Threads int `json:"threads" example:"100"`
	// TimeoutSeconds is the per-port connect timeout.
	TimeoutSeconds float64 `json:"timeout_seconds" example:"0.5"`
	// Banner enables banner grabbing on open ports.
	Banner bool `json:"banner" example:"false"`
	// Report is attached once the task completes.
	Report *scanner.Report `json:"report,omitempty"`
	// CreatedAt records when the API accepted the scan request (UTC).
	CreatedAt time.Time `json:"created_at" format:"date-time"`
	// CompletedAt is set once the task reaches a terminal state.
	CompletedAt *time.Time `json:"completed_at,omitempty" format:"date-time"`
	// Error contains context when a task fails.
	Error string `json:"error,omitempty" example:"unable to resolve target"`
}

// CreateScanRequest is the payload for creating new scan tasks.
type CreateScanRequest struct {
	// Target is the hostname or IP address the scanner should probe.
	Target string `json:"target" binding:"required" example:"scanme.nmap.org"`
	// Ports combines single ports and inclusive ranges (e.g. 22,80,1000-1050).
	// Defaults to 1-1024 when omitted.
	Ports string `json:"ports" example:"443,8443,10000-10100"`
	// Threads bounds concurrent probes; defaults to 100.
	Threads int `json:"threads" binding:"omitempty,min=1,max=1000" example:"100"`
	// TimeoutSeconds is the per-port connect timeout; defaults to 0.5.
	TimeoutSeconds float64 `json:"timeout_seconds" binding:"omitempty,gt=0" example:"0.5"`
	// Banner requests banner grabbing on open ports.
	Banner bool `json:"banner" example:"true"`
}

// ScanAcceptedResponse is the asynchronous acknowledgement returned after
// job submission.
type ScanAcceptedResponse struct {
	// ID is the queued task identifier clients poll with.
	ID string `json:"id" format:"uuid" example:"a3f5c62e-1234-4f72-a84a-1c2d3e4f5678"`
	// Status is always pending immediately after acceptance.
	Status string `json:"status" enums:"pending" example:"pending"`
}

// ErrorResponse provides a consistent structure for API error payloads.
type ErrorResponse struct {
	// Error is a human-readable explanation of why the request failed.
	Error string `json:"error" example:"task not found"`
}
