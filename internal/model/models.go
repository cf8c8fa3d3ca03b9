package model

// ExportRequest configures one export run.
type ExportRequest struct {
	Analysis string `json:"analysis"`            // path to a JSON-serialized analysis result
	Metadata string `json:"metadata"`            // path or URL of the metadata CSV
	OutFile  string `json:"outFile,omitempty"`   // output CSV name; empty means a synthesized name
	NoWrite  bool   `json:"noWrite,omitempty"`   // compute the table without writing a file
	Timeout  string `json:"timeout,omitempty"`   // maximum run duration, e.g. "5m"
}

// Export run statuses.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ExportRun is the stored record of one export run.
type ExportRun struct {
	ID         string        `json:"id"`
	Spec       ExportRequest `json:"spec"`
	Status     string        `json:"status"`
	OutputPath string        `json:"outputPath,omitempty"`
	RowCount   int           `json:"rowCount"`
	ColCount   int           `json:"colCount"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt"`
}
