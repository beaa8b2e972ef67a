package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

type ExportStatus string

const (
	ExportPending   ExportStatus = "pending"
	ExportCompleted ExportStatus = "completed"
	ExportFailed    ExportStatus = "failed"
)

// ExportJob records one PDF export request. Jobs live in memory only;
// there is no persistent job store.
type ExportJob struct {
	ID         uuid.UUID             `json:"id"`
	SessionID  uuid.UUID             `json:"session_id"`
	Variant    model.TemplateVariant `json:"variant"`
	Filename   string                `json:"filename"`
	Status     ExportStatus          `json:"status"`
	Error      string                `json:"error,omitempty"`
	OutputPath string                `json:"output_path,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}
