package usecase

import (
	"io"
	"time"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type ConvertFileInput struct {
	Path string
	// Kind forces a pipeline; empty picks one from the file extension.
	Kind entity.ExportKind
}

type ConvertFileOutput struct {
	RunID       string
	Kind        entity.ExportKind
	InputPath   string
	OutputPath  string
	RowsRead    int
	RowsWritten int
}

type ConvertStreamInput struct {
	FileName string
	Kind     entity.ExportKind
	Body     io.Reader
}

type ConvertStreamOutput struct {
	RunID    string
	Kind     entity.ExportKind
	FileName string
	RowsRead int
	Sheet    entity.Sheet
}

// ConversionResult is what notifiers receive once a run is over.
type ConversionResult struct {
	RunID       string            `json:"run_id"`
	Kind        entity.ExportKind `json:"kind"`
	Status      string            `json:"status"`
	InputPath   string            `json:"input_path"`
	OutputPath  string            `json:"output_path,omitempty"`
	RowsRead    int               `json:"rows_read"`
	RowsWritten int               `json:"rows_written"`
	Error       string            `json:"error,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	FinishedAt  time.Time         `json:"finished_at"`
}

func (r ConversionResult) Succeeded() bool {
	return r.Status == StatusCompleted
}
