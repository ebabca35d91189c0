package usecase

import (
	"context"
	"io"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

// RowSource yields raw rows keyed by header name.
type RowSource interface {
	Read(path string, format entity.SourceFormat) ([]entity.RawRow, error)
	Decode(r io.Reader, format entity.SourceFormat) ([]entity.RawRow, error)
}

// RowSink persists a finished sheet. It must not leave a partial file behind
// when it fails.
type RowSink interface {
	Write(path string, sheet entity.Sheet) error
}

// ResultNotifier is told about every finished run, successful or not.
type ResultNotifier interface {
	NotifyConversion(ctx context.Context, result ConversionResult) error
}

type ConversionRecorder interface {
	RecordConversion(kind entity.ExportKind, status string, rowsIn, rowsOut int)
}
