package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

// FileSink writes UTF-8, comma separated files.
type FileSink struct{}

func NewFileSink() *FileSink {
	return &FileSink{}
}

// Write stages the sheet in a temp file next to path and renames it into
// place, so a failed run never leaves a truncated file behind.
func (s *FileSink) Write(path string, sheet entity.Sheet) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, sheet); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}

// Encode writes the header followed by every record.
func Encode(w io.Writer, sheet entity.Sheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sheet.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteAll(sheet.Records); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return nil
}
