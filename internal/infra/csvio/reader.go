package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

// ErrNoHeader is returned for an input with no header line at all.
var ErrNoHeader = errors.New("file has no header row")

// FileSource reads delimited exports from disk.
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

func (s *FileSource) Read(path string, format entity.SourceFormat) ([]entity.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.Decode(f, format)
}

// Decode parses r according to format. Each row is keyed by the header line;
// short rows simply lack the trailing columns.
func (s *FileSource) Decode(r io.Reader, format entity.SourceFormat) ([]entity.RawRow, error) {
	dec, err := decoderFor(format.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec.NewDecoder()))
	cr.Comma = format.Delimiter
	if cr.Comma == 0 {
		cr.Comma = ','
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if format.TrimHeaders {
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
	}

	var rows []entity.RawRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}

		row := make(entity.RawRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func decoderFor(enc entity.Encoding) (encoding.Encoding, error) {
	switch enc {
	case entity.EncodingLatin1:
		return charmap.ISO8859_1, nil
	case entity.EncodingUTF16:
		// BOM wins when present, little-endian otherwise.
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case entity.EncodingUTF8, "":
		return unicode.UTF8, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
}
