package entity

import "strings"

// RawRow is one input record keyed by header name.
type RawRow map[string]string

// Get returns the value for column, or "" when the column is absent.
func (r RawRow) Get(column string) string {
	return r[column]
}

// Trimmed is Get with surrounding whitespace removed.
func (r RawRow) Trimmed(column string) string {
	return strings.TrimSpace(r[column])
}

type Encoding string

const (
	EncodingLatin1 Encoding = "ISO-8859-1"
	EncodingUTF16  Encoding = "UTF-16"
	EncodingUTF8   Encoding = "UTF-8"
)

// SourceFormat describes how an export file is laid out on disk.
type SourceFormat struct {
	Delimiter   rune
	Encoding    Encoding
	TrimHeaders bool
}

var (
	// Team roster exports from the event platform.
	RosterFormat = SourceFormat{Delimiter: ',', Encoding: EncodingLatin1}

	// Volunteer exports are tab separated UTF-16 text.
	VolunteerFormat = SourceFormat{Delimiter: '\t', Encoding: EncodingUTF16, TrimHeaders: true}
)
