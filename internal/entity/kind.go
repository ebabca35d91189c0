package entity

import (
	"path/filepath"
	"strings"
)

// ExportKind names the two supported input shapes.
type ExportKind string

const (
	KindRoster    ExportKind = "roster"
	KindVolunteer ExportKind = "volunteer"
)

// KindForPath picks the pipeline from the file extension: .txt files are
// volunteer exports, everything else is treated as a roster.
func KindForPath(path string) ExportKind {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return KindVolunteer
	}
	return KindRoster
}

func (k ExportKind) Format() SourceFormat {
	if k == KindVolunteer {
		return VolunteerFormat
	}
	return RosterFormat
}

func (k ExportKind) OutputFileName() string {
	if k == KindVolunteer {
		return VolunteersFileName
	}
	return ContactsFileName
}

// OutputPath places the fixed output file next to the input file.
func (k ExportKind) OutputPath(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), k.OutputFileName())
}
