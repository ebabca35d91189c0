package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

func utf16File(t *testing.T, s string) []byte {
	t.Helper()
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDecodeRosterLatin1(t *testing.T) {
	raw := []byte("Program,Team Number,Active Team,LC1 Name,LC1 Email\n" +
		"FRC,118,Active,Jos\xe9 Pe\xf1a,jose@example.com\n" +
		"FTC,42,Inactive\n")

	rows, err := NewFileSource().Decode(bytes.NewReader(raw), entity.RosterFormat)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "José Peña", rows[0].Get("LC1 Name"))
	assert.Equal(t, "118", rows[0].Get("Team Number"))

	_, present := rows[1]["LC1 Email"]
	assert.False(t, present)
	assert.Equal(t, "", rows[1].Get("LC1 Email"))
}

func TestDecodeVolunteerUTF16(t *testing.T) {
	text := " Email \tPreferred Name\tVolunteer Roles\r\n" +
		"bob@example.com\tBob\tJudge, Referee\r\n"

	rows, err := NewFileSource().Decode(bytes.NewReader(utf16File(t, text)), entity.VolunteerFormat)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob@example.com", rows[0].Get("Email"))
	assert.Equal(t, "Judge, Referee", rows[0].Get("Volunteer Roles"))
}

func TestDecodeKeepsUntrimmedRosterHeaders(t *testing.T) {
	rows, err := NewFileSource().Decode(strings.NewReader(" Program ,x\nFRC,1\n"), entity.RosterFormat)

	require.NoError(t, err)
	assert.Equal(t, "FRC", rows[0].Get(" Program "))
	assert.Equal(t, "", rows[0].Get("Program"))
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := NewFileSource().Decode(strings.NewReader(""), entity.RosterFormat)
	assert.ErrorIs(t, err, ErrNoHeader)

	rows, err := NewFileSource().Decode(strings.NewReader("Email\n"), entity.RosterFormat)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeUnsupportedEncoding(t *testing.T) {
	_, err := NewFileSource().Decode(strings.NewReader("a\n"), entity.SourceFormat{Encoding: "EBCDIC"})
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewFileSource().Read(filepath.Join(t.TempDir(), "nope.csv"), entity.RosterFormat)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volunteers.txt")
	require.NoError(t, os.WriteFile(path, utf16File(t, "Email\tProgram\na@b.c\tFLL\n"), 0o600))

	rows, err := NewFileSource().Read(path, entity.VolunteerFormat)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "FLL", rows[0].Get("Program"))
}
