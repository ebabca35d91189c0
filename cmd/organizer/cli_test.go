package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

func TestSelectPath(t *testing.T) {
	var prompt bytes.Buffer

	path, err := selectPath(strings.NewReader("ignored\n"), &prompt, []string{" teams.csv "})
	require.NoError(t, err)
	assert.Equal(t, "teams.csv", path)
	assert.Empty(t, prompt.String())

	path, err = selectPath(strings.NewReader("\"/tmp/My Export.txt\"\n"), &prompt, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/My Export.txt", path)
	assert.Contains(t, prompt.String(), "Export file")

	_, err = selectPath(strings.NewReader(""), &prompt, nil)
	assert.True(t, usecase.IsCancelled(err))

	_, err = selectPath(strings.NewReader("  \n"), &prompt, []string{""})
	assert.ErrorIs(t, err, usecase.ErrCancelled)
}

func TestReportMessages(t *testing.T) {
	var out bytes.Buffer
	reportSuccess(&out, "/data/mailchimp_contacts.csv")
	assert.Equal(t, "Success: Mailchimp contacts saved to:\n/data/mailchimp_contacts.csv\n", out.String())

	out.Reset()
	reportFailure(&out, errors.New("failed to read roster file: boom"))
	assert.Equal(t, "Error: Failed to process file:\nfailed to read roster file: boom\n", out.String())
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCommandWritesContacts(t *testing.T) {
	t.Setenv("QUEUE_URL", "")
	t.Setenv("MAIL_HOST", "")
	dir := t.TempDir()
	input := filepath.Join(dir, "teams.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"Program,Team Number,Active Team,LC1 Name,LC1 Email\nFRC,118,Active,Jane Doe,jane@example.com\n",
	), 0o644))

	stdout, _, err := execute(t, "", "convert", input)
	require.NoError(t, err)

	output := filepath.Join(dir, "mailchimp_contacts.csv")
	assert.Contains(t, stdout, "Success: Mailchimp contacts saved to:\n"+output)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "jane@example.com,Jane,Doe,FRC Coach/Mentor")
}

func TestConvertCommandFailure(t *testing.T) {
	_, stderr, err := execute(t, "", "roster", filepath.Join(t.TempDir(), "missing.csv"))

	assert.ErrorIs(t, err, errReported)
	assert.True(t, strings.HasPrefix(stderr, "Error: Failed to process file:\nfailed to read roster file:"))
}

func TestConvertCommandCancelled(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	stdout, stderr, err := execute(t, "\n", "convert")

	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.NotContains(t, stdout, "Success")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
