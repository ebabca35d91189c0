package router

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/mailchimp-organizer/internal/infra/csvio"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/http/handlers"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/metrics"
	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()

	uc := usecase.NewConvertFileUseCase(csvio.NewFileSource(), csvio.NewFileSink(), nil, usecase.RosterOptions{})
	uc.Recorder = metrics.NewRecorder(reg)

	h := New(
		handlers.NewConvertHandler(uc, 1<<20),
		handlers.NewHealthHandler(nil, false),
		Options{Registry: reg},
	)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func upload(t *testing.T, url, name, content string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(handlers.UploadField, name)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(url, mw.FormDataContentType(), &body)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouterHealth(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRouterConvertAndMetrics(t *testing.T) {
	srv := newServer(t)

	resp := upload(t, srv.URL+"/convert/roster", "teams.csv",
		"Program,Team Number,Active Team,LC1 Email\nftc,7,Active,coach@example.com\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	csv, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(csv), "coach@example.com")
	assert.Contains(t, string(csv), "FTC7")

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(text), `conversions_total{kind="roster",status="completed"} 1`)
	assert.Contains(t, string(text), `http_requests_total{method="POST",path="/convert/roster",status="200"} 1`)
}

func TestRouterUnknownRoute(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/convert/unknown", "text/plain", strings.NewReader("x"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
