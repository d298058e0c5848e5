package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/jobs/123"))
	assert.True(t, IsURL("  HTTP://example.com  "))
	assert.False(t, IsURL("Senior Go Engineer at Acme"))
	assert.False(t, IsURL("ftp://example.com"))
}

func TestIngestRawTextVerbatim(t *testing.T) {
	out, err := Ingest(context.Background(), "  We need a Go engineer.  \n\n  Remote OK. ")
	require.NoError(t, err)
	assert.Equal(t, "We need a Go engineer.\nRemote OK.", out)
}

func TestIngestFromURL(t *testing.T) {
	body := strings.Repeat("Design and operate Go services in production. ", 20)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><article>" + body + "</article></body></html>"))
	}))
	defer server.Close()

	out, err := Ingest(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Go services in production")
}

func TestIngestFetchErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := Ingest(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Staff Engineer \n role "), 0o644))

	out, err := IngestFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer\nrole", out)

	_, err = IngestFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}
