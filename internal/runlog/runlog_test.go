package runlog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRecordFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log := New(path)

	log.Append("clean_job_description", "cleaned text\n", "")
	log.Append("shorten_file", "shortened", "category=skills")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	headerRe := regexp.MustCompile(`(?m)^--- \[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] stage=clean_job_description$`)
	assert.True(t, headerRe.MatchString(content), "header missing: %q", content)
	assert.Contains(t, content, "stage=shorten_file category=skills")
	assert.Contains(t, content, "cleaned text\n\n")

	records := strings.Count(content, "--- [")
	assert.Equal(t, 2, records)
}

func TestAppendIsBestEffort(t *testing.T) {
	// Path inside a missing directory: writes fail and must be swallowed.
	log := New(filepath.Join(t.TempDir(), "absent", "run.log"))
	assert.NotPanics(t, func() {
		log.Append("build_yaml_resume", "doc", "")
	})
}

func TestNilLogIsSafe(t *testing.T) {
	var log *Log
	assert.NotPanics(t, func() {
		log.Append("stage", "content", "")
	})
	assert.Equal(t, "", log.Path())
	assert.Nil(t, New(""))
}
