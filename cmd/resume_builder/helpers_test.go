package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/downquark7/resume-builder/internal/config"
)

func TestResolveJobInputURL(t *testing.T) {
	got, err := resolveJobInput(config.Config{JobURL: "https://example.com/job"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/job", got)
}

func TestResolveJobInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend Engineer\nGo required."), 0o644))

	got, err := resolveJobInput(config.Config{Job: path})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nGo required.", got)
}

func TestResolveJobInputMissingFile(t *testing.T) {
	_, err := resolveJobInput(config.Config{Job: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job file")
}

func TestResolveJobInputEmpty(t *testing.T) {
	got, err := resolveJobInput(config.Config{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadConfigFlagsOnly(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig("", config.Config{DataDir: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoadConfigMergesFileUnderFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"data_dir": "`+dir+`", "model": "gemini-2.5-pro"}`), 0o644))

	cfg, err := loadConfig(cfgPath, config.Config{Model: "gemini-2.5-flash"})
	require.NoError(t, err)
	// Flag values win over the config file.
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoadConfigInvalidCombination(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("job"), 0o644))

	_, err := loadConfig("", config.Config{
		DataDir: dir,
		Job:     jobPath,
		JobURL:  "https://example.com/job",
	})
	require.Error(t, err)
}
