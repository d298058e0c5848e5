package main

import (
	"context"
	"fmt"
	"os"

	"github.com/downquark7/resume-builder/internal/config"
	"github.com/downquark7/resume-builder/internal/llm"
)

// loadConfig merges an optional config file under the CLI flag values.
func loadConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		if err := flags.Validate(); err != nil {
			return flags, err
		}
		return flags, nil
	}

	fileCfg, err := config.Load(configPath)
	if err != nil {
		return flags, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

// newClient builds the gateway client from the merged configuration.
// The API key falls back to GEMINI_API_KEY.
func newClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: set --api-key, the api_key config field, or GEMINI_API_KEY")
	}

	llmCfg := llm.DefaultConfig().WithModel(cfg.Model)
	if cfg.Temperature != nil {
		llmCfg = llmCfg.WithTemperature(float32(*cfg.Temperature))
	}

	return llm.NewClient(ctx, llmCfg, apiKey)
}

// resolveJobInput returns the job posting reference for the pipeline: the
// URL when given, otherwise the job file's contents, otherwise empty.
func resolveJobInput(cfg config.Config) (string, error) {
	if cfg.JobURL != "" {
		return cfg.JobURL, nil
	}
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", cfg.Job, err)
		}
		return string(data), nil
	}
	return "", nil
}
