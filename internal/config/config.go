// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Inputs
	Job     string `json:"job,omitempty"`      // Path to job posting text file
	JobURL  string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from
	DataDir string `json:"data_dir,omitempty"` // Directory of source documents

	// Outputs
	Output  string `json:"output,omitempty"`   // Final document path
	OutDir  string `json:"out_dir,omitempty"`  // Artifact directory
	LogFile string `json:"log_file,omitempty"` // Stage transcript path

	// Generation
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	APIKey      string   `json:"api_key,omitempty"`
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks field values and cross-field constraints.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("config error: field %s fails %q", fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.DataDir != "" {
		if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: data directory not found: %s", c.DataDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a copy with empty fields filled from defaults.
// Used to apply config file values as defaults under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Temperature == nil {
		result.Temperature = defaults.Temperature
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	return result
}
