// Package llm provides the text-generation gateway abstraction and its
// Gemini implementation. Every pipeline stage goes through a Client; the
// rest of the codebase never touches a provider SDK directly.
package llm

import (
	"os"
	"strconv"
)

// Provider represents a text-generation backend.
type Provider string

// Provider constants define supported backends.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// DefaultModel is used when neither config nor environment names a model.
const DefaultModel = "gemini-2.5-flash"

// Config holds the per-run generation settings. Model and Temperature are
// optional; zero values defer to the provider defaults.
type Config struct {
	Provider    Provider
	Model       string
	Temperature *float32
}

// DefaultConfig returns the Gemini configuration, with model and temperature
// taken from RESUME_MODEL / RESUME_TEMPERATURE when set.
func DefaultConfig() *Config {
	cfg := &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
	if m := os.Getenv("RESUME_MODEL"); m != "" {
		cfg.Model = m
	}
	if t := os.Getenv("RESUME_TEMPERATURE"); t != "" {
		if f, err := strconv.ParseFloat(t, 32); err == nil {
			temp := float32(f)
			cfg.Temperature = &temp
		}
	}
	return cfg
}

// WithModel returns a copy of the config with the model overridden.
// An empty model keeps the existing value.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}

// WithTemperature returns a copy of the config with the temperature overridden.
func (c *Config) WithTemperature(temp float32) *Config {
	out := *c
	out.Temperature = &temp
	return &out
}
