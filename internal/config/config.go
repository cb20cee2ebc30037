// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package config builds the explicit, validated settings for one promptrun
// invocation from flags, the environment, an optional .env file and an
// optional .promptrun.yaml in the base directory.
package config

import "fmt"

// Provider names an LLM API.
type Provider string

// Supported providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Default models, used when neither the environment nor the config file
// names one.
const (
	DefaultOpenAIModel    = "gpt-5"
	DefaultAnthropicModel = "claude-opus-4-1-20250805"
)

// ParseProvider converts a flag value to a Provider.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(s); p {
	case ProviderOpenAI, ProviderAnthropic:
		return p, nil
	default:
		return "", fmt.Errorf("unknown provider %q (must be openai or anthropic)", s)
	}
}

// APIKeyEnv returns the environment variable holding the provider's API key.
func (p Provider) APIKeyEnv() string {
	if p == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// ModelEnv returns the environment variable that overrides the model.
func (p Provider) ModelEnv() string {
	if p == ProviderAnthropic {
		return "CLAUDE_MODEL"
	}
	return "OPENAI_MODEL"
}

// BaseURLEnv returns the environment variable that overrides the API
// endpoint.
func (p Provider) BaseURLEnv() string {
	if p == ProviderAnthropic {
		return "ANTHROPIC_BASE_URL"
	}
	return "OPENAI_BASE_URL"
}

// DefaultModel returns the built-in model for the provider.
func (p Provider) DefaultModel() string {
	if p == ProviderAnthropic {
		return DefaultAnthropicModel
	}
	return DefaultOpenAIModel
}

// Config is the resolved configuration for one run. It is built once by
// Load and passed explicitly to the code that needs it.
type Config struct {
	Provider Provider
	BaseDir  string
	APIKey   string
	Model    string

	// BaseURL overrides the provider endpoint when non-empty.
	BaseURL string

	// MaxTokens and Temperature are zero/nil when the provider default applies.
	MaxTokens   int
	Temperature *float64
}

// FileConfig represents the contents of a .promptrun.yaml file.
type FileConfig struct {
	OpenAI    ProviderConfig `yaml:"openai,omitempty"`
	Anthropic ProviderConfig `yaml:"anthropic,omitempty"`
}

// ProviderConfig holds per-provider settings in the config file.
type ProviderConfig struct {
	Model       string   `yaml:"model,omitempty"`
	MaxTokens   int      `yaml:"max_tokens,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
}

// For returns the section of the file for p.
func (f *FileConfig) For(p Provider) ProviderConfig {
	if p == ProviderAnthropic {
		return f.Anthropic
	}
	return f.OpenAI
}

// FileName is the expected config file name in the base directory.
const FileName = ".promptrun.yaml"

// BaseDirEnv names the environment variable that sets the base directory
// when --base-dir is not given.
const BaseDirEnv = "PROMPTRUN_BASE_DIR"
