// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/davetashner/promptrun/internal/runerr"
)

// Validate checks all fields in the config and returns all errors at once,
// as a single runerr.ConfigMissing.
func Validate(cfg *Config) error {
	var errs []string

	if _, err := ParseProvider(string(cfg.Provider)); err != nil {
		errs = append(errs, fmt.Sprintf("provider: %v", err))
	}

	if cfg.APIKey == "" {
		errs = append(errs, fmt.Sprintf("%s is not set", cfg.Provider.APIKeyEnv()))
	}

	if cfg.Model == "" {
		errs = append(errs, "model: must not be empty")
	}

	if info, err := os.Stat(cfg.BaseDir); err != nil {
		errs = append(errs, fmt.Sprintf("base dir: %v", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Sprintf("base dir: %s is not a directory", cfg.BaseDir))
	}

	if cfg.MaxTokens < 0 {
		errs = append(errs, fmt.Sprintf("max_tokens: must be non-negative, got %d", cfg.MaxTokens))
	}

	if cfg.Temperature != nil && (*cfg.Temperature < 0 || *cfg.Temperature > 2) {
		errs = append(errs, fmt.Sprintf("temperature: must be between 0.0 and 2.0, got %g", *cfg.Temperature))
	}

	if len(errs) > 0 {
		return runerr.ConfigMissing("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
