// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"

	"github.com/davetashner/promptrun/internal/runerr"
)

// Load resolves the configuration for provider p rooted at baseDir.
//
// Precedence, highest first: environment variables (after .env is loaded),
// the provider's section of .promptrun.yaml, built-in defaults. The result
// is validated before it is returned; every failure is runerr.ConfigMissing.
func Load(p Provider, baseDir string) (*Config, error) {
	if err := LoadDotEnv(baseDir); err != nil {
		return nil, runerr.ConfigMissing("%v", err)
	}

	file, err := LoadFile(baseDir)
	if err != nil {
		return nil, runerr.ConfigMissing("%s: %v", FileName, err)
	}
	fc := file.For(p)

	cfg := &Config{
		Provider:    p,
		BaseDir:     baseDir,
		APIKey:      os.Getenv(p.APIKeyEnv()),
		Model:       firstNonEmpty(os.Getenv(p.ModelEnv()), fc.Model, p.DefaultModel()),
		BaseURL:     os.Getenv(p.BaseURLEnv()),
		MaxTokens:   fc.MaxTokens,
		Temperature: fc.Temperature,
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
