// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile reads the .promptrun.yaml file from the given base directory.
// If the file does not exist, it returns a zero-value FileConfig and nil error.
func LoadFile(baseDir string) (*FileConfig, error) {
	path := filepath.Join(baseDir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // user-provided base dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
