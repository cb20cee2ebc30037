// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads baseDir/.env into the process environment if the file
// exists. Variables that are already set are left untouched. A .env that
// exists but cannot be read is an error.
func LoadDotEnv(baseDir string) error {
	path := filepath.Join(baseDir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ResolveBaseDir picks the base directory: the flag value, then
// PROMPTRUN_BASE_DIR, then the working directory. The result is absolute.
func ResolveBaseDir(flagValue string) (string, error) {
	dir := flagValue
	if dir == "" {
		dir = os.Getenv(BaseDirEnv)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(dir)
}
