// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package output persists model responses as Markdown files named
// {prefix}_{label}.md. Existing files are overwritten; writes are not atomic.
package output

import (
	"path/filepath"

	"github.com/davetashner/promptrun/internal/layout"
	"github.com/davetashner/promptrun/internal/runerr"
	"github.com/davetashner/promptrun/internal/testable"
)

// Writer writes response files into a single directory.
type Writer struct {
	dir string
	fs  testable.FileSystem
}

// NewWriter returns a Writer for dir. A nil fsys uses testable.DefaultFS.
func NewWriter(dir string, fsys testable.FileSystem) *Writer {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	return &Writer{dir: dir, fs: fsys}
}

// EnsureDir creates the output directory if it is missing.
func (w *Writer) EnsureDir() error {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return runerr.WriteFailed(w.dir, err)
	}
	return nil
}

// Write stores text verbatim in {dir}/{prefix}_{label}.md and returns the
// file path. Any failure is runerr.WriteFailed.
func (w *Writer) Write(prefix, label, text string) (string, error) {
	path := filepath.Join(w.dir, layout.OutputName(prefix, label))
	if err := w.fs.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", runerr.WriteFailed(path, err)
	}
	return path, nil
}
