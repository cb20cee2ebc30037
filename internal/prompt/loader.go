// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package prompt

import (
	"github.com/davetashner/promptrun/internal/runerr"
	"github.com/davetashner/promptrun/internal/testable"
)

// Loader reads section files and caches their content, so a file shared by
// several modes is read once per invocation.
type Loader struct {
	fs    testable.FileSystem
	cache map[string]string
}

// NewLoader returns a Loader reading through fsys. A nil fsys uses
// testable.DefaultFS.
func NewLoader(fsys testable.FileSystem) *Loader {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	return &Loader{fs: fsys, cache: make(map[string]string)}
}

// Read returns the content of path. Failures are runerr.InputUnreadable.
func (l *Loader) Read(path string) (string, error) {
	if s, ok := l.cache[path]; ok {
		return s, nil
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return "", runerr.InputUnreadable(path, err)
	}
	s := string(data)
	l.cache[path] = s
	return s, nil
}

// Preload reads every path up front, stopping at the first failure.
func (l *Loader) Preload(paths ...string) error {
	for _, p := range paths {
		if _, err := l.Read(p); err != nil {
			return err
		}
	}
	return nil
}

// Build reads and renders sections in order and assembles the request body.
func (l *Loader) Build(sections []Section) (string, error) {
	rendered := make([]string, 0, len(sections))
	for _, s := range sections {
		content, err := l.Read(s.Path)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s.Render(content))
	}
	return Assemble(rendered...), nil
}
