// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package testable provides interfaces for abstracting OS-level operations,
// enabling mock injection in tests without modifying production behavior.
package testable

import "os"

// FileSystem abstracts the file operations promptrun performs: reading
// templates, overwriting outputs and appending to the cost ledger.
type FileSystem interface {
	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// OpenFile opens the named file with the given flags and permissions.
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OsFileSystem is the production implementation of FileSystem that delegates
// to the standard library os package.
type OsFileSystem struct{}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// WriteFile wraps os.WriteFile.
func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

// OpenFile wraps os.OpenFile.
func (OsFileSystem) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm) //nolint:gosec // caller controls path
}

// MkdirAll wraps os.MkdirAll.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// DefaultFS is the production FileSystem used as the default throughout
// the application.
var DefaultFS FileSystem = OsFileSystem{}
