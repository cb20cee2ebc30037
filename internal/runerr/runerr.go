// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package runerr defines the tagged errors that abort a promptrun invocation.
// Every failure is fatal; the kind only decides the exit code and log line.
package runerr

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal error.
type Kind int

// Error kinds. The zero value means the error carries no kind.
const (
	KindUnknown Kind = iota
	KindConfigMissing
	KindInputUnreadable
	KindProviderCallFailed
	KindWriteFailed
)

// String returns the kind name used in log output.
func (k Kind) String() string {
	switch k {
	case KindConfigMissing:
		return "config_missing"
	case KindInputUnreadable:
		return "input_unreadable"
	case KindProviderCallFailed:
		return "provider_call_failed"
	case KindWriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// Error is a fatal error tagged with its Kind. Op names the failed step
// ("read", "complete", "write output", ...) and Path the file involved, if any.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// ConfigMissing reports a required setting that is absent or invalid.
func ConfigMissing(format string, args ...any) error {
	return &Error{Kind: KindConfigMissing, Op: "config", Err: fmt.Errorf(format, args...)}
}

// InputUnreadable reports a template or input file that could not be read.
func InputUnreadable(path string, err error) error {
	return &Error{Kind: KindInputUnreadable, Op: "read", Path: path, Err: err}
}

// ProviderCallFailed reports a transport or API error from an LLM provider.
func ProviderCallFailed(mode string, err error) error {
	return &Error{Kind: KindProviderCallFailed, Op: "complete " + mode, Err: err}
}

// WriteFailed reports a failure writing an output file or the ledger.
func WriteFailed(path string, err error) error {
	return &Error{Kind: KindWriteFailed, Op: "write", Path: path, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}
