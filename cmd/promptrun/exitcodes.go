// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/davetashner/promptrun/internal/redact"
	"github.com/davetashner/promptrun/internal/runerr"
)

// Exit codes for the promptrun CLI.
const (
	ExitOK              = 0 // All modes completed.
	ExitFailure         = 1 // Usage error or untagged failure.
	ExitConfigMissing   = 2 // Missing API key or invalid configuration.
	ExitInputUnreadable = 3 // A template or input file could not be read.
	ExitProviderFailed  = 4 // The provider call failed; later modes did not run.
	ExitWriteFailed     = 5 // An output file or the ledger could not be written.
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch runerr.KindOf(err) {
	case runerr.KindConfigMissing:
		return ExitConfigMissing
	case runerr.KindInputUnreadable:
		return ExitInputUnreadable
	case runerr.KindProviderCallFailed:
		return ExitProviderFailed
	case runerr.KindWriteFailed:
		return ExitWriteFailed
	default:
		return ExitFailure
	}
}

// handleError is the single place a failed run is reported. API keys are
// stripped from the message before it is logged.
func handleError(err error) int {
	slog.Error("run failed",
		"kind", runerr.KindOf(err).String(),
		"error", redact.String(err.Error()),
	)
	return exitCode(err)
}
