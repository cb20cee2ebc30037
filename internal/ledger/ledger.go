// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package ledger appends token-usage rows to the shared Cost.csv file.
//
// The ledger is append-only: the header is written once, when the file is
// created, and existing rows are never rewritten. Concurrent writers are not
// supported.
package ledger

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/davetashner/promptrun/internal/runerr"
	"github.com/davetashner/promptrun/internal/testable"
)

// TimestampLayout is local time at second precision.
const TimestampLayout = "2006-01-02T15:04:05"

// Header is the first row of a new ledger file.
var Header = []string{
	"timestamp", "llm", "mode", "input_tokens", "output_tokens",
	"unit_cost_in", "unit_cost_out", "est_cost_usd", "notes",
}

// Record is one usage row. Nil token counts are written as blank cells.
// Unit and estimated costs are not computed and are always blank.
type Record struct {
	Time         time.Time
	LLM          string
	Mode         string
	InputTokens  *int
	OutputTokens *int
	Notes        string
}

// Row returns the CSV cells for r in Header order.
func (r Record) Row() []string {
	return []string{
		r.Time.Local().Format(TimestampLayout),
		r.LLM,
		r.Mode,
		count(r.InputTokens),
		count(r.OutputTokens),
		"", "", "",
		r.Notes,
	}
}

func count(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// Ledger appends records to a single CSV file.
type Ledger struct {
	path string
	fs   testable.FileSystem
}

// New returns a Ledger writing to path through fsys. A nil fsys uses
// testable.DefaultFS.
func New(path string, fsys testable.FileSystem) *Ledger {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	return &Ledger{path: path, fs: fsys}
}

// Append writes r as one row, creating the file with Header first if it does
// not exist yet. Any failure is runerr.WriteFailed.
func (l *Ledger) Append(r Record) (err error) {
	isNew := false
	if _, statErr := l.fs.Stat(l.path); statErr != nil {
		if !errors.Is(statErr, fs.ErrNotExist) {
			return runerr.WriteFailed(l.path, statErr)
		}
		isNew = true
	}

	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return runerr.WriteFailed(l.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = runerr.WriteFailed(l.path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(Header); err != nil {
			return runerr.WriteFailed(l.path, err)
		}
	}
	if err := w.Write(r.Row()); err != nil {
		return runerr.WriteFailed(l.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return runerr.WriteFailed(l.path, err)
	}
	return nil
}
