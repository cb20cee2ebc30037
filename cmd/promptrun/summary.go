// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"

	"github.com/davetashner/promptrun/internal/runner"
)

var (
	colorGreen = color.New(color.FgGreen)
	colorFaint = color.New(color.Faint)
)

// printSummary writes one line per completed mode.
func printSummary(w io.Writer, base string, results []runner.Result) {
	for _, res := range results {
		path := res.OutputPath
		if rel, err := filepath.Rel(base, path); err == nil {
			path = rel
		}
		fmt.Fprintf(w, "%s %-8s %s %s\n",
			colorGreen.Sprint("wrote"),
			res.Label,
			path,
			colorFaint.Sprintf("(in=%s out=%s)", tokens(res.Usage.InputTokens), tokens(res.Usage.OutputTokens)),
		)
	}
}

func tokens(n *int) string {
	if n == nil {
		return "?"
	}
	return strconv.Itoa(*n)
}
