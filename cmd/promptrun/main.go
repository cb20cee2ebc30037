// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(handleError(err))
	}
}
