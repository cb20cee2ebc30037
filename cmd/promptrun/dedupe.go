// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/promptrun/internal/config"
	"github.com/davetashner/promptrun/internal/runner"
)

// Dedupe-specific flag values.
var (
	dedupeProvider string
	dedupeLogUsage bool
)

// dedupeCmd merges the two careful outputs into Merged_final.md.
var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Merge the ChatGPT and Claude careful outputs into one deduplicated set",
	Long: `Send Dedupe_prompt.md together with Outputs/Chatgpt_careful.md (Set A)
and Outputs/Claude_careful.md (Set B) to a provider and write the reply to
Outputs/Merged_final.md.

Usage is not recorded in Cost.csv unless --log-usage is given.`,
	Args: cobra.NoArgs,
	RunE: runDedupe,
}

func init() {
	dedupeCmd.Flags().StringVar(&dedupeProvider, "provider", string(config.ProviderOpenAI), "provider to merge with (openai, anthropic)")
	dedupeCmd.Flags().BoolVar(&dedupeLogUsage, "log-usage", false, "append the merge call to Cost.csv")
}

func runDedupe(cmd *cobra.Command, _ []string) error {
	p, err := config.ParseProvider(dedupeProvider)
	if err != nil {
		return fmt.Errorf("--provider: %w", err)
	}

	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}

	r, l, err := newRunner(cfg, mergedPrefix, dedupeLogUsage)
	if err != nil {
		return err
	}

	mode := runner.DedupeMode(l,
		profiles[config.ProviderOpenAI].prefix,
		profiles[config.ProviderAnthropic].prefix,
	)
	results, err := r.Run(cmd.Context(), []runner.Mode{mode})
	printSummary(cmd.OutOrStdout(), cfg.BaseDir, results)
	if err != nil {
		return fmt.Errorf("dedupe: %w", err)
	}
	return nil
}
