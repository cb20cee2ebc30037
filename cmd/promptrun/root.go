// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/davetashner/promptrun/internal/config"
	promptlog "github.com/davetashner/promptrun/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
	baseDir string
)

// rootCmd is the base command for promptrun.
var rootCmd = &cobra.Command{
	Use:   "promptrun",
	Short: "Run fixed prompt templates against LLM providers",
	Long: `Promptrun sends fixed prompt templates, combined with shared materials,
to an LLM provider. It writes each response to Outputs/ and appends token
usage to Cost.csv.

The base directory holds Prompts/, Materials/Materials.md,
Inputs/Usecases_1a1.md and an optional .promptrun.yaml and .env.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		promptlog.Setup(verbose, quiet, "run", uuid.NewString(), "cmd", cmd.Name())
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&baseDir, "base-dir", "C", "", "base directory (default: $PROMPTRUN_BASE_DIR or the working directory)")

	rootCmd.AddCommand(newProviderCmd(config.ProviderOpenAI))
	rootCmd.AddCommand(newProviderCmd(config.ProviderAnthropic))
	rootCmd.AddCommand(dedupeCmd)
	rootCmd.AddCommand(versionCmd)
}
