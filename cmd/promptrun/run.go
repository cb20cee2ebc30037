// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/promptrun/internal/config"
	"github.com/davetashner/promptrun/internal/runner"
)

// newProviderCmd returns the subcommand that runs the zero, careful and
// missing modes against p.
func newProviderCmd(p config.Provider) *cobra.Command {
	prof := profiles[p]
	return &cobra.Command{
		Use:   string(p),
		Short: fmt.Sprintf("Run the zero-shot, careful and gap-analysis prompts against %s", prof.ledgerName),
		Long: fmt.Sprintf(`Run the three fixed modes in order against %[1]s:

  zero      Zero_shot_prompt.md + materials
  careful   Training_usecase.md + Careful_prompt.md + materials
  missing   Gap_analysis_prompt.md + Usecases_1a1.md + materials

Responses are written to Outputs/%[2]s_<mode>.md and every call is appended
to Cost.csv. The first failure stops the run.

Requires %[3]s; %[4]s overrides the model.`,
			prof.ledgerName, prof.prefix, p.APIKeyEnv(), p.ModelEnv()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvider(cmd, p)
		},
	}
}

func runProvider(cmd *cobra.Command, p config.Provider) error {
	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}

	r, l, err := newRunner(cfg, profiles[p].prefix, true)
	if err != nil {
		return err
	}

	results, err := r.Run(cmd.Context(), runner.StandardModes(l), runner.SharedInputs(l)...)
	printSummary(cmd.OutOrStdout(), cfg.BaseDir, results)
	if err != nil {
		return fmt.Errorf("%s run: %w", strings.ToLower(profiles[p].ledgerName), err)
	}
	return nil
}
