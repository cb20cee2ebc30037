// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package layout names the files promptrun reads and writes beneath a base
// directory.
//
//	Prompts/*.md             prompt templates
//	Materials/Materials.md   shared materials
//	Inputs/Usecases_1a1.md   baseline use cases for gap analysis
//	Outputs/                 model responses, one file per mode
//	Cost.csv                 append-only usage ledger
package layout

import "path/filepath"

// Directory and file names relative to the base directory.
const (
	PromptsDir    = "Prompts"
	MaterialsDir  = "Materials"
	InputsDir     = "Inputs"
	OutputsDir    = "Outputs"
	MaterialsFile = "Materials.md"
	BaselineFile  = "Usecases_1a1.md"
	LedgerFile    = "Cost.csv"
)

// Prompt template file names.
const (
	ZeroShotPrompt = "Zero_shot_prompt.md"
	TrainingPrompt = "Training_usecase.md"
	CarefulPrompt  = "Careful_prompt.md"
	GapPrompt      = "Gap_analysis_prompt.md"
	DedupePrompt   = "Dedupe_prompt.md"
)

// Layout resolves paths beneath Base.
type Layout struct {
	Base string
}

// New returns a Layout rooted at base.
func New(base string) Layout {
	return Layout{Base: base}
}

// Prompt returns the path of the named prompt template.
func (l Layout) Prompt(name string) string {
	return filepath.Join(l.Base, PromptsDir, name)
}

// Materials returns the path of the shared materials file.
func (l Layout) Materials() string {
	return filepath.Join(l.Base, MaterialsDir, MaterialsFile)
}

// Baseline returns the path of the baseline inputs file.
func (l Layout) Baseline() string {
	return filepath.Join(l.Base, InputsDir, BaselineFile)
}

// OutputDir returns the directory that receives model responses.
func (l Layout) OutputDir() string {
	return filepath.Join(l.Base, OutputsDir)
}

// Output returns the path of the response file for prefix and label,
// e.g. Outputs/Chatgpt_zero.md.
func (l Layout) Output(prefix, label string) string {
	return filepath.Join(l.OutputDir(), OutputName(prefix, label))
}

// Ledger returns the path of the usage ledger.
func (l Layout) Ledger() string {
	return filepath.Join(l.Base, LedgerFile)
}

// OutputName returns the response file name for prefix and label.
func OutputName(prefix, label string) string {
	return prefix + "_" + label + ".md"
}
