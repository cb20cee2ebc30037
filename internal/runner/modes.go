// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package runner

import (
	"github.com/davetashner/promptrun/internal/layout"
	"github.com/davetashner/promptrun/internal/prompt"
)

// Mode labels. They appear in output file names and in the ledger.
const (
	ModeZero    = "zero"
	ModeCareful = "careful"
	ModeMissing = "missing"
	ModeFinal   = "final"
)

// Section headings inserted ahead of file content.
const (
	materialsHeading = "## Materials"
	baselineHeading  = "## 1a1 Baseline"
	setAHeading      = "Inputs:\nSet A:"
	setBHeading      = "Set B:"
)

// Mode is one prompting strategy: a label and the ordered sections that
// make up its request.
type Mode struct {
	Label    string
	Sections []prompt.Section
}

// StandardModes returns the zero-shot, careful and gap-analysis modes, in
// the order a provider run executes them.
func StandardModes(l layout.Layout) []Mode {
	materials := prompt.Headed(materialsHeading, l.Materials())
	return []Mode{
		{
			Label: ModeZero,
			Sections: []prompt.Section{
				prompt.Plain(l.Prompt(layout.ZeroShotPrompt)),
				materials,
			},
		},
		{
			Label: ModeCareful,
			Sections: []prompt.Section{
				prompt.Plain(l.Prompt(layout.TrainingPrompt)),
				prompt.Plain(l.Prompt(layout.CarefulPrompt)),
				materials,
			},
		},
		{
			Label: ModeMissing,
			Sections: []prompt.Section{
				prompt.Plain(l.Prompt(layout.GapPrompt)),
				prompt.Headed(baselineHeading, l.Baseline()),
				materials,
			},
		},
	}
}

// SharedInputs lists the files every standard run reads before its first
// provider call.
func SharedInputs(l layout.Layout) []string {
	return []string{l.Baseline(), l.Materials()}
}

// DedupeMode returns the single merge mode: the dedupe template followed by
// the careful outputs of setA and setB (output file prefixes).
func DedupeMode(l layout.Layout, setA, setB string) Mode {
	return Mode{
		Label: ModeFinal,
		Sections: []prompt.Section{
			prompt.Plain(l.Prompt(layout.DedupePrompt)),
			prompt.Headed(setAHeading, l.Output(setA, ModeCareful)),
			prompt.Headed(setBHeading, l.Output(setB, ModeCareful)),
		},
	}
}
