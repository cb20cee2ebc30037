// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/davetashner/promptrun/internal/config"
	"github.com/davetashner/promptrun/internal/layout"
	"github.com/davetashner/promptrun/internal/ledger"
	"github.com/davetashner/promptrun/internal/llm"
	"github.com/davetashner/promptrun/internal/output"
	"github.com/davetashner/promptrun/internal/prompt"
	"github.com/davetashner/promptrun/internal/runerr"
	"github.com/davetashner/promptrun/internal/runner"
)

// profile holds the names a provider run uses on disk.
type profile struct {
	prefix     string // output file prefix
	ledgerName string // ledger llm column
}

var profiles = map[config.Provider]profile{
	config.ProviderOpenAI:    {prefix: "Chatgpt", ledgerName: "ChatGPT"},
	config.ProviderAnthropic: {prefix: "Claude", ledgerName: "Claude"},
}

// mergedPrefix names the dedupe output, Merged_final.md.
const mergedPrefix = "Merged"

// loadConfig resolves the base directory and loads the validated config.
func loadConfig(p config.Provider) (*config.Config, error) {
	dir, err := config.ResolveBaseDir(baseDir)
	if err != nil {
		return nil, runerr.ConfigMissing("base dir: %v", err)
	}
	return config.Load(p, dir)
}

// newProvider builds the SDK-backed provider for cfg. Overridable in tests.
var newProvider = func(cfg *config.Config) (llm.Provider, error) {
	var (
		p   llm.Provider
		err error
	)
	switch cfg.Provider {
	case config.ProviderAnthropic:
		opts := []llm.AnthropicOption{
			llm.WithAPIKey(cfg.APIKey),
			llm.WithModel(cfg.Model),
			llm.WithBaseURL(cfg.BaseURL),
			llm.WithMaxTokens(cfg.MaxTokens),
		}
		if cfg.Temperature != nil {
			opts = append(opts, llm.WithTemperature(*cfg.Temperature))
		}
		p, err = llm.NewAnthropicProvider(opts...)
	default:
		p, err = llm.NewOpenAIProvider(
			llm.WithOpenAIKey(cfg.APIKey),
			llm.WithOpenAIModel(cfg.Model),
			llm.WithOpenAIBaseURL(cfg.BaseURL),
		)
	}
	if err != nil {
		return nil, runerr.ConfigMissing("%v", err)
	}
	return p, nil
}

// newRunner wires a runner for cfg that writes files with prefix. The ledger
// is attached only when withLedger is set.
func newRunner(cfg *config.Config, prefix string, withLedger bool) (*runner.Runner, layout.Layout, error) {
	l := layout.New(cfg.BaseDir)

	p, err := newProvider(cfg)
	if err != nil {
		return nil, l, err
	}

	var lg *ledger.Ledger
	if withLedger {
		lg = ledger.New(l.Ledger(), nil)
	}

	r := runner.New(p, prompt.NewLoader(nil), output.NewWriter(l.OutputDir(), nil), lg, runner.Options{
		Prefix:      prefix,
		LedgerName:  profiles[cfg.Provider].ledgerName,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Logger:      slog.Default().With("provider", string(cfg.Provider)),
	})
	return r, l, nil
}
