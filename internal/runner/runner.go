// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package runner executes prompting modes against a single provider: for
// each mode it assembles the request, makes one provider call, writes the
// response file and appends a ledger row. Modes run strictly in order and
// the first error stops the run.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/davetashner/promptrun/internal/ledger"
	"github.com/davetashner/promptrun/internal/llm"
	"github.com/davetashner/promptrun/internal/output"
	"github.com/davetashner/promptrun/internal/prompt"
	"github.com/davetashner/promptrun/internal/runerr"
)

// Runner holds everything one invocation needs. Construct it with New.
type Runner struct {
	provider llm.Provider
	loader   *prompt.Loader
	out      *output.Writer
	ledger   *ledger.Ledger
	opts     Options
}

// Options configures a Runner.
type Options struct {
	// Prefix names output files: {Prefix}_{label}.md.
	Prefix string

	// LedgerName is the value of the ledger's llm column.
	LedgerName string

	// Model is sent with every request and recorded in the ledger notes.
	Model string

	// MaxTokens and Temperature are passed through when set.
	MaxTokens   int
	Temperature *float64

	// Now returns the ledger timestamp. Defaults to time.Now.
	Now func() time.Time

	// Logger receives per-mode progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes one completed mode.
type Result struct {
	Label      string
	OutputPath string
	Model      string
	Usage      llm.Usage
	Duration   time.Duration
}

// New returns a Runner. A nil ledger disables usage logging.
func New(p llm.Provider, loader *prompt.Loader, out *output.Writer, l *ledger.Ledger, opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{provider: p, loader: loader, out: out, ledger: l, opts: opts}
}

// Run reads preload and executes modes in order. It returns the results of
// the modes that completed, plus the error that stopped the run, if any.
func (r *Runner) Run(ctx context.Context, modes []Mode, preload ...string) ([]Result, error) {
	if err := r.loader.Preload(preload...); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(modes))
	for _, m := range modes {
		res, err := r.RunMode(ctx, m)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

// RunMode executes a single mode. The output directory is created before
// the provider is called. On a provider error nothing is written.
func (r *Runner) RunMode(ctx context.Context, m Mode) (*Result, error) {
	log := r.opts.Logger.With("mode", m.Label)

	body, err := r.loader.Build(m.Sections)
	if err != nil {
		return nil, err
	}
	if err := r.out.EnsureDir(); err != nil {
		return nil, err
	}
	log.Debug("request assembled", "bytes", len(body), "sections", len(m.Sections))

	start := time.Now()
	resp, err := r.provider.Complete(ctx, llm.Request{
		Prompt:      body,
		Model:       r.opts.Model,
		MaxTokens:   r.opts.MaxTokens,
		Temperature: r.opts.Temperature,
	})
	if err != nil {
		return nil, runerr.ProviderCallFailed(m.Label, err)
	}
	elapsed := time.Since(start)

	path, err := r.out.Write(r.opts.Prefix, m.Label, resp.Content)
	if err != nil {
		return nil, err
	}

	if r.ledger != nil {
		rec := ledger.Record{
			Time:         r.opts.Now(),
			LLM:          r.opts.LedgerName,
			Mode:         m.Label,
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			Notes:        "model=" + r.opts.Model,
		}
		if err := r.ledger.Append(rec); err != nil {
			return nil, err
		}
	}

	if !resp.Usage.Reported() {
		log.Warn("provider reported no token usage")
	}
	log.Info("mode complete", "output", path, "model", resp.Model, "duration", elapsed.Round(time.Millisecond))

	return &Result{
		Label:      m.Label,
		OutputPath: path,
		Model:      resp.Model,
		Usage:      resp.Usage,
		Duration:   elapsed,
	}, nil
}
