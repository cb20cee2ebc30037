// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davetashner/promptrun/internal/layout"
)

// executeCmd runs the root command with args and returns what it printed.
// Global flag values are reset first so tests do not leak into each other.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, quiet, noColor, baseDir = false, true, true, ""
	dedupeProvider, dedupeLogUsage = "openai", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// seedBase creates a base directory holding every template and input file.
func seedBase(t *testing.T) layout.Layout {
	t.Helper()
	l := layout.New(t.TempDir())
	for path, content := range map[string]string{
		l.Prompt(layout.ZeroShotPrompt): "Zero shot.",
		l.Prompt(layout.TrainingPrompt): "Training.",
		l.Prompt(layout.CarefulPrompt):  "Careful.",
		l.Prompt(layout.GapPrompt):      "Gap.",
		l.Prompt(layout.DedupePrompt):   "Dedupe.",
		l.Materials():                   "Materials body.",
		l.Baseline():                    "Baseline body.",
	} {
		writeFile(t, path, content)
	}
	return l
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return string(data)
}

// fakeProvider answers every request with "reply N" in the provider's wire
// format, or with status when it is not 200.
type fakeProvider struct {
	srv     *httptest.Server
	hits    atomic.Int32
	prompts []string
	bodies  []map[string]any
}

func newFakeOpenAI(t *testing.T, status int) *fakeProvider {
	t.Helper()
	f := &fakeProvider{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := f.hits.Add(1)
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && len(req.Messages) > 0 {
			f.prompts = append(f.prompts, req.Messages[0].Content)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-test", "object": "chat.completion", "created": 1, "model": "gpt-5",
			"choices": []any{map[string]any{
				"index": 0, "finish_reason": "stop",
				"message": map[string]any{"role": "assistant", "content": fmt.Sprintf("reply %d\n", n)},
			}},
			"usage": map[string]any{"prompt_tokens": 100 * n, "completion_tokens": 10 * n, "total_tokens": 110 * n},
		})
	}))
	t.Cleanup(f.srv.Close)
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("OPENAI_BASE_URL", f.srv.URL)
	t.Setenv("OPENAI_MODEL", "")
	return f
}

func newFakeAnthropic(t *testing.T, status int) *fakeProvider {
	t.Helper()
	f := &fakeProvider{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := f.hits.Add(1)
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			f.bodies = append(f.bodies, body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "msg_test", "type": "message", "role": "assistant",
			"model": "claude-opus-4-1-20250805", "stop_reason": "end_turn",
			"content": []any{map[string]any{"type": "text", "text": fmt.Sprintf("reply %d", n)}},
			"usage":   map[string]any{"input_tokens": 7, "output_tokens": 3},
		})
	}))
	t.Cleanup(f.srv.Close)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test-key")
	t.Setenv("ANTHROPIC_BASE_URL", f.srv.URL)
	t.Setenv("CLAUDE_MODEL", "")
	return f
}
