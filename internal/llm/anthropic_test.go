package llm_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/promptrun/internal/llm"
)

const anthropicOK = `{
  "id": "msg_test",
  "type": "message",
  "role": "assistant",
  "model": "claude-opus-4-1-20250805",
  "stop_reason": "end_turn",
  "content": [
    {"type": "text", "text": "## Use cases\n"},
    {"type": "text", "text": "- UC1"}
  ],
  "usage": {"input_tokens": 812, "output_tokens": 97}
}`

func newAnthropic(t *testing.T, api *fakeAPI, opts ...llm.AnthropicOption) *llm.AnthropicProvider {
	t.Helper()
	opts = append([]llm.AnthropicOption{
		llm.WithAPIKey("test-key"),
		llm.WithBaseURL(api.srv.URL),
	}, opts...)
	p, err := llm.NewAnthropicProvider(opts...)
	require.NoError(t, err)
	return p
}

func TestNewAnthropicProvider_FromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-test-key")

	p, err := llm.NewAnthropicProvider()
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-1-20250805", p.Model())
}

func TestNewAnthropicProvider_NoKeyError(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	p, err := llm.NewAnthropicProvider()
	assert.Nil(t, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestNewAnthropicProvider_EmptyModelKeepsDefault(t *testing.T) {
	p, err := llm.NewAnthropicProvider(llm.WithAPIKey("k"), llm.WithModel(""))
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-1-20250805", p.Model())
}

func TestAnthropicComplete_DefaultsAndText(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, anthropicOK)
	p := newAnthropic(t, api)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "A\n\nB"})
	require.NoError(t, err)

	assert.Equal(t, "## Use cases\n- UC1", resp.Content)
	assert.Equal(t, "claude-opus-4-1-20250805", resp.Model)
	require.NotNil(t, resp.Usage.InputTokens)
	require.NotNil(t, resp.Usage.OutputTokens)
	assert.Equal(t, 812, *resp.Usage.InputTokens)
	assert.Equal(t, 97, *resp.Usage.OutputTokens)

	assert.Equal(t, "claude-opus-4-1-20250805", api.captured["model"])
	assert.Equal(t, float64(4000), api.captured["max_tokens"])
	assert.Equal(t, 0.2, api.captured["temperature"])
	_, hasSystem := api.captured["system"]
	assert.False(t, hasSystem, "no system prompt is layered on")

	msg := api.message(t, 0)
	assert.Equal(t, "user", msg["role"])
	blocks, ok := msg["content"].([]any)
	require.True(t, ok)
	require.Len(t, blocks, 1)
	assert.Equal(t, "A\n\nB", blocks[0].(map[string]any)["text"])
}

func TestAnthropicComplete_Overrides(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, anthropicOK)
	p := newAnthropic(t, api,
		llm.WithModel("claude-sonnet-4-5-20250929"),
		llm.WithMaxTokens(1024),
		llm.WithTemperature(0.7),
	)

	_, err := p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5-20250929", api.captured["model"])
	assert.Equal(t, float64(1024), api.captured["max_tokens"])
	assert.Equal(t, 0.7, api.captured["temperature"])

	temp := 0.0
	_, err = p.Complete(context.Background(), llm.Request{Prompt: "hi", Model: "claude-x", MaxTokens: 10, Temperature: &temp})
	require.NoError(t, err)
	assert.Equal(t, "claude-x", api.captured["model"])
	assert.Equal(t, float64(10), api.captured["max_tokens"])
	assert.Equal(t, 0.0, api.captured["temperature"])
}

func TestAnthropicComplete_UsageAbsent(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{
	  "id": "msg_test", "type": "message", "role": "assistant",
	  "model": "claude-opus-4-1-20250805",
	  "content": [{"type": "text", "text": "ok"}]
	}`)
	p := newAnthropic(t, api)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.False(t, resp.Usage.Reported())
}

func TestAnthropicComplete_EmptyContent(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{
	  "id": "msg_test", "type": "message", "role": "assistant",
	  "model": "claude-opus-4-1-20250805",
	  "content": [],
	  "usage": {"input_tokens": 5, "output_tokens": 0}
	}`)
	p := newAnthropic(t, api)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "", resp.Content)
	require.NotNil(t, resp.Usage.OutputTokens)
	assert.Equal(t, 0, *resp.Usage.OutputTokens)
}

func TestAnthropicComplete_APIErrorIsNotRetried(t *testing.T) {
	api := newFakeAPI(t, http.StatusTooManyRequests,
		`{"type":"error","error":{"type":"rate_limit_error","message":"rate limited"}}`)
	p := newAnthropic(t, api)

	_, err := p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic: completion failed")
	assert.Equal(t, int32(1), api.hits.Load())
}
