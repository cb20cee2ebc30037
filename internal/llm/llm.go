// Package llm provides a provider-agnostic LLM client interface and the
// OpenAI and Anthropic adapters promptrun sends its requests through.
package llm

import "context"

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends one user message and returns the response. It makes a
	// single network call; errors are returned, never retried.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message to send.
	Prompt string

	// Model overrides the provider's default model. If empty, the provider
	// uses its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the provider uses its
	// own default.
	MaxTokens int

	// Temperature controls randomness. If nil, the provider uses its default.
	Temperature *float64

	// SystemPrompt sets the system instruction for the completion.
	SystemPrompt string
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model. It may be empty.
	Content string

	// Model is the model that actually served the request.
	Model string

	// Usage reports token consumption, where the provider supplied it.
	Usage Usage
}

// Usage holds token counts normalised across providers. A nil count means
// the provider did not report it, which is different from a reported zero.
type Usage struct {
	InputTokens  *int
	OutputTokens *int
}

// Reported reports whether either count is present.
func (u Usage) Reported() bool {
	return u.InputTokens != nil || u.OutputTokens != nil
}

// tokenCount returns &n when the provider's JSON contained the field.
func tokenCount(present bool, n int64) *int {
	if !present {
		return nil
	}
	v := int(n)
	return &v
}
