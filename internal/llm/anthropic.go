package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// defaultAnthropicModel is the model used when no override is provided.
	defaultAnthropicModel = "claude-opus-4-1-20250805"

	// defaultAnthropicMaxTokens is the maximum output tokens per request.
	defaultAnthropicMaxTokens = 4000

	// defaultAnthropicTemperature keeps use-case generation close to the
	// source material.
	defaultAnthropicTemperature = 0.2
)

// AnthropicProvider implements Provider using the official Anthropic SDK.
type AnthropicProvider struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float64
}

// Compile-time check that AnthropicProvider satisfies the Provider interface.
var _ Provider = (*AnthropicProvider)(nil)

// AnthropicOption configures an AnthropicProvider.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	temperature float64
}

// WithAPIKey sets the API key. If not provided, the provider reads
// ANTHROPIC_API_KEY from the environment.
func WithAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.apiKey = key
	}
}

// WithModel overrides the default model for all requests.
func WithModel(model string) AnthropicOption {
	return func(c *anthropicConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.baseURL = url
	}
}

// WithMaxTokens overrides the default output token limit.
func WithMaxTokens(n int) AnthropicOption {
	return func(c *anthropicConfig) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(t float64) AnthropicOption {
	return func(c *anthropicConfig) {
		c.temperature = t
	}
}

// NewAnthropicProvider creates a new Anthropic provider.
// It returns an error if no API key is available (neither via option nor env).
func NewAnthropicProvider(opts ...AnthropicOption) (*AnthropicProvider, error) {
	cfg := anthropicConfig{
		model:       defaultAnthropicModel,
		maxTokens:   defaultAnthropicMaxTokens,
		temperature: defaultAnthropicTemperature,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("llm: ANTHROPIC_API_KEY not set and no API key provided")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// A failed call is reported, not repeated.
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &AnthropicProvider{
		client:      anthropic.NewClient(clientOpts...),
		model:       cfg.model,
		maxTokens:   cfg.maxTokens,
		temperature: cfg.temperature,
	}, nil
}

// Complete sends a completion request to the Anthropic Messages API.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	maxTokens := int64(p.maxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	temperature := p.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	// Only text blocks contribute; thinking and tool blocks are skipped.
	var content string
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += variant.Text
		}
	}

	var usage Usage
	if msg.JSON.Usage.Valid() {
		usage = Usage{
			InputTokens:  tokenCount(msg.Usage.JSON.InputTokens.Valid(), msg.Usage.InputTokens),
			OutputTokens: tokenCount(msg.Usage.JSON.OutputTokens.Valid(), msg.Usage.OutputTokens),
		}
	}

	return &Response{
		Content: content,
		Model:   string(msg.Model),
		Usage:   usage,
	}, nil
}

// Model returns the default model configured for this provider.
func (p *AnthropicProvider) Model() string {
	return p.model
}
