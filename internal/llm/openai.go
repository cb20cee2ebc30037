package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// defaultOpenAIModel is the model used when no override is provided.
const defaultOpenAIModel = "gpt-5"

// OpenAIProvider implements Provider using the official OpenAI SDK's Chat
// Completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// Compile-time check that OpenAIProvider satisfies the Provider interface.
var _ Provider = (*OpenAIProvider)(nil)

// OpenAIOption configures an OpenAIProvider.
type OpenAIOption func(*openAIConfig)

type openAIConfig struct {
	apiKey  string
	model   string
	baseURL string
}

// WithOpenAIKey sets the API key. If not provided, the provider reads
// OPENAI_API_KEY from the environment.
func WithOpenAIKey(key string) OpenAIOption {
	return func(c *openAIConfig) {
		c.apiKey = key
	}
}

// WithOpenAIModel overrides the default model for all requests.
func WithOpenAIModel(model string) OpenAIOption {
	return func(c *openAIConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithOpenAIBaseURL points the client at a different API endpoint.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(c *openAIConfig) {
		c.baseURL = url
	}
}

// NewOpenAIProvider creates a new OpenAI provider.
// It returns an error if no API key is available (neither via option nor env).
func NewOpenAIProvider(opts ...OpenAIOption) (*OpenAIProvider, error) {
	cfg := openAIConfig{model: defaultOpenAIModel}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("llm: OPENAI_API_KEY not set and no API key provided")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// A failed call is reported, not repeated.
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(clientOpts...),
		model:  cfg.model,
	}, nil
}

// Complete sends a chat completion request with a single user message.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: completion failed: %w", err)
	}

	var content string
	if len(completion.Choices) > 0 {
		content = completion.Choices[0].Message.Content
	}

	var usage Usage
	if completion.JSON.Usage.Valid() {
		usage = Usage{
			InputTokens:  tokenCount(completion.Usage.JSON.PromptTokens.Valid(), completion.Usage.PromptTokens),
			OutputTokens: tokenCount(completion.Usage.JSON.CompletionTokens.Valid(), completion.Usage.CompletionTokens),
		}
	}

	return &Response{
		Content: content,
		Model:   completion.Model,
		Usage:   usage,
	}, nil
}

// Model returns the default model configured for this provider.
func (p *OpenAIProvider) Model() string {
	return p.model
}
