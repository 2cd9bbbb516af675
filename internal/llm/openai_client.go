package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrGenerationUnavailable indicates text generation is not configured.
	ErrGenerationUnavailable = errors.New("text generation unavailable")
	// ErrGeneration indicates the completion request failed (network, quota, timeout).
	ErrGeneration = errors.New("text generation failed")
	// ErrEmptyCompletion indicates the provider answered without any text.
	ErrEmptyCompletion = errors.New("empty completion")
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// TextGenerator completes a system and user prompt pair into plain text.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// OpenAIClient implements TextGenerator against any OpenAI-compatible
// chat completions API (OpenAI, OpenRouter).
type OpenAIClient struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAIClient creates a new client. An empty baseURL targets api.openai.com.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(strings.TrimSuffix(baseURL, "/")+"/"))
	}
	reqOpts = append(reqOpts, opts...)

	return &OpenAIClient{
		client:      openai.NewClient(reqOpts...),
		model:       model,
		temperature: 0.7,
	}
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// Complete sends one chat completion and returns the trimmed text of the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if c == nil {
		return "", ErrGenerationUnavailable
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(c.temperature),
	}
	if maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(maxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrEmptyCompletion)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
