package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainClient adapts any langchaingo model to Completer.
type LangChainClient struct {
	model       llms.Model
	temperature float64
}

var _ Completer = (*LangChainClient)(nil)

// NewLangChainClient builds an OpenAI-compatible langchaingo model. baseURL
// uses the same form as HTTPClient (without the /v1 suffix).
func NewLangChainClient(baseURL, model, apiKey string, temperature float64) (*LangChainClient, error) {
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(strings.TrimRight(baseURL, "/")+"/v1"))
	}

	m, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create langchain model: %w", err)
	}
	return NewLangChainClientFromModel(m, temperature), nil
}

// NewLangChainClientFromModel wraps an existing model.
func NewLangChainClientFromModel(m llms.Model, temperature float64) *LangChainClient {
	return &LangChainClient{model: m, temperature: temperature}
}

func (c *LangChainClient) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(c.temperature))
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", errors.New("LLM returned empty content")
	}
	return out, nil
}
