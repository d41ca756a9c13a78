// Package llm talks to the text-generation service and cleans up what it
// returns.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Completer sends a prompt to a text-generation model and returns its raw
// text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// HTTPClient calls an OpenAI-compatible chat completions endpoint (Gemini's
// OpenAI layer, Ollama, LM Studio, vLLM, ...).
type HTTPClient struct {
	url         string // e.g. "http://localhost:1234"
	model       string
	apiKey      string
	temperature float64
	client      *http.Client
}

// Compile-time check: *HTTPClient satisfies Completer.
var _ Completer = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the endpoint at url.
func NewHTTPClient(url, model, apiKey string, temperature float64) *HTTPClient {
	return &HTTPClient{
		url:         strings.TrimRight(url, "/"),
		model:       model,
		apiKey:      apiKey,
		temperature: temperature,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

// Complete sends a single user message and returns the first choice.
func (c *HTTPClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("LLM error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", errors.New("LLM returned no choices")
	}

	content := chatResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", errors.New("LLM returned empty content")
	}

	return content, nil
}
