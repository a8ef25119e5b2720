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
)

// maxErrorBody bounds how much of a failed response body is kept for diagnostics.
const maxErrorBody = 2048

// Client is a client for an OpenAI-compatible chat completions API.
type Client struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewClient creates a new LLM client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		client:  http.DefaultClient,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

// Complete sends one chat completion request for the given model and returns
// the first choice's content. Failures are returned as *ProviderError.
func (c *Client) Complete(ctx context.Context, model string, req GenerationRequest) (string, error) {
	req = req.WithDefaults()
	url := fmt.Sprintf("%s/chat/completions", c.BaseURL)

	payload := chatRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: *req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		outcome := OutcomeTransport
		if errors.Is(err, context.Canceled) {
			outcome = OutcomeCanceled
		}
		return "", &ProviderError{Model: model, Outcome: outcome, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &ProviderError{
			Model:      model,
			Outcome:    classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &ProviderError{Model: model, Outcome: OutcomeDecode, StatusCode: resp.StatusCode, Err: err}
	}

	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", &ProviderError{Model: model, Outcome: OutcomeEmpty, StatusCode: resp.StatusCode}
	}

	return chatResp.Choices[0].Message.Content, nil
}

func classifyStatus(code int) Outcome {
	switch {
	case code == http.StatusTooManyRequests:
		return OutcomeRateLimited
	case code >= 500:
		return OutcomeServerError
	default:
		return OutcomeClientError
	}
}
