// Package modelrunner talks to an OpenAI-compatible model server (Docker Model
// Runner, llama.cpp server or the OpenAI API itself) for chat completions and
// embeddings.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	embeddingsPath      = "/v1/embeddings"
)

// APIClient is a thin client for the OpenAI-compatible REST API.
type APIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewAPIClient creates a new client. An empty apiKey sends no Authorization header.
func NewAPIClient(baseURL string, apiKey string, httpClient *http.Client) APIClient {
	return APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Chat sends a non-streaming chat completion request.
func (c APIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	var out ChatResponse
	if err := c.post(ctx, chatCompletionsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Embeddings requests one embedding per input string.
func (c APIClient) Embeddings(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Input) == 0 {
		return nil, errors.New("input is required")
	}

	var out EmbeddingsResponse
	if err := c.post(ctx, embeddingsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends body as JSON to path and decodes a 2xx answer into out.
func (c APIClient) post(ctx context.Context, path string, body, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
