package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// LLMClient adapts APIClient to the domain.LLMClient interface
type LLMClient struct {
	client APIClient
}

// NewLLMClientAdapter creates a new adapter
func NewLLMClientAdapter(client APIClient) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Chat(spanCtx, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	return domain.LLMChatResponse{
		Content: resp.Choices[0].Message.Content,
		Usage:   toUsage(resp),
	}, nil
}

// Embed implements domain.LLMClient.Embed. Embeddings are ordered like inputs,
// whatever order the server lists them in.
func (a LLMClient) Embed(ctx context.Context, model string, inputs []string) (domain.EmbedResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{Model: model, Input: inputs})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbedResponse{}, err
	}

	if len(resp.Data) != len(inputs) {
		err := fmt.Errorf("expected %d embeddings in response, got %d", len(inputs), len(resp.Data))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbedResponse{}, err
	}

	out := domain.EmbedResponse{
		Embeddings:  make([][]float64, len(inputs)),
		TotalTokens: resp.Usage.TotalTokens,
	}
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(inputs) || out.Embeddings[d.Index] != nil {
			err := fmt.Errorf("invalid embedding index %d in response", d.Index)
			telemetry.RecordErrorAndStatus(span, err)
			return domain.EmbedResponse{}, err
		}
		out.Embeddings[d.Index] = d.Embedding
	}
	return out, nil
}

func toChatRequest(req domain.LLMChatRequest) ChatRequest {
	out := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		out.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	if req.ResponseFormat != nil {
		out.ResponseFormat = &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   req.ResponseFormat.Name,
				Schema: req.ResponseFormat.Schema,
				Strict: true,
			},
		}
	}
	return out
}

// toUsage reads token usage, falling back to llama.cpp timings.
func toUsage(resp *ChatResponse) domain.LLMUsage {
	switch {
	case resp.Usage != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	case resp.Timings != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	default:
		return domain.LLMUsage{}
	}
}

// InitLLMClient initializes the LLMClient and SemanticEncoder dependencies
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the LLMClient and the SemanticEncoder built on it
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	adapter := NewLLMClientAdapter(NewAPIClient(i.LLMHost, apiKey, i.HttpClient))
	depend.Register[domain.LLMClient](adapter)
	depend.Register[domain.SemanticEncoder](NewSemanticEncoder(adapter))
	return ctx, nil
}
