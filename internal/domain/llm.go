package domain

import "context"

// ChatRole represents the role of a chat message.
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// LLMChatMessage represents a message in a chat request to the LLM API.
type LLMChatMessage struct {
	Role    ChatRole
	Content string
}

// LLMResponseFormat asks the model to answer with JSON matching Schema.
type LLMResponseFormat struct {
	Name   string
	Schema map[string]any
}

// LLMChatRequest represents a request to the LLM API.
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	// Optional parameters.
	Temperature    *float64
	TopP           *float64
	MaxTokens      *int
	ResponseFormat *LLMResponseFormat
}

// LLMUsage contains token usage information.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMChatResponse represents the response from a chat request to the LLM API.
type LLMChatResponse struct {
	Content string
	Usage   LLMUsage
}

// EmbedResponse represents the response from an embedding request to the LLM API.
// Embeddings are returned in input order.
type EmbedResponse struct {
	Embeddings  [][]float64
	TotalTokens int
}

// LLMClient defines the interface for interacting with an LLM API.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)

	// Embed generates one embedding vector per input text.
	Embed(ctx context.Context, model string, inputs []string) (EmbedResponse, error)
}
