package ai

import "context"

// ChatClient is the narrow contract the agent layer depends on: send one
// chat completion request, get candidate completions back. Implementations
// must be safe for concurrent use after construction.
type ChatClient interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// ChatRequest represents a chat completion request.
type ChatRequest struct {
	Model    string
	Messages []Message
}

// Message represents a single message in the exchange.
type Message struct {
	Role    MessageRole
	Content string
}

// MessageRole defines the role of a message sender.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatResponse represents the response from a chat completion.
type ChatResponse struct {
	ID      string
	Model   string
	Choices []Choice
	Usage   Usage
}

// Choice represents a single completion candidate.
type Choice struct {
	Index   int
	Content string
}

// Usage reports token accounting for a completion.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// FirstChoice returns the text of the first candidate, if any.
func (r *ChatResponse) FirstChoice() (string, bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Content, r.Choices[0].Content != ""
}
