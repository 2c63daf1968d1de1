package agents

import (
	"context"
	"sync"

	"hermes/internal/adapters/ai"
)

// stubChat is a deterministic ChatClient. reply receives the outgoing
// request and produces the completion text; every request is recorded.
type stubChat struct {
	mu       sync.Mutex
	reply    func(req ai.ChatRequest) (string, error)
	empty    bool
	requests []ai.ChatRequest
}

func (s *stubChat) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.empty {
		return &ai.ChatResponse{Model: req.Model}, nil
	}

	text, err := s.reply(req)
	if err != nil {
		return nil, err
	}

	return &ai.ChatResponse{
		Model:   req.Model,
		Choices: []ai.Choice{{Content: text}},
		Usage:   ai.Usage{PromptTokens: 1, CompletionTokens: 1, TotalTokens: 2},
	}, nil
}

func (s *stubChat) recorded() []ai.ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ai.ChatRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// userContent extracts the user message of a recorded two-message exchange.
func userContent(req ai.ChatRequest) string {
	for _, msg := range req.Messages {
		if msg.Role == ai.RoleUser {
			return msg.Content
		}
	}
	return ""
}

// echoChat replies with the user message verbatim.
func echoChat() *stubChat {
	return &stubChat{reply: func(req ai.ChatRequest) (string, error) {
		return userContent(req), nil
	}}
}

// stubSearch is a deterministic search.Client.
type stubSearch struct {
	result      string
	err         error
	invocations int
}

func (s *stubSearch) Search(ctx context.Context, query string) (string, error) {
	s.invocations++
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}
