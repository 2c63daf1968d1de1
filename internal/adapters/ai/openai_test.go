package ai

import (
	"testing"

	"hermes/pkg/errors"
)

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient("", 0, 0); !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestNewOpenAIClientDefaults(t *testing.T) {
	client, err := NewOpenAIClient("sk-test", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.timeout == 0 {
		t.Error("timeout default not applied")
	}
	if client.limiter != nil {
		t.Error("rate limiting should be disabled when rate is zero")
	}
}

func TestFirstChoice(t *testing.T) {
	var nilResp *ChatResponse
	if _, ok := nilResp.FirstChoice(); ok {
		t.Error("nil response must have no choice")
	}

	if _, ok := (&ChatResponse{}).FirstChoice(); ok {
		t.Error("empty choices must have no choice")
	}

	if _, ok := (&ChatResponse{Choices: []Choice{{Content: ""}}}).FirstChoice(); ok {
		t.Error("blank completion text is not usable")
	}

	text, ok := (&ChatResponse{Choices: []Choice{{Content: "hi"}, {Content: "other"}}}).FirstChoice()
	if !ok || text != "hi" {
		t.Errorf("expected first choice text, got %q (%v)", text, ok)
	}
}
