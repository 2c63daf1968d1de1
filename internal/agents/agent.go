package agents

import (
	"context"
	"time"

	"hermes/internal/adapters/ai"
	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

// Agent is the capability contract every variant implements: a stable
// identity, a fixed persona instruction, and one transform operation that
// sends the instruction (plus optional auxiliary context) to the completion
// backend and returns the model's reply.
type Agent interface {
	Name() string
	SystemPrompt() string
	Transform(ctx context.Context, instruction string, auxContext string) (string, error)
}

// promptAgent carries the shared prompt-sending logic. Variants embed it
// and differ only in persona and, for the Researcher, an auxiliary
// data-gathering step. Read-only after construction; safe for concurrent
// pipeline runs.
type promptAgent struct {
	name      string
	agentType AgentType
	system    string
	model     string
	chat      ai.ChatClient
	log       *logger.Logger
}

// newPromptAgent builds the shared agent core. systemOverride replaces the
// variant's default persona when non-empty; the prompt is immutable after
// this point.
func newPromptAgent(agentType AgentType, name, defaultSystem, systemOverride, model string, chat ai.ChatClient) (*promptAgent, error) {
	if chat == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "chat client is required")
	}

	system := defaultSystem
	if systemOverride != "" {
		system = systemOverride
	}
	if system == "" {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "agent %s has no system prompt", name)
	}

	return &promptAgent{
		name:      name,
		agentType: agentType,
		system:    system,
		model:     model,
		chat:      chat,
		log:       logger.Get().With("component", "agent", "agent", name),
	}, nil
}

func (a *promptAgent) Name() string         { return a.name }
func (a *promptAgent) Type() AgentType      { return a.agentType }
func (a *promptAgent) SystemPrompt() string { return a.system }

// Transform sends a two-message exchange (persona system message, user
// instruction with optional labeled context) to the completion backend and
// returns the first candidate's text.
func (a *promptAgent) Transform(ctx context.Context, instruction string, auxContext string) (string, error) {
	user := instruction
	if auxContext != "" {
		user = instruction + "\n\nProvided context:\n" + auxContext
	}

	req := ai.ChatRequest{
		Model: a.model,
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: a.system},
			{Role: ai.RoleUser, Content: user},
		},
	}

	started := time.Now()
	resp, err := a.chat.Chat(ctx, req)
	metrics.AgentLatency.WithLabelValues(a.name, a.model).Observe(time.Since(started).Seconds())

	if err != nil {
		metrics.AgentCalls.WithLabelValues(a.name, a.model, "error").Inc()
		return "", err
	}

	metrics.AgentCalls.WithLabelValues(a.name, a.model, "success").Inc()
	metrics.AgentTokens.WithLabelValues(a.name, a.model, "input").Add(float64(resp.Usage.PromptTokens))
	metrics.AgentTokens.WithLabelValues(a.name, a.model, "output").Add(float64(resp.Usage.CompletionTokens))

	text, ok := resp.FirstChoice()
	if !ok {
		return "", errors.Wrapf(errors.ErrEmptyCompletion, "agent %s received no usable text", a.name)
	}

	a.log.Infow("transform completed", "result", text)

	return text, nil
}
