package agents

import (
	"hermes/internal/adapters/ai"
	"hermes/internal/adapters/search"
	"hermes/pkg/errors"
)

const defaultModel = "gpt-4o-mini"

// FactoryDeps gathers the external clients agents are built on.
type FactoryDeps struct {
	Chat   ai.ChatClient
	Search search.Client
	Model  string

	// PromptOverrides replaces a variant's default persona at
	// construction time. Agents are immutable once built.
	PromptOverrides map[AgentType]string
}

// Factory creates configured agents and ordered chains. Agents share the
// factory's read-only clients by reference, so one factory serves all
// concurrent requests.
type Factory struct {
	chat      ai.ChatClient
	search    search.Client
	model     string
	overrides map[AgentType]string
}

// NewFactory builds an agent factory with required dependencies.
func NewFactory(deps FactoryDeps) (*Factory, error) {
	if deps.Chat == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "chat client is required")
	}
	if deps.Search == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "search client is required")
	}
	if deps.Model == "" {
		deps.Model = defaultModel
	}

	return &Factory{
		chat:      deps.Chat,
		search:    deps.Search,
		model:     deps.Model,
		overrides: deps.PromptOverrides,
	}, nil
}

// Create constructs a single agent of the given type.
func (f *Factory) Create(agentType AgentType) (Agent, error) {
	override := f.overrides[agentType]

	switch agentType {
	case AgentResearcher:
		return NewResearcher(f.chat, f.search, f.model, override)
	case AgentWriter:
		return NewWriter(f.chat, f.model, override)
	case AgentTwitter:
		return NewTwitterAgent(f.chat, f.model, override)
	case AgentLinkedIn:
		return NewLinkedInAgent(f.chat, f.model, override)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAgent, "%s", agentType)
	}
}

// CreateChain constructs agents in the given order. Order is the caller's
// business; no deduplication or compatibility checks happen here.
func (f *Factory) CreateChain(types []AgentType) ([]Agent, error) {
	chain := make([]Agent, 0, len(types))
	for _, t := range types {
		agent, err := f.Create(t)
		if err != nil {
			return nil, err
		}
		chain = append(chain, agent)
	}
	return chain, nil
}

// ParseType maps a request-supplied name to an AgentType.
func ParseType(name string) (AgentType, error) {
	switch AgentType(name) {
	case AgentResearcher, AgentWriter, AgentTwitter, AgentLinkedIn:
		return AgentType(name), nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownAgent, "%s", name)
	}
}
