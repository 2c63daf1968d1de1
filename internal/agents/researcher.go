package agents

import (
	"context"

	"hermes/internal/adapters/ai"
	"hermes/internal/adapters/search"
	"hermes/pkg/errors"
)

const researcherSystemPrompt = `You are an agent.

You will receive a question that may be quite short or does not have much context.
Your job is to research the Internet and to return with a high-quality summary to the user, assisted by the provided context.
The provided context will be in JSON format and contains data about the initial Google results for the website or query.

Be concise.

Question:
`

// Researcher answers short or under-specified questions by seeding its
// completion with live web-search results. The search document is auxiliary
// context for this agent only; downstream agents see just the summary text.
type Researcher struct {
	*promptAgent
	search search.Client
}

// NewResearcher creates a Researcher. systemOverride replaces the default
// persona when non-empty.
func NewResearcher(chat ai.ChatClient, searchClient search.Client, model, systemOverride string) (*Researcher, error) {
	if searchClient == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "search client is required")
	}

	base, err := newPromptAgent(AgentResearcher, "Researcher", researcherSystemPrompt, systemOverride, model, chat)
	if err != nil {
		return nil, err
	}

	return &Researcher{promptAgent: base, search: searchClient}, nil
}

// GatherContext queries the search backend with the raw query and returns
// the result document as a pretty-printed JSON string.
func (r *Researcher) GatherContext(ctx context.Context, query string) (string, error) {
	return r.search.Search(ctx, query)
}

// Transform gathers search context for the instruction when the caller
// supplied none, then runs the regular prompt exchange. A failed gather
// aborts the stage; there is no degraded no-context fallback.
func (r *Researcher) Transform(ctx context.Context, instruction string, auxContext string) (string, error) {
	if auxContext == "" {
		gathered, err := r.GatherContext(ctx, instruction)
		if err != nil {
			return "", err
		}
		auxContext = gathered
	}

	return r.promptAgent.Transform(ctx, instruction, auxContext)
}
