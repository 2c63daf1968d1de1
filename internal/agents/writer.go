package agents

import (
	"hermes/internal/adapters/ai"
)

const writerSystemPrompt = `You are an agent.

You will receive some context from another agent about some Google results that a user has searched.
Your job is to research the Internet and to write a high-quality article based on the search. The article must not appear to be AI written. The article should be SEO optimised without overly compromising the quality of the article.

You are free to be as creative as you wish. However, each paragraph must have the following:
- The point you are trying to make
- If there is a follow up action point
- Why the follow up action point exists (or why the user needs to carry it out)

Search query:
`

// Writer turns research output into a long-form article.
type Writer struct {
	*promptAgent
}

// NewWriter creates a Writer. systemOverride replaces the default persona
// when non-empty.
func NewWriter(chat ai.ChatClient, model, systemOverride string) (*Writer, error) {
	base, err := newPromptAgent(AgentWriter, "Writer", writerSystemPrompt, systemOverride, model, chat)
	if err != nil {
		return nil, err
	}
	return &Writer{promptAgent: base}, nil
}
