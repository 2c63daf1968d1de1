package agents

import (
	"hermes/internal/adapters/ai"
)

const twitterSystemPrompt = `You are an agent.

You will receive a piece of researched or written content from another agent.
Your job is to condense it into a single engaging Twitter post.

Rules:
- Stay under 280 characters
- Lead with the hook, not the background
- No hashtag spam; at most two relevant hashtags
- Plain text only, no markdown

Content:
`

const linkedInSystemPrompt = `You are an agent.

You will receive a piece of researched or written content from another agent.
Your job is to rewrite it as a LinkedIn post aimed at a professional audience.

Rules:
- Open with a one-line insight that earns the "see more" click
- Short paragraphs, generous line breaks
- End with a question or call to action that invites discussion
- No emoji walls and no engagement bait

Content:
`

// TwitterAgent formats upstream content as a single tweet.
type TwitterAgent struct {
	*promptAgent
}

// NewTwitterAgent creates a TwitterAgent. systemOverride replaces the
// default persona when non-empty.
func NewTwitterAgent(chat ai.ChatClient, model, systemOverride string) (*TwitterAgent, error) {
	base, err := newPromptAgent(AgentTwitter, "TwitterAgent", twitterSystemPrompt, systemOverride, model, chat)
	if err != nil {
		return nil, err
	}
	return &TwitterAgent{promptAgent: base}, nil
}

// LinkedInAgent formats upstream content as a LinkedIn post.
type LinkedInAgent struct {
	*promptAgent
}

// NewLinkedInAgent creates a LinkedInAgent. systemOverride replaces the
// default persona when non-empty.
func NewLinkedInAgent(chat ai.ChatClient, model, systemOverride string) (*LinkedInAgent, error) {
	base, err := newPromptAgent(AgentLinkedIn, "LinkedInAgent", linkedInSystemPrompt, systemOverride, model, chat)
	if err != nil {
		return nil, err
	}
	return &LinkedInAgent{promptAgent: base}, nil
}
