package agents

// AgentType identifies an agent variant for selection and logging.
type AgentType string

const (
	AgentResearcher AgentType = "researcher"
	AgentWriter     AgentType = "writer"
	AgentTwitter    AgentType = "twitter"
	AgentLinkedIn   AgentType = "linkedin"
)

// DefaultChain is the agent order used when a request does not select its own:
// research the query, then format the findings for each platform.
func DefaultChain() []AgentType {
	return []AgentType{AgentResearcher, AgentTwitter, AgentLinkedIn}
}
