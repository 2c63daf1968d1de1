package ai

import (
	"context"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/time/rate"

	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

// Ensure OpenAIClient implements ChatClient
var _ ChatClient = (*OpenAIClient)(nil)

// OpenAIClient implements ChatClient using the official OpenAI Go SDK
type OpenAIClient struct {
	client  openai.Client // NewClient returns Client (not *Client)
	timeout time.Duration
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewOpenAIClient creates a chat client backed by the OpenAI API.
// reqPerMinute bounds outgoing request rate; 0 disables limiting.
func NewOpenAIClient(apiKey string, timeout time.Duration, reqPerMinute float64) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "openai API key is required")
	}

	if timeout == 0 {
		timeout = 60 * time.Second
	}

	var limiter *rate.Limiter
	if reqPerMinute > 0 {
		burst := int(reqPerMinute / 10)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(reqPerMinute/60.0), burst)
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIClient{
		client:  client,
		timeout: timeout,
		limiter: limiter,
		log:     logger.Get().With("component", "openai_chat"),
	}, nil
}

// Chat sends a chat completion request to the OpenAI API.
func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(errors.ErrBackend, err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrBackend, "openai chat completion: %v", err)
	}

	resp := &ChatResponse{
		ID:    completion.ID,
		Model: completion.Model,
		Usage: Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}

	for _, choice := range completion.Choices {
		resp.Choices = append(resp.Choices, Choice{
			Index:   int(choice.Index),
			Content: choice.Message.Content,
		})
	}

	c.log.Debugw("chat completion finished",
		"model", resp.Model,
		"choices", len(resp.Choices),
		"total_tokens", resp.Usage.TotalTokens,
	)

	return resp, nil
}
