package reason

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ppiankov/crosscheck/internal/model"
)

// OpenAIReasoner implements Reasoner on OpenAI's Chat Completions API
type OpenAIReasoner struct {
	client *openai.Client
	config model.ReasonerConfig
}

// NewOpenAIReasoner creates a new OpenAI-backed reasoner
func NewOpenAIReasoner(config model.ReasonerConfig) (*OpenAIReasoner, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIReasoner{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (r *OpenAIReasoner) Name() string { return "openai" }

// Reason implements Reasoner
func (r *OpenAIReasoner) Reason(ctx context.Context, claimText, contextString string) (*Draft, error) {
	reasonerModel := r.config.Model
	if reasonerModel == "" {
		reasonerModel = openai.GPT4oMini
	}

	maxTokens := r.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1500
	}

	timeout := time.Duration(r.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: reasonerModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a rigorous fact-checker. Follow the requested response format exactly.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(claimText, contextString),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.1,
	}

	resp, err := r.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%w: reasoner call: %v", model.ErrCollaboratorUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty reasoner response", model.ErrMalformedResponse)
	}

	return ParseDraft(strings.TrimSpace(resp.Choices[0].Message.Content))
}

// NewReasoner creates a reasoner from configuration. An empty provider
// disables reasoning (the pipeline then degrades to UNCERTAIN verdicts).
func NewReasoner(config model.ReasonerConfig) (Reasoner, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIReasoner(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown reasoner provider: %s (supported: openai)", config.Provider)
	}
}
