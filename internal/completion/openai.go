package completion

import (
	"context"
	"time"

	"github.com/docqanda/backend/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompleter calls the legacy OpenAI completions endpoint.
type OpenAICompleter struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewOpenAICompleter builds a completer from cfg. An empty API key is
// accepted; requests then fail with the API's authentication error.
func NewOpenAICompleter(cfg config.CompletionConfig) *OpenAICompleter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAICompleter{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func (c *OpenAICompleter) Provider() string {
	return "OpenAI"
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:     c.model,
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Text, nil
}
