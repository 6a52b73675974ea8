package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docqanda/backend/internal/config"
	"google.golang.org/genai"
)

// GeminiCompleter calls the Gemini GenerateContent API.
type GeminiCompleter struct {
	client    *genai.Client
	initErr   error
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewGeminiCompleter builds a completer from cfg. Client construction
// errors (such as a missing key) are reported by Complete, not here.
func NewGeminiCompleter(ctx context.Context, cfg config.CompletionConfig) *GeminiCompleter {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		err = fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &GeminiCompleter{
		client:    client,
		initErr:   err,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func (c *GeminiCompleter) Provider() string {
	return "Gemini"
}

func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.initErr != nil {
		return "", c.initErr
	}

	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.maxTokens),
	})
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoChoices
	}

	// Only the first candidate counts; its parts form one answer.
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
