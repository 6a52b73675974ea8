package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/docqanda/backend/internal/config"
)

// New creates the Completer selected by cfg.Provider.
func New(ctx context.Context, cfg config.CompletionConfig) (Completer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		return NewOpenAICompleter(cfg), nil
	case "gemini":
		return NewGeminiCompleter(ctx, cfg), nil
	case "anthropic", "claude":
		return NewAnthropicCompleter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", cfg.Provider)
	}
}
