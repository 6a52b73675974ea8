// Package completion wraps the external text-completion APIs behind one interface.
package completion

import (
	"context"
	"errors"
	"time"
)

// ErrNoChoices is returned when the API answers without any completion.
var ErrNoChoices = errors.New("completion returned no choices")

// Completer sends a prompt to a completion API and returns the text of
// the first choice, unmodified.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// withTimeout bounds ctx when timeout is positive.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
