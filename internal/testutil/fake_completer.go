package testutil

import (
	"context"
	"sync"

	"github.com/docqanda/backend/internal/completion"
)

// FakeCompleter records prompts and replies with a scripted answer.
type FakeCompleter struct {
	mu      sync.Mutex
	prompts []string

	Answer string
	Err    error
	Name   string
}

// NewFakeCompleter returns a completer that always answers answer.
func NewFakeCompleter(answer string) *FakeCompleter {
	return &FakeCompleter{Answer: answer, Name: "Fake"}
}

func (f *FakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.Answer, nil
}

func (f *FakeCompleter) Provider() string {
	return f.Name
}

// Prompts returns every prompt received so far.
func (f *FakeCompleter) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// LastPrompt returns the most recent prompt, or "" if none.
func (f *FakeCompleter) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

var _ completion.Completer = (*FakeCompleter)(nil)
