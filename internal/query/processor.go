// Package query answers questions about stored documents.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/docqanda/backend/internal/completion"
	"github.com/docqanda/backend/internal/extract"
	"github.com/phuslu/log"
)

const promptTemplate = "Answer the following based on this document:\n\n%s\n\nQuestion: %s"

// DocumentSource resolves stored document names to paths.
// It returns an error wrapping storage.ErrNotFound for unknown names.
type DocumentSource interface {
	Path(name string) (string, error)
}

// Processor extracts a document's text and asks the completion API about it.
type Processor struct {
	docs       DocumentSource
	extractors *extract.Registry
	completer  completion.Completer
	logger     *log.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(docs DocumentSource, extractors *extract.Registry, completer completion.Completer, logger *log.Logger) *Processor {
	return &Processor{
		docs:       docs,
		extractors: extractors,
		completer:  completer,
		logger:     logger,
	}
}

// BuildPrompt combines document text and question.
func BuildPrompt(document, question string) string {
	return fmt.Sprintf(promptTemplate, document, question)
}

// Query answers question from the content of the document named fileName.
//
// Errors wrap storage.ErrNotFound when the document is absent, and are
// *ExtractionError or *UpstreamError otherwise.
func (p *Processor) Query(ctx context.Context, fileName, question string) (string, error) {
	path, err := p.docs.Path(fileName)
	if err != nil {
		return "", err
	}

	extractor, err := p.extractors.FindExtractor(fileName)
	if err != nil {
		return "", &ExtractionError{FileName: fileName, Err: err}
	}

	content, err := extractor.Extract(path)
	if err != nil {
		return "", &ExtractionError{FileName: fileName, Err: err}
	}

	prompt := BuildPrompt(content, question)
	p.logger.Debug().
		Str("file_name", fileName).
		Str("extractor", extractor.Name()).
		Int("prompt_bytes", len(prompt)).
		Msg("sending prompt")

	text, err := p.completer.Complete(ctx, prompt)
	if err != nil {
		p.logger.Error().
			Err(err).
			Str("provider", p.completer.Provider()).
			Str("file_name", fileName).
			Msg("completion failed")
		return "", &UpstreamError{Provider: p.completer.Provider(), Err: err}
	}

	return strings.TrimSpace(text), nil
}
