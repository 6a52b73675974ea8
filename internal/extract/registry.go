// Package extract turns stored documents into prompt text.
package extract

import (
	"fmt"
)

// Extractor reads the text content of one kind of document.
type Extractor interface {
	Name() string
	CanExtract(fileName string) bool
	Extract(filePath string) (string, error)
}

// Registry holds the available extractors in priority order.
type Registry struct {
	extractors []Extractor
}

// NewRegistry returns a registry with the spreadsheet extractor first and
// the UTF-8 text extractor as the catch-all.
func NewRegistry() *Registry {
	return &Registry{
		extractors: []Extractor{
			NewSpreadsheetExtractor(),
			NewTextExtractor(),
		},
	}
}

// Register adds an extractor ahead of the existing ones.
func (r *Registry) Register(e Extractor) {
	r.extractors = append([]Extractor{e}, r.extractors...)
}

// FindExtractor selects the extractor for a file name.
func (r *Registry) FindExtractor(fileName string) (Extractor, error) {
	for _, e := range r.extractors {
		if e.CanExtract(fileName) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no suitable extractor found for file: %s", fileName)
}
