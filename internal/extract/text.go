package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// TextExtractor reads a whole file as UTF-8 text. It accepts any name.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) Name() string {
	return "text"
}

func (e *TextExtractor) CanExtract(fileName string) bool {
	return true
}

func (e *TextExtractor) Extract(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		pos := invalidOffset(data)
		return "", fmt.Errorf("'utf-8' codec can't decode byte 0x%02x in position %d", data[pos], pos)
	}

	return normalizeNewlines(string(data)), nil
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// invalidOffset returns the index of the first byte that does not start a valid UTF-8 sequence.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
