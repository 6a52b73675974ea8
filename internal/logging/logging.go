// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/docqanda/backend/internal/config"
	"github.com/phuslu/log"
)

// New returns a logger writing to stdout in the configured format.
func New(cfg config.LoggingConfig) *log.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) *log.Logger {
	logger := &log.Logger{
		Level: log.ParseLevel(cfg.Level),
	}

	if strings.EqualFold(cfg.Format, "json") {
		logger.Writer = &log.IOWriter{Writer: w}
	} else {
		logger.Writer = &log.ConsoleWriter{
			Writer:         w,
			ColorOutput:    w == os.Stdout,
			EndWithMessage: true,
		}
	}

	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return &log.Logger{
		Level:  log.ErrorLevel,
		Writer: &log.IOWriter{Writer: io.Discard},
	}
}
