// Package slog provides logging decorators for htmladf interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmladf"
)

// Ensure LoggingConverter implements htmladf.Converter.
var _ htmladf.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging of conversion
// outcomes.
type LoggingConverter struct {
	next   htmladf.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next htmladf.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs input size, output
// node count and duration.
func (c *LoggingConverter) Convert(html string) (*htmladf.Node, error) {
	begin := time.Now()
	doc, err := c.next.Convert(html)
	if err != nil {
		c.logger.Error("conversion failed",
			"code", htmladf.ErrorCode(err),
			"message", htmladf.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	c.logger.Debug("converted document",
		"input_bytes", len(html),
		"nodes", doc.Count(),
		"duration", time.Since(begin),
	)
	return doc, nil
}
