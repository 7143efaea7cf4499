package formatter

import (
	"errors"
	"fmt"
	"io"

	"github.com/penwyp/go-earth-clock/internal/core/model"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formatter writes a batch of rendered events
type Formatter interface {
	Format(data []model.EventDisplay) error
}

// Options configures the formatter returned by New
type Options struct {
	Writer    io.Writer
	Colored   bool
	MaxWidth  int    // Table width limit; zero means unlimited
	SpanLabel string // Summary span, e.g. "4.6 billion years on a 24-hour clock"
}

// New returns the formatter for the named output format
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTextFormatter(opts.Writer, opts.Colored), nil
	case "table":
		return NewTableFormatter(opts.Writer, opts.MaxWidth), nil
	case "json":
		return NewJSONFormatter(opts.Writer), nil
	case "csv":
		return NewCSVFormatter(opts.Writer), nil
	case "summary":
		return NewSummaryFormatter(opts.Writer, opts.SpanLabel), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
