package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs logfmt-style records via slog's text handler.
	FormatText Format = "text"
	// FormatConsole outputs colorized human-readable records.
	FormatConsole Format = "console"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	signature  string
	addSource  bool
	timestamps bool
	noColor    bool
}

// Console output with timestamps is the default: this toolkit's loggers
// mostly feed developer terminals, not aggregation pipelines.
func defaultConfig() *config {
	return &config{
		level:      slog.LevelInfo,
		format:     FormatConsole,
		output:     os.Stdout,
		timestamps: true,
	}
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. Panics for unknown formats to enforce
// fail-fast initialization; a misconfigured logger should prevent startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText, FormatConsole:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q, %q or %q",
				f, FormatJSON, FormatText, FormatConsole))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithSignature tags every console record with a fixed name, useful when
// several components share one terminal.
func WithSignature(signature string) Option {
	return func(c *config) { c.signature = signature }
}

// WithSource appends the caller's file:line to each record.
func WithSource() Option {
	return func(c *config) { c.addSource = true }
}

// WithoutTimestamps drops wall-clock timestamps from console records.
func WithoutTimestamps() Option {
	return func(c *config) { c.timestamps = false }
}

// WithoutColor strips ANSI sequences from console records, for output that
// is captured or redirected.
func WithoutColor() Option {
	return func(c *config) { c.noColor = true }
}

// New creates a configured slog.Logger.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.output, &slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: cfg.addSource,
		})
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, &slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: cfg.addSource,
		})
	default:
		handler = NewConsoleHandler(cfg.output, ConsoleOptions{
			Level:      cfg.level,
			Signature:  cfg.signature,
			AddSource:  cfg.addSource,
			Timestamps: cfg.timestamps,
			NoColor:    cfg.noColor,
		})
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Banner logs text surrounded by a full-width separator line, making it
// easy to spot section boundaries in busy terminal output.
func Banner(l *slog.Logger, text string, symbol string) {
	if symbol == "" {
		symbol = "="
	}
	header := strings.Repeat(symbol, max(120/len(symbol), 1))
	l.Info(header)
	l.Info(text)
	l.Info(header)
}
