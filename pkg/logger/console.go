package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// ConsoleHandler is a slog.Handler that renders human-oriented, colorized
// single-line records:
//
//	2026-01-02 15:04:05 [WARNING] [worker] poller.go:87: retrying key=value
//
// Timestamps, caller info, and the signature tag are all optional. Output
// is colorized per level; wrap the writer selection in a TTY check if logs
// may be redirected to files.
type ConsoleHandler struct {
	opts   ConsoleOptions
	attrs  []slog.Attr
	groups []string

	mu  *sync.Mutex
	out io.Writer
}

// ConsoleOptions configures a ConsoleHandler.
type ConsoleOptions struct {
	Level      slog.Leveler // minimum level, defaults to Info
	Signature  string       // tag prepended to every record
	AddSource  bool         // append file:line of the caller
	Timestamps bool         // prepend wall-clock timestamps
	NoColor    bool         // strip ANSI sequences
}

// NewConsoleHandler creates a console handler writing to out.
func NewConsoleHandler(out io.Writer, opts ConsoleOptions) *ConsoleHandler {
	return &ConsoleHandler{
		opts: opts,
		mu:   &sync.Mutex{},
		out:  out,
	}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

func (h *ConsoleHandler) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder

	if h.opts.Timestamps && !rec.Time.IsZero() {
		b.WriteString(rec.Time.Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "[%s] ", levelLabel(rec.Level))

	if h.opts.Signature != "" {
		fmt.Fprintf(&b, "[%s] ", h.opts.Signature)
	}

	if h.opts.AddSource && rec.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{rec.PC}).Next()
		if frame.File != "" {
			fmt.Fprintf(&b, "%s:%d: ", filepath.Base(frame.File), frame.Line)
		}
	}

	b.WriteString(rec.Message)

	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		writeAttr(&b, prefix, attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, prefix, attr)
		return true
	})

	line := b.String()
	if !h.opts.NoColor {
		line = Colorize(line, levelColor(rec.Level))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, attr.Value.Resolve())
}
