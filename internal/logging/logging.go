// Package logging configures the process-wide slog logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// Config selects the log level, format and optional Seq endpoint.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	SeqURL string // empty disables Seq
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level: %s (must be debug, info, warn, or error)", s)
	}
}

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// validateSeqURL requires an absolute http(s) URL with a host.
func validateSeqURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid seq-url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid seq-url: %s (must be an http or https URL)", raw)
	}
	return nil
}

// New builds a logger writing to w and, when cfg.SeqURL is set, to Seq.
// The returned function flushes and closes the Seq sink.
func New(cfg Config, w io.Writer) (*slog.Logger, func(), error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var console slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		console = slog.NewJSONHandler(w, handlerOpts)
	case "text", "":
		console = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, nil, fmt.Errorf("invalid log-format: %s (must be text or json)", cfg.Format)
	}

	if cfg.SeqURL == "" {
		return slog.New(console), func() {}, nil
	}

	if err := validateSeqURL(cfg.SeqURL); err != nil {
		return nil, nil, err
	}

	_, seqHandler := slogseq.NewLogger(
		cfg.SeqURL,
		slogseq.WithBatchSize(50),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(handlerOpts),
	)

	multi := &multiHandler{
		handlers: []slog.Handler{console, seqHandler},
	}
	return slog.New(multi), func() { seqHandler.Close() }, nil
}
