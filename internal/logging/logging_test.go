package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "level %q", tt.input)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Config{Level: "info"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("shown", "rows", 2)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "rows=2")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Config{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("loaded", "path", "a.csv")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	require.Equal(t, "loaded", entry["msg"])
	require.Equal(t, "a.csv", entry["path"])
}

func TestNew_InvalidFormat(t *testing.T) {
	_, _, err := New(Config{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_InvalidSeqURL(t *testing.T) {
	for _, raw := range []string{"localhost:5341", "ftp://seq.local", "http://", "://bad"} {
		_, _, err := New(Config{SeqURL: raw}, &bytes.Buffer{})
		require.Error(t, err, "seq url %q", raw)
		require.Contains(t, err.Error(), "invalid seq-url")
	}
}

func TestValidateSeqURL(t *testing.T) {
	require.NoError(t, validateSeqURL("http://localhost:5341"))
	require.NoError(t, validateSeqURL("https://seq.example.com"))
}

type recordingHandler struct {
	level   slog.Level
	records []string
}

func (h *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Message)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestMultiHandler(t *testing.T) {
	quiet := &recordingHandler{level: slog.LevelError}
	loud := &recordingHandler{level: slog.LevelDebug}
	logger := slog.New(&multiHandler{handlers: []slog.Handler{quiet, loud}})

	logger.Info("one")
	logger.Error("two")

	require.Equal(t, []string{"two"}, quiet.records)
	require.Equal(t, []string{"one", "two"}, loud.records)
}
