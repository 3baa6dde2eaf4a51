package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearkit/bearkit/pkg/logger"
)

func TestNew_ConsoleFormat(t *testing.T) {
	t.Parallel()

	t.Run("plain record layout", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithoutColor(),
			logger.WithoutTimestamps(),
		)

		log.Info("hello", "answer", 42)

		assert.Equal(t, "[INFO] hello answer=42\n", buf.String())
	})

	t.Run("signature tag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithoutColor(),
			logger.WithoutTimestamps(),
			logger.WithSignature("probe"),
		)

		log.Warn("slow response")

		assert.Equal(t, "[WARNING] [probe] slow response\n", buf.String())
	})

	t.Run("colorized by level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithoutTimestamps(),
		)

		log.Error("boom")

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, string(logger.ColorRed)))
		assert.Contains(t, out, "[ERROR] boom")
	})

	t.Run("level threshold filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithoutColor(),
			logger.WithoutTimestamps(),
			logger.WithLevel(slog.LevelWarn),
		)

		log.Info("dropped")
		log.Warn("kept")

		assert.Equal(t, "[WARNING] kept\n", buf.String())
	})

	t.Run("silent threshold mutes everything", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(logger.LevelSilent),
		)

		log.Error("dropped")

		assert.Empty(t, buf.String())
	})

	t.Run("noise level records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithoutColor(),
			logger.WithoutTimestamps(),
			logger.WithLevel(logger.LevelNoise),
		)

		log.Log(context.Background(), logger.LevelNoise, "trace")

		assert.Equal(t, "[NOISE] trace\n", buf.String())
	})

	t.Run("static attrs and groups", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithoutColor(),
			logger.WithoutTimestamps(),
			logger.WithAttr(slog.String("svc", "kit")),
		)

		log.WithGroup("req").Info("done", "id", 7)

		assert.Equal(t, "[INFO] done svc=kit req.id=7\n", buf.String())
	})
}

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithAttr(slog.String("svc", "kit")),
	)

	log.Info("hello", "answer", 42)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "kit", record["svc"])
	assert.Equal(t, float64(42), record["answer"])
}

func TestWithFormat_InvalidPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logger.LevelNoise, logger.ParseLevel("noise"))
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, logger.LevelSilent, logger.ParseLevel("silent"))
	// Unknown names fall back to Info instead of failing.
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("bogus"))
}

func TestColorize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\033[92mok\033[0m", logger.Colorize("ok", logger.ColorGreen))
	assert.Equal(t, "ok", logger.Colorize("ok", ""))
}

func TestBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithoutColor(),
		logger.WithoutTimestamps(),
	)

	logger.Banner(log, "section two", "=")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[INFO] "+strings.Repeat("=", 120), lines[0])
	assert.Equal(t, "[INFO] section two", lines[1])
	assert.Equal(t, lines[0], lines[2])
}
