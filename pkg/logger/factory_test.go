package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otb/utility/pkg/config"
	"github.com/otb/utility/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("info level drops debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "signup")))
		log.Info("hello")
		assert.Equal(t, "signup", decode(t, buf)["svc"])
	})

	t.Run("context values", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", ctxKey{}))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello")
		assert.Equal(t, "req-1", decode(t, buf)["request_id"])

		buf.Reset()
		log.With("k", "v").InfoContext(context.Background(), "no id")
		entry := decode(t, buf)
		assert.NotContains(t, entry, "request_id")
		assert.Equal(t, "v", entry["k"])
	})

	t.Run("development preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithDevelopment("validator"))
		log.Debug("visible")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "component=validator")
	})

	t.Run("production preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithProduction("validator"))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
		log.Info("visible")
		assert.Equal(t, "validator", decode(t, buf)["component"])
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Run("reads level and format", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "text")

		buf := &bytes.Buffer{}
		log, err := logger.NewFromEnv(logger.WithOutput(buf))
		require.NoError(t, err)
		log.Debug("visible")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_LEVEL", "loud")
		t.Setenv("LOG_FORMAT", "json")

		_, err := logger.NewFromEnv()
		assert.ErrorIs(t, err, logger.ErrInvalidLogConfig)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("LOG_FORMAT", "xml")

		_, err := logger.NewFromEnv()
		assert.ErrorIs(t, err, logger.ErrInvalidLogConfig)
	})
}

func TestAttrs(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	})

	t.Run("group", func(t *testing.T) {
		attr := logger.Group("rejected", slog.String("email", "validation.email"))
		assert.Equal(t, "rejected", attr.Key)
		assert.Len(t, attr.Value.Group(), 1)
	})
}
