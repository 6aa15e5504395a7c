package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	original := logger.Logger()
	t.Cleanup(func() { logger.SetLogger(original) })

	t.Run("custom logger receives records", func(t *testing.T) {
		var buf bytes.Buffer
		logger.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
		logger.Logger().Info("hello", "key", 1)
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "key=1")
	})

	t.Run("nil installs a discard logger", func(t *testing.T) {
		logger.SetLogger(nil)
		require.NotNil(t, logger.Logger())
		logger.Logger().Error("dropped")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("loud"))
}
