package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/alkime/fastgenius/internal/config"
	"github.com/alkime/fastgenius/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.Level(&config.Config{Env: "development", LogLevel: "info"}))
	assert.Equal(t, slog.LevelInfo, logger.Level(&config.Config{Env: "production", LogLevel: "info"}))
	assert.Equal(t, slog.LevelDebug, logger.Level(&config.Config{Env: "production", LogLevel: "debug"}))
	assert.Equal(t, slog.LevelError, logger.Level(&config.Config{Env: "production", LogLevel: "error"}))
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, &config.Config{Env: "production", LogLevel: "info"})

	log.Debug("hidden")
	log.Info("visible", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"visible"`)
	assert.Contains(t, out, `"key":"value"`)
}
