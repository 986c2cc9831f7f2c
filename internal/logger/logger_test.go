package logger_test

import (
	"testing"

	"github.com/straye-as/bizdesk-api/internal/config"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		env     string
		enabled zapcore.Level
		off     zapcore.Level
	}{
		{"debug console", "debug", "console", "development", zapcore.DebugLevel, zapcore.Level(-2)},
		{"warn json", "warn", "json", "development", zapcore.WarnLevel, zapcore.InfoLevel},
		{"production forces json", "error", "console", "production", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"invalid level falls back to info", "loud", "console", "development", zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(
				&config.LoggingConfig{Level: tt.level, Format: tt.format},
				&config.AppConfig{Name: "bizdesk-api", Environment: tt.env},
			)

			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled))
			assert.False(t, log.Core().Enabled(tt.off))
		})
	}
}

func TestWithEntityAndRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	logger.WithEntity(base, "invoice", "INV-1").Info("invoice status changed")
	logger.WithRequest(base, "GET", "/api/v1/offers", "req-1").Info("request")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "invoice", entries[0].ContextMap()["entity"])
	assert.Equal(t, "INV-1", entries[0].ContextMap()["entity_id"])
	assert.Equal(t, "/api/v1/offers", entries[1].ContextMap()["path"])
	assert.Equal(t, "req-1", entries[1].ContextMap()["request_id"])
}
