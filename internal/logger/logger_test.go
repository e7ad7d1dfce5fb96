package logger_test

import (
	"testing"

	"github.com/straye-as/finch-collector/internal/config"
	"github.com/straye-as/finch-collector/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		environment string
		level       string
		debug       bool
	}{
		{name: "development console logger", format: "console", environment: "development", level: "debug", debug: true},
		{name: "json logger", format: "json", environment: "development", level: "info"},
		{name: "production forces json", format: "console", environment: "production", level: "warn"},
		{name: "invalid level falls back to info", format: "console", environment: "development", level: "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(
				&config.LoggingConfig{Level: tt.level, Format: tt.format},
				&config.AppConfig{Name: "Finch Collector API", Environment: tt.environment},
			)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.debug, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestWithRequestAndFinch(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	logger.WithFinch(logger.WithRequest(base, "POST", "/api/v1/finches", "req-1"), "finch-1").Info("handled")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/v1/finches", fields["path"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "finch-1", fields["finch_id"])
}
