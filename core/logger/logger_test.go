package logger_test

import (
	"testing"

	"grip-attendance/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		off     zapcore.Level
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console", Output: "stderr"}, zapcore.DebugLevel, zapcore.Level(-2)},
		{"InfoJSON", logger.Config{Level: "info", Format: "json", Output: "stderr"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"Warn", logger.Config{Level: "warn", Format: "console", Output: "stderr"}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"UnknownLevelFallsBackToInfo", logger.Config{Level: "chatty", Format: "json"}, zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.off))
		})
	}
}

func TestWithRunID(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "info", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	assert.Same(t, l, logger.WithRunID(l, ""))
	assert.NotSame(t, l, logger.WithRunID(l, "run-1"))
}
