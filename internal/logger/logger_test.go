package logger_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/atinyakov/useful-links/internal/logger"
)

func TestNew(t *testing.T) {
	l := logger.New()
	require.NotNil(t, l.Log)
	require.False(t, l.Log.Core().Enabled(zapcore.ErrorLevel))
}

func TestInit_Levels(t *testing.T) {
	tests := []struct {
		level    string
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{level: "debug", enabled: zapcore.DebugLevel},
		{level: "info", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{level: "warn", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
		{level: "error", enabled: zapcore.ErrorLevel, disabled: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := logger.New()
			require.NoError(t, l.Init(tt.level))
			require.True(t, l.Log.Core().Enabled(tt.enabled))
			if tt.level != "debug" {
				require.False(t, l.Log.Core().Enabled(tt.disabled))
			}
		})
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	l := logger.New()
	require.Error(t, l.Init("loud"))
	require.NotNil(t, l.Log)
}
