package logging

import (
	"testing"

	"userservice/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		env   config.Environment
		level string
		want  zapcore.Level
	}{
		{config.Development, "debug", zapcore.DebugLevel},
		{config.Development, "info", zapcore.InfoLevel},
		{config.Production, "warn", zapcore.WarnLevel},
		{config.Production, "error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.env)+"/"+tt.level, func(t *testing.T) {
			logger, err := NewLogger(&config.Config{Environment: tt.env, LogLevel: tt.level})
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&config.Config{Environment: config.Development, LogLevel: "loud"})
	assert.Error(t, err)
}
