// Package logger builds the zap logger used by the maxflow binaries.
// Level and time format come from the environment through viper, so the
// CLI can be tuned without flags: LOG_LEVEL and LOG_TIME_FORMAT.
package logger

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted in LOG_LEVEL.
const (
	DebugLevel = -1
	InfoLevel  = 0
	WarnLevel  = 1
	ErrorLevel = 2
)

// New returns a production zap logger configured from the environment.
// Unknown LOG_LEVEL values are rejected rather than silently downgraded.
func New() (*zap.Logger, error) {
	viper.SetDefault("LOG_LEVEL", InfoLevel)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.AutomaticEnv()

	level := viper.GetInt("LOG_LEVEL")
	timeFormat := viper.GetString("LOG_TIME_FORMAT")

	var zapLevel zapcore.Level
	switch level {
	case DebugLevel:
		zapLevel = zapcore.DebugLevel
	case InfoLevel:
		zapLevel = zapcore.InfoLevel
	case WarnLevel:
		zapLevel = zapcore.WarnLevel
	case ErrorLevel:
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("logger: unknown LOG_LEVEL %d", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	return log, nil
}
