package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mytheresa/go-shopping-cart/config"
)

// ServiceName is attached to every log line.
const ServiceName = "shop"

// New builds a logger from configuration. Production writes JSON,
// anything else writes human-friendly console output.
func New(cfg *config.Config) (*zap.Logger, error) {
	level := parseLevel(cfg.Log.Level)
	fields := zap.Fields(
		zap.String("service", ServiceName),
		zap.String("environment", cfg.Env),
	)

	if cfg.Env == "production" {
		prodConfig := zap.NewProductionConfig()
		prodConfig.Level = zap.NewAtomicLevelAt(level)
		prodConfig.EncoderConfig.TimeKey = "timestamp"
		prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return prodConfig.Build(fields)
	}

	devConfig := zap.NewDevelopmentConfig()
	devConfig.Level = zap.NewAtomicLevelAt(level)
	devConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return devConfig.Build(fields)
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
