// Package logger wraps zap: one process-wide structured logger plus the
// gin middleware that feeds it.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lojinha/internal/config"
)

var log *zap.Logger = zap.NewNop()

// Init builds the global logger. Production gets JSON output with
// ISO-8601 timestamps; anything else gets the colored development
// encoder.
func Init(cfg config.LogConfig, serviceName string) error {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var (
		built *zap.Logger
		err   error
	)
	if cfg.Environment == "production" {
		prodConfig := zap.NewProductionConfig()
		prodConfig.Level = zap.NewAtomicLevelAt(level)
		prodConfig.EncoderConfig.TimeKey = "timestamp"
		prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		built, err = prodConfig.Build(zap.Fields(zap.String("service", serviceName)))
	} else {
		devConfig := zap.NewDevelopmentConfig()
		devConfig.Level = zap.NewAtomicLevelAt(level)
		devConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		built, err = devConfig.Build(zap.Fields(zap.String("service", serviceName)))
	}
	if err != nil {
		return err
	}

	log = built
	zap.ReplaceGlobals(log)
	return nil
}

// Get returns the global logger.
func Get() *zap.Logger {
	return log
}
