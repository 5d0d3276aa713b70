// Package logging builds the zap loggers used throughout tennisrl
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings supported by New
const (
	JSON    string = "json"
	Console string = "console"
)

// New returns a logger writing entries at level or above to stderr
// using the given encoding, either JSON or Console
func New(level, encoding string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	var encoderConfig zapcore.EncoderConfig
	switch encoding {
	case JSON:
		encoderConfig = zap.NewProductionEncoderConfig()
	case Console:
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("new: unknown log encoding %q", encoding)
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("new: could not build logger: %w", err)
	}
	return logger, nil
}
