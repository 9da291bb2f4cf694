package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New construct a sugared production logger tagged with the service name.
// Logs go to stdout unless outputPaths says otherwise.
func New(service string, outputPaths ...string) (*zap.SugaredLogger, error) {
	return NewAt(service, zapcore.InfoLevel, outputPaths...)
}

// NewAt is New writing entries from level up
func NewAt(service string, level zapcore.Level, outputPaths ...string) (*zap.SugaredLogger, error) {
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = outputPaths
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{
		"service": service,
	}

	log, err := config.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
