package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with convenience constructors.
type Logger struct {
	*zap.Logger
}

// Config defines logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool
	OutputPaths []string
}

// New creates a new logger with the provided configuration.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          "json",
		EncoderConfig:     zap.NewProductionEncoderConfig(),
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Development,
	}
	if cfg.Development {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger}, nil
}

// NewDefault creates a production logger, falling back to a no-op logger on
// configuration failure.
func NewDefault() *Logger {
	logger, err := New(Config{Level: "info"})
	if err != nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}

// NewDevelopment creates a colored console logger at debug level.
func NewDevelopment() *Logger {
	logger, err := New(Config{Level: "debug", Development: true})
	if err != nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}
