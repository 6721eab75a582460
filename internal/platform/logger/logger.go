package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap so every component shares one configured instance.
type Logger struct {
	*zap.Logger
	config Config
}

var (
	globalLogger *Logger
	once         sync.Once
)

// NewLogger builds the process-wide logger from the environment.
// Subsequent calls return the same instance.
func NewLogger() *Logger {
	once.Do(func() {
		cfg := ConfigFromEnv()
		l, err := New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing zap logger: %v. Falling back to production defaults.\n", err)
			z, _ := zap.NewProduction()
			l = &Logger{Logger: z, config: cfg}
		}
		globalLogger = l
		globalLogger.Info("Logger initialized",
			zap.Stringer("level", cfg.Level),
			zap.String("format", string(cfg.Format)),
			zap.String("output_file", cfg.OutputFile))
	})
	return globalLogger
}

// New builds a logger from an explicit config.
func New(cfg Config) (*Logger, error) {
	var zapConfig zap.Config
	if cfg.Level == zapcore.DebugLevel {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(cfg.Level)

	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	if cfg.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot create log directory for %q, logging to stdout only: %v\n", cfg.OutputFile, err)
		} else {
			zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.OutputFile)
			zapConfig.ErrorOutputPaths = append(zapConfig.ErrorOutputPaths, cfg.OutputFile)
		}
	}

	if cfg.Format == FormatConsole {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig.Encoding = "json"
	}

	z, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &Logger{Logger: z, config: cfg}, nil
}

// FromZap wraps an existing zap logger. Tests use it with zap.NewNop or zap.NewDevelopment.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{Logger: z, config: Config{Level: zapcore.DebugLevel, Format: FormatConsole}}
}

// Named adds a new path segment to the logger's name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name), config: l.config}
}

// With adds structured context to the logger.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...), config: l.config}
}
