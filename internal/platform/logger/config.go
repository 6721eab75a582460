package logger

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Config is the parsed logger setup. An empty OutputFile logs to stdout only.
type Config struct {
	Level      zapcore.Level
	Format     Format
	OutputFile string
}

// ConfigFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT_FILE. The logger is
// built before the application config, so it uses its own viper instance.
func ConfigFromEnv() Config {
	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", string(FormatJSON))
	v.SetDefault("LOG_OUTPUT_FILE", "stdout")
	v.AutomaticEnv()

	return Config{
		Level:      parseLevel(v.GetString("LOG_LEVEL")),
		Format:     parseFormat(v.GetString("LOG_FORMAT")),
		OutputFile: parseOutput(v.GetString("LOG_OUTPUT_FILE")),
	}
}

// parseLevel accepts zap level names in any case plus "warning"; anything else is info.
func parseLevel(s string) zapcore.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func parseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console", "text":
		return FormatConsole
	default:
		return FormatJSON
	}
}

func parseOutput(s string) string {
	switch s = strings.TrimSpace(s); s {
	case "", "stdout", "stderr":
		return ""
	default:
		return s
	}
}
