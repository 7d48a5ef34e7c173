package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	OutputStdout    = "stdout"
	OutputClipboard = "clipboard"
)

// Config holds defaults for the command line, read from the environment.
type Config struct {
	Length   int
	Output   string
	LogLevel slog.Level
}

// Load reads PASSGEN_* variables. Invalid values are reported and replaced
// by their defaults.
func Load() Config {
	cfg := Config{
		Length:   16,
		Output:   OutputStdout,
		LogLevel: slog.LevelInfo,
	}

	if v := getEnv("PASSGEN_LENGTH", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			slog.Warn("ignoring invalid PASSGEN_LENGTH", "value", v)
		} else {
			cfg.Length = n
		}
	}

	switch v := strings.ToLower(getEnv("PASSGEN_OUTPUT", OutputStdout)); v {
	case OutputStdout, OutputClipboard:
		cfg.Output = v
	default:
		slog.Warn("ignoring invalid PASSGEN_OUTPUT", "value", v)
	}

	switch v := strings.ToLower(getEnv("PASSGEN_LOG_LEVEL", "info")); v {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
	default:
		slog.Warn("ignoring invalid PASSGEN_LOG_LEVEL", "value", v)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
