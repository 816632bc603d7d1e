package config

import (
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/session"
	"ctchen222/tictactoe-cli/internal/validator"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is read from command-line flags only.
type Config struct {
	Difficulty   int    `validate:"min=1,max=4"`
	Mark         string `validate:"mark"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	OtelEndpoint string `validate:"omitempty,hostname_port"`
}

// Parse reads args (without the program name). Usage and flag errors go to errOut.
func Parse(args []string, errOut io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	fs.SetOutput(errOut)

	cfg := &Config{}
	fs.IntVar(&cfg.Difficulty, "difficulty", session.DefaultDifficulty, "initial difficulty, 1 to 4")
	fs.StringVar(&cfg.Mark, "mark", string(session.DefaultMark), "initial human mark, X or O")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.OtelEndpoint, "otel-endpoint", "", "OTLP gRPC collector host:port; telemetry is off when empty")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// HumanMark returns the configured mark as a game mark.
func (c *Config) HumanMark() game.PlayerMark {
	return game.PlayerMark(c.Mark)
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
