package main

import (
	"context"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/config"
	"ctchen222/tictactoe-cli/internal/console"
	"ctchen222/tictactoe-cli/internal/controller"
	"ctchen222/tictactoe-cli/internal/logger"
	"ctchen222/tictactoe-cli/internal/session"
	"ctchen222/tictactoe-cli/internal/telemetry"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(context.Background(), cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(os.Stderr, cfg.SlogLevel())

	s := session.New(cfg.HumanMark(), cfg.Difficulty)
	ctrl, err := controller.NewController(s, bot.NewBot(nil))
	if err != nil {
		log.Fatalf("failed to create controller: %v", err)
	}

	// Ctrl+C ends the game loop
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.InfoContext(ctx, "console starting", "session.id", s.ID, "difficulty", cfg.Difficulty, "human.mark", s.HumanMark)
	if err := console.Run(ctx, os.Stdin, console.NewRenderer(os.Stdout), ctrl); err != nil {
		slog.ErrorContext(ctx, "console stopped", "error", err)
	}
}
