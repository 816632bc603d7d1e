package controller

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	playerHuman = "human"
	playerAI    = "ai"

	outcomeHuman = "human"
	outcomeAI    = "ai"
	outcomeDraw  = "draw"
)

type metrics struct {
	commands metric.Int64Counter
	moves    metric.Int64Counter
	games    metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	commands, err := meter.Int64Counter("tictactoe.commands",
		metric.WithDescription("Console commands handled, by kind"))
	if err != nil {
		return nil, fmt.Errorf("failed to create commands counter: %w", err)
	}

	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Marks placed on the board, by player"))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}

	games, err := meter.Int64Counter("tictactoe.games",
		metric.WithDescription("Finished games, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}

	return &metrics{commands: commands, moves: moves, games: games}, nil
}

func (m *metrics) recordCommand(ctx context.Context, kind string) {
	m.commands.Add(ctx, 1, metric.WithAttributes(attribute.String("command", kind)))
}

func (m *metrics) recordMove(ctx context.Context, player string) {
	m.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("player", player)))
}

func (m *metrics) recordGame(ctx context.Context, outcome string) {
	m.games.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
