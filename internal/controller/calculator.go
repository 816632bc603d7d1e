package controller

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
)

//go:generate mockgen -source=calculator.go -destination=mocks/mock_move_calculator.go -package=mocks

// MoveCalculator picks the tile the automated opponent plays.
type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board, mark game.PlayerMark, difficulty int) (int, error)
}
