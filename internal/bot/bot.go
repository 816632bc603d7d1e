package bot

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
	"log/slog"
	"math/rand/v2"
)

const (
	DifficultyMin = 1
	DifficultyMax = 4
)

// Bot is the automated opponent. Its difficulty is the chance, in quarters,
// that it takes a winning or blocking tile when one exists.
type Bot struct {
	rng *rand.Rand
}

// NewBot creates a bot drawing from rng. A nil rng gets a randomly seeded source.
func NewBot(rng *rand.Rand) *Bot {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bot{rng: rng}
}

// CalculateNextMove picks the tile the bot plays with mark on board.
// Difficulty outside 1..4 is clamped.
func (b *Bot) CalculateNextMove(ctx context.Context, board game.Board, mark game.PlayerMark, difficulty int) (int, error) {
	difficulty = min(max(difficulty, DifficultyMin), DifficultyMax)

	c := Classify(board, mark)
	tile, err := selectTile(c, difficulty, b.roll, b.rng.IntN)
	if err != nil {
		return 0, err
	}

	slog.DebugContext(ctx, "bot picked tile",
		"mark", mark,
		"difficulty", difficulty,
		"tile", tile,
		"winning", c.Winning,
		"blocking", c.Blocking,
	)
	return tile, nil
}

func (b *Bot) roll() int {
	return b.rng.IntN(DifficultyMax) + 1
}
