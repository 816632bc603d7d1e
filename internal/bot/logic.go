package bot

import (
	"ctchen222/tictactoe-cli/internal/game"
	"errors"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Classification groups the empty tiles of a board from the bot's point of view.
// Tiles appear in ascending order; a tile may be both winning and blocking.
type Classification struct {
	Possible []int // every empty tile
	Winning  []int // tiles that win immediately for the bot
	Blocking []int // tiles where the opponent would win immediately
}

// Classify tries the bot's mark and the opponent's mark on every empty tile.
func Classify(board game.Board, botMark game.PlayerMark) Classification {
	opponentMark := botMark.Opponent()

	var c Classification
	for tile := game.TileMin; tile <= game.TileMax; tile++ {
		winBoard, err := game.MarkTile(board, tile, botMark)
		if err != nil {
			continue
		}
		counterBoard, _ := game.MarkTile(board, tile, opponentMark)

		c.Possible = append(c.Possible, tile)
		if game.CheckWin(counterBoard, opponentMark) {
			c.Blocking = append(c.Blocking, tile)
		}
		if game.CheckWin(winBoard, botMark) {
			c.Winning = append(c.Winning, tile)
		}
	}
	return c
}

// selectTile applies the difficulty policy to a classification.
// roll returns a uniform integer in [1, 4]; it is drawn once for the winning
// check and, if that one does not fire, once more for the blocking check.
func selectTile(c Classification, difficulty int, roll func() int, pick func(n int) int) (int, error) {
	if len(c.Possible) == 0 {
		return 0, ErrNoAvailableMoves
	}

	// 1. Win: prefer the first winning tile
	if len(c.Winning) > 0 && roll() <= difficulty {
		return c.Winning[0], nil
	}

	// 2. Block: deny the opponent's first winning tile
	if len(c.Blocking) > 0 && roll() <= difficulty {
		return c.Blocking[0], nil
	}

	// 3. Random: any empty tile
	return c.Possible[pick(len(c.Possible))], nil
}
