package game

import (
	"errors"
	"strconv"
)

// PlayerMark is the content of a board cell: a player's mark (X, O) or,
// while the cell is empty, its positional label ("1".."9").
type PlayerMark string

const (
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Tile numbers as typed by the human.
	TileMin = 1
	TileMax = 9
)

var (
	ErrAlreadyMarked = errors.New("tile already marked")
	ErrInvalidTile   = errors.New("invalid tile")
)

// Board is a 3x3 grid stored row-major.
type Board [3][3]PlayerMark

// NewBoard returns a board where every cell carries its tile label.
func NewBoard() Board {
	var b Board
	for tile := TileMin; tile <= TileMax; tile++ {
		row, col := TileToPosition(tile)
		b[row][col] = Label(tile)
	}
	return b
}

// MarkTile places mark on the numbered tile and returns the updated board.
// The input board is never modified; on error it is returned as is.
func MarkTile(b Board, tile int, mark PlayerMark) (Board, error) {
	if tile < TileMin || tile > TileMax {
		return b, ErrInvalidTile
	}
	row, col := TileToPosition(tile)
	if b[row][col].IsMark() {
		return b, ErrAlreadyMarked
	}
	b[row][col] = mark
	return b, nil
}

// CheckWin reports whether mark fills a row, a column or a diagonal.
func CheckWin(b Board, mark PlayerMark) bool {
	if !mark.IsMark() {
		return false
	}

	// Check rows
	for i := range [3]int{} {
		if b[i][0] == mark && b[i][1] == mark && b[i][2] == mark {
			return true
		}
	}

	// Check columns
	for i := range [3]int{} {
		if b[0][i] == mark && b[1][i] == mark && b[2][i] == mark {
			return true
		}
	}

	// Check diagonals
	if b[0][0] == mark && b[1][1] == mark && b[2][2] == mark {
		return true
	}
	return b[0][2] == mark && b[1][1] == mark && b[2][0] == mark
}

// EmptyTiles lists the unmarked tile numbers in ascending order.
func EmptyTiles(b Board) []int {
	tiles := make([]int, 0, TileMax)
	for tile := TileMin; tile <= TileMax; tile++ {
		row, col := TileToPosition(tile)
		if !b[row][col].IsMark() {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// CountMarks returns how many cells hold a player's mark.
func CountMarks(b Board) int {
	return TileMax - len(EmptyTiles(b))
}

// TileToPosition converts a tile number into zero-based row and column.
func TileToPosition(tile int) (row, col int) {
	return (tile - 1) / 3, (tile - 1) % 3
}

// Label is the placeholder an empty cell shows for tile.
func Label(tile int) PlayerMark {
	return PlayerMark(strconv.Itoa(tile))
}
