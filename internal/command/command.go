package command

import (
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/validator"
	"strconv"
	"strings"
)

// Kind identifies what a console line asks for.
type Kind string

const (
	KindNewGame     Kind = "new"
	KindDifficulty  Kind = "difficulty"
	KindMove        Kind = "move"
	KindResetScores Kind = "reset"
	KindUnknown     Kind = "unknown"
)

// emptyToken stands in for a blank line so every command has a first token.
const emptyToken = "x"

// Command is one parsed console line.
type Command struct {
	Kind Kind
	Word string
	Args []string
}

// Parse splits line into whitespace-separated tokens and dispatches on the
// first letter of the first token.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		fields = []string{emptyToken}
	}

	cmd := Command{Kind: KindUnknown, Word: fields[0], Args: fields[1:]}
	switch {
	case strings.HasPrefix(cmd.Word, "n"):
		cmd.Kind = KindNewGame
	case strings.HasPrefix(cmd.Word, "d"):
		cmd.Kind = KindDifficulty
	case strings.HasPrefix(cmd.Word, "m"):
		cmd.Kind = KindMove
	case strings.HasPrefix(cmd.Word, "r"):
		cmd.Kind = KindResetScores
	}
	return cmd
}

// Arg returns the i-th argument, or "" when it is missing.
func (c Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

type markRequest struct {
	Mark string `validate:"mark"`
}

type difficultyRequest struct {
	Level string `validate:"required,oneof=1 2 3 4"`
}

type tileRequest struct {
	Tile string `validate:"required,oneof=1 2 3 4 5 6 7 8 9"`
}

// Mark returns the mark argument of a new-game command.
// present is false when no argument was given; err is set when one was
// given but is not X or O.
func (c Command) Mark() (mark game.PlayerMark, present bool, err error) {
	arg := c.Arg(0)
	if arg == "" {
		return "", false, nil
	}
	req := markRequest{Mark: arg}
	if err := validator.GetValidator().Struct(req); err != nil {
		return "", true, err
	}
	return game.PlayerMark(req.Mark), true, nil
}

// Difficulty returns the level argument of a set-difficulty command.
func (c Command) Difficulty() (int, error) {
	req := difficultyRequest{Level: c.Arg(0)}
	if err := validator.GetValidator().Struct(req); err != nil {
		return 0, err
	}
	return strconv.Atoi(req.Level)
}

// Tile returns the tile argument of a place-mark command.
func (c Command) Tile() (int, error) {
	req := tileRequest{Tile: c.Arg(0)}
	if err := validator.GetValidator().Struct(req); err != nil {
		return 0, err
	}
	return strconv.Atoi(req.Tile)
}
