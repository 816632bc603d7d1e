package session

import (
	"ctchen222/tictactoe-cli/internal/game"

	"github.com/google/uuid"
)

// Phase is the controller's position in the turn cycle.
type Phase int

const (
	NotStarted Phase = iota
	AwaitingHuman
	AwaitingOpponent
	Finished
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case AwaitingHuman:
		return "awaiting_human"
	case AwaitingOpponent:
		return "awaiting_opponent"
	case Finished:
		return "finished"
	}
	return "unknown"
}

const (
	DefaultMark       = game.PlayerX
	DefaultDifficulty = 1
	MaxTurns          = 9
)

// Session is the whole state of one console run. It lives in memory only.
type Session struct {
	ID         string
	Board      game.Board
	HumanScore int
	AIScore    int
	HumanMark  game.PlayerMark
	Turn       int
	Difficulty int
	Phase      Phase
}

// New creates a session with an empty board, waiting to be started.
func New(mark game.PlayerMark, difficulty int) *Session {
	return &Session{
		ID:         uuid.New().String(),
		Board:      game.NewBoard(),
		HumanMark:  mark,
		Difficulty: difficulty,
		Phase:      NotStarted,
	}
}

// AIMark is the mark the human is not using.
func (s *Session) AIMark() game.PlayerMark {
	return s.HumanMark.Opponent()
}

// NewGame clears the board and hands the first move to the human.
func (s *Session) NewGame() {
	s.Board = game.NewBoard()
	s.Turn = 0
	s.Phase = AwaitingHuman
}

// ResetScores zeroes both scores and leaves the game in progress alone.
func (s *Session) ResetScores() {
	s.HumanScore = 0
	s.AIScore = 0
}
