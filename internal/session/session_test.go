package session

import (
	"ctchen222/tictactoe-cli/internal/game"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(DefaultMark, DefaultDifficulty)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, game.NewBoard(), s.Board)
	assert.Equal(t, game.PlayerX, s.HumanMark)
	assert.Equal(t, game.PlayerO, s.AIMark())
	assert.Equal(t, 1, s.Difficulty)
	assert.Equal(t, NotStarted, s.Phase)
	assert.Zero(t, s.Turn)
	assert.Zero(t, s.HumanScore)
	assert.Zero(t, s.AIScore)
}

func TestSession_NewGame(t *testing.T) {
	s := New(game.PlayerO, 3)
	s.Board, _ = game.MarkTile(s.Board, 5, game.PlayerO)
	s.Turn = 4
	s.Phase = Finished
	s.HumanScore = 2

	s.NewGame()

	assert.Equal(t, game.NewBoard(), s.Board)
	assert.Zero(t, s.Turn)
	assert.Equal(t, AwaitingHuman, s.Phase)
	assert.Equal(t, 2, s.HumanScore)
	assert.Equal(t, game.PlayerO, s.HumanMark)
}

func TestSession_ResetScores(t *testing.T) {
	s := New(DefaultMark, DefaultDifficulty)
	s.NewGame()
	s.Board, _ = game.MarkTile(s.Board, 1, game.PlayerX)
	s.Turn = 1
	s.HumanScore, s.AIScore = 3, 5
	board, phase := s.Board, s.Phase

	s.ResetScores()

	assert.Zero(t, s.HumanScore)
	assert.Zero(t, s.AIScore)
	assert.Equal(t, board, s.Board)
	assert.Equal(t, phase, s.Phase)
	assert.Equal(t, 1, s.Turn)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "awaiting_human", AwaitingHuman.String())
	assert.Equal(t, "finished", Finished.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
