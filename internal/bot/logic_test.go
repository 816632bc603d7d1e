package bot

import (
	"ctchen222/tictactoe-cli/internal/game"
	"errors"
	"reflect"
	"testing"
)

// boardOf builds a board from three rows; characters other than X and O stay empty.
func boardOf(rows ...string) game.Board {
	b := game.NewBoard()
	for r, row := range rows {
		for c, ch := range row {
			if m := game.PlayerMark(ch); m.IsMark() {
				b[r][c] = m
			}
		}
	}
	return b
}

// rolls replays vals in order and counts how many were drawn.
func rolls(calls *int, vals ...int) func() int {
	return func() int {
		v := vals[*calls]
		*calls++
		return v
	}
}

func firstIndex(int) int { return 0 }

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		board game.Board
		want  Classification
	}{
		{
			name:  "Empty board - everything possible",
			board: game.NewBoard(),
			want:  Classification{Possible: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		},
		{
			name:  "Bot can win - first row",
			board: boardOf("OO.", "X..", "..X"),
			want:  Classification{Possible: []int{3, 5, 6, 7, 8}, Winning: []int{3}},
		},
		{
			name:  "Bot must block - first row",
			board: boardOf("XX.", ".O.", "..."),
			want:  Classification{Possible: []int{3, 4, 6, 7, 8, 9}, Blocking: []int{3}},
		},
		{
			name:  "Win and block on different tiles",
			board: boardOf("OO.", "...", "XX."),
			want:  Classification{Possible: []int{3, 4, 5, 6, 9}, Winning: []int{3}, Blocking: []int{9}},
		},
		{
			name:  "Same tile wins and blocks",
			board: boardOf("O.X", ".OX", "..."),
			want:  Classification{Possible: []int{2, 4, 7, 8, 9}, Winning: []int{9}, Blocking: []int{9}},
		},
		{
			name:  "Full board",
			board: boardOf("XOX", "XOO", "OXX"),
			want:  Classification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.board, game.PlayerO)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelectTile(t *testing.T) {
	both := Classification{Possible: []int{3, 4, 9}, Winning: []int{3}, Blocking: []int{9}}

	t.Run("Roll within difficulty takes the win", func(t *testing.T) {
		calls := 0
		tile, err := selectTile(both, 2, rolls(&calls, 2), firstIndex)
		if err != nil || tile != 3 {
			t.Errorf("selectTile() got (%d, %v), want (3, nil)", tile, err)
		}
		if calls != 1 {
			t.Errorf("expected 1 roll, got %d", calls)
		}
	})

	t.Run("Failed win roll falls through to block", func(t *testing.T) {
		calls := 0
		tile, err := selectTile(both, 2, rolls(&calls, 3, 1), firstIndex)
		if err != nil || tile != 9 {
			t.Errorf("selectTile() got (%d, %v), want (9, nil)", tile, err)
		}
		if calls != 2 {
			t.Errorf("expected 2 rolls, got %d", calls)
		}
	})

	t.Run("Both rolls fail - random tile", func(t *testing.T) {
		calls := 0
		pick := func(n int) int { return n - 1 }
		tile, err := selectTile(both, 1, rolls(&calls, 4, 2), pick)
		if err != nil || tile != 9 {
			t.Errorf("selectTile() got (%d, %v), want (9, nil)", tile, err)
		}
	})

	t.Run("No win available - no roll spent on it", func(t *testing.T) {
		calls := 0
		c := Classification{Possible: []int{3, 4}, Blocking: []int{4}}
		tile, err := selectTile(c, 4, rolls(&calls, 4), firstIndex)
		if err != nil || tile != 4 {
			t.Errorf("selectTile() got (%d, %v), want (4, nil)", tile, err)
		}
		if calls != 1 {
			t.Errorf("expected 1 roll, got %d", calls)
		}
	})

	t.Run("Neutral board never rolls", func(t *testing.T) {
		calls := 0
		c := Classification{Possible: []int{1, 2}}
		tile, err := selectTile(c, 4, rolls(&calls), firstIndex)
		if err != nil || tile != 1 {
			t.Errorf("selectTile() got (%d, %v), want (1, nil)", tile, err)
		}
	})

	t.Run("No empty tile", func(t *testing.T) {
		calls := 0
		_, err := selectTile(Classification{}, 4, rolls(&calls), firstIndex)
		if !errors.Is(err, ErrNoAvailableMoves) {
			t.Errorf("expected ErrNoAvailableMoves, got %v", err)
		}
	})
}
