package console

import (
	"ctchen222/tictactoe-cli/internal/controller"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/session"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// HelpText is printed once when the console starts.
const HelpText = `Tic Tac Toe (SF)

Available commands:
  [n]ew (X|O) - start new game
  [r]eset - reset scores
  [m]ove N - place mark at N tile
  [d]ifficulty [1...4] - set difficulty (default 1)

  Ctrl+C to exit.
`

const (
	Farewell = "Ok Bye!"

	// clearLines newlines push the previous screen out of view.
	clearLines = 100
)

// Renderer writes everything the human sees.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

// NewRenderer creates a renderer on w. Marks are coloured when the output
// profile supports it; pass termenv.WithProfile(termenv.Ascii) for plain text.
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{w: w, out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) Help() error {
	_, err := io.WriteString(r.w, HelpText)
	return err
}

// Prompt shows the human's mark and waits for a command, e.g. "?X>".
func (r *Renderer) Prompt(mark game.PlayerMark) error {
	_, err := fmt.Fprintf(r.w, "?%s>", mark)
	return err
}

func (r *Renderer) Farewell() error {
	_, err := fmt.Fprintf(r.w, "\n%s\n", Farewell)
	return err
}

// Render clears the screen, then prints the command's messages, the scores,
// the difficulty and the board.
func (r *Renderer) Render(res controller.Result) error {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", clearLines))
	for _, msg := range res.Messages {
		sb.WriteString(msg)
		sb.WriteByte('\n')
	}
	r.writeBoard(&sb, res.Session)

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *Renderer) writeBoard(sb *strings.Builder, s session.Session) {
	fmt.Fprintf(sb, "Human: %d | AI: %d\nDifficulty: %d\n", s.HumanScore, s.AIScore, s.Difficulty)
	for _, row := range s.Board {
		sb.WriteByte('|')
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(r.cell(cell))
		}
		sb.WriteString("|\n")
	}
}

func (r *Renderer) cell(m game.PlayerMark) string {
	style := r.out.String(string(m))
	switch m {
	case game.PlayerX:
		style = style.Foreground(termenv.ANSIBrightRed).Bold()
	case game.PlayerO:
		style = style.Foreground(termenv.ANSIBrightBlue).Bold()
	default:
		style = style.Faint()
	}
	return style.String()
}
