package console

import (
	"bufio"
	"context"
	"ctchen222/tictactoe-cli/internal/controller"
	"ctchen222/tictactoe-cli/internal/session"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Game is the part of the controller the console drives.
type Game interface {
	Start(ctx context.Context) bool
	Session() session.Session
	Handle(ctx context.Context, line string) controller.Result
}

// Run prints the help text and then reads one command per line until ctx is
// cancelled or the input ends, rendering after every command.
func Run(ctx context.Context, in io.Reader, r *Renderer, g Game) error {
	if err := r.Help(); err != nil {
		return fmt.Errorf("failed to print help: %w", err)
	}
	g.Start(ctx)

	lines := readLines(ctx, in)
	for {
		if err := r.Prompt(g.Session().HumanMark); err != nil {
			return fmt.Errorf("failed to print prompt: %w", err)
		}

		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "console interrupted")
			return r.Farewell()

		case line, ok := <-lines:
			if !ok {
				slog.InfoContext(ctx, "console input closed")
				return r.Farewell()
			}
			if err := r.Render(g.Handle(ctx, line)); err != nil {
				return fmt.Errorf("failed to render board: %w", err)
			}
		}
	}
}

// readLines reads in on its own goroutine so the loop can also watch ctx.
// Lines of any length are delivered whole. The channel is closed when the
// input ends.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					slog.WarnContext(ctx, "reading console input failed", "error", err)
				}
				return
			}
		}
	}()
	return lines
}
