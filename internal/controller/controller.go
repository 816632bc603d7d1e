package controller

import (
	"context"
	"ctchen222/tictactoe-cli/internal/command"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/session"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/tictactoe-cli/internal/controller"

// Messages shown to the human after a command.
const (
	MsgHumanWin          = "Human win"
	MsgAIWin             = "AI win"
	MsgDraw              = "Draw"
	MsgGameFinished      = "This game is finished."
	MsgStartNewGame      = "Please start new game."
	MsgInvalidTile       = "Invalid tile!"
	MsgAlreadyMarked     = "Tile already marked"
	MsgInvalidDifficulty = "Invalid difficulty!"
	MsgInvalidMark       = "Invalid mark!"
	MsgUnknownCommand    = "Unknown command!"
)

// Result is what one handled command produced: the messages to show and a
// snapshot of the session to render.
type Result struct {
	Messages []string
	Session  session.Session
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// Controller owns the session and runs one turn cycle per command.
type Controller struct {
	session    *session.Session
	calculator MoveCalculator
	tracer     trace.Tracer
	metrics    *metrics
}

// NewController creates a controller driving s, with calculator playing the opponent.
func NewController(s *session.Session, calculator MoveCalculator, opts ...Option) (*Controller, error) {
	o := options{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := newMetrics(o.meterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return &Controller{
		session:    s,
		calculator: calculator,
		tracer:     o.tracerProvider.Tracer(instrumentationName),
		metrics:    m,
	}, nil
}

// Start leaves the NotStarted phase. It reports false if the session was already started.
func (c *Controller) Start(ctx context.Context) bool {
	if c.session.Phase != session.NotStarted {
		return false
	}
	c.session.Phase = session.AwaitingHuman
	slog.InfoContext(ctx, "session started", "session.id", c.session.ID)
	return true
}

// Session returns a snapshot of the current session.
func (c *Controller) Session() session.Session {
	return *c.session
}

// Handle dispatches one console line, then ends the game on the ninth mark or
// lets the opponent move.
func (c *Controller) Handle(ctx context.Context, line string) Result {
	cmd := command.Parse(line)

	ctx, span := c.tracer.Start(ctx, "controller.Handle", trace.WithAttributes(
		attribute.String("session.id", c.session.ID),
		attribute.String("command.kind", string(cmd.Kind)),
	))
	defer span.End()

	c.metrics.recordCommand(ctx, string(cmd.Kind))

	var messages []string
	switch cmd.Kind {
	case command.KindNewGame:
		messages = c.handleNewGame(ctx, cmd)
	case command.KindDifficulty:
		messages = c.handleDifficulty(ctx, cmd)
	case command.KindMove:
		messages = c.handleMove(ctx, cmd)
	case command.KindResetScores:
		c.session.ResetScores()
		slog.InfoContext(ctx, "scores reset", "session.id", c.session.ID)
	default:
		slog.DebugContext(ctx, "unknown command", "session.id", c.session.ID, "command", cmd.Word)
		messages = []string{MsgUnknownCommand}
	}

	// The human's ninth mark ends the game before the opponent gets a turn.
	// A winning ninth mark has already set Finished and keeps its win.
	if c.session.Turn >= session.MaxTurns && c.session.Phase != session.Finished {
		c.session.Phase = session.Finished
		c.metrics.recordGame(ctx, outcomeDraw)
		slog.InfoContext(ctx, "game ended in a draw", "session.id", c.session.ID)
		messages = append(messages, MsgDraw)
	}

	if c.session.Phase == session.AwaitingOpponent {
		msg, err := c.opponentTurn(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "opponent could not move", "session.id", c.session.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Opponent could not move")
			c.session.Phase = session.Finished
			msg = MsgDraw
		}
		if msg != "" {
			messages = append(messages, msg)
		}
	}

	span.SetAttributes(
		attribute.String("session.phase", c.session.Phase.String()),
		attribute.Int("session.turn", c.session.Turn),
	)

	return Result{Messages: messages, Session: *c.session}
}

// handleNewGame resets the board and optionally switches the human's mark.
func (c *Controller) handleNewGame(ctx context.Context, cmd command.Command) []string {
	var messages []string

	mark, present, err := cmd.Mark()
	switch {
	case err != nil:
		slog.DebugContext(ctx, "invalid mark", "session.id", c.session.ID, "mark", cmd.Arg(0), "error", err)
		messages = append(messages, MsgInvalidMark)
	case present:
		c.session.HumanMark = mark
	}

	c.session.NewGame()
	slog.InfoContext(ctx, "new game", "session.id", c.session.ID, "human.mark", c.session.HumanMark)
	return messages
}

func (c *Controller) handleDifficulty(ctx context.Context, cmd command.Command) []string {
	difficulty, err := cmd.Difficulty()
	if err != nil {
		slog.DebugContext(ctx, "invalid difficulty", "session.id", c.session.ID, "difficulty", cmd.Arg(0), "error", err)
		return []string{MsgInvalidDifficulty}
	}
	c.session.Difficulty = difficulty
	slog.InfoContext(ctx, "difficulty set", "session.id", c.session.ID, "difficulty", difficulty)
	return nil
}

// handleMove places the human's mark and hands the turn to the opponent.
func (c *Controller) handleMove(ctx context.Context, cmd command.Command) []string {
	ctx, span := c.tracer.Start(ctx, "controller.handleMove", trace.WithAttributes(
		attribute.String("session.id", c.session.ID),
		attribute.String("move.tile", cmd.Arg(0)),
	))
	defer span.End()

	if c.session.Phase == session.Finished {
		span.SetStatus(codes.Error, "Game already finished")
		return []string{MsgGameFinished, MsgStartNewGame}
	}

	tile, err := cmd.Tile()
	if err != nil {
		span.SetAttributes(attribute.Bool("move.valid", false))
		return []string{MsgInvalidTile}
	}

	board, err := game.MarkTile(c.session.Board, tile, c.session.HumanMark)
	if err != nil {
		slog.DebugContext(ctx, "move rejected", "session.id", c.session.ID, "tile", tile, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		if errors.Is(err, game.ErrAlreadyMarked) {
			return []string{MsgAlreadyMarked}
		}
		return []string{MsgInvalidTile}
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	c.session.Board = board
	c.session.Turn++
	c.session.Phase = session.AwaitingOpponent
	c.metrics.recordMove(ctx, playerHuman)

	if game.CheckWin(board, c.session.HumanMark) {
		c.session.Phase = session.Finished
		c.session.HumanScore++
		c.metrics.recordGame(ctx, outcomeHuman)
		slog.InfoContext(ctx, "human won", "session.id", c.session.ID, "turn", c.session.Turn)
		return []string{MsgHumanWin}
	}
	return nil
}

// opponentTurn lets the calculator play the mark the human is not using.
func (c *Controller) opponentTurn(ctx context.Context) (string, error) {
	ctx, span := c.tracer.Start(ctx, "controller.opponentTurn", trace.WithAttributes(
		attribute.String("session.id", c.session.ID),
		attribute.Int("difficulty", c.session.Difficulty),
	))
	defer span.End()

	mark := c.session.AIMark()
	tile, err := c.calculator.CalculateNextMove(ctx, c.session.Board, mark, c.session.Difficulty)
	if err != nil {
		return "", fmt.Errorf("failed to calculate opponent move: %w", err)
	}

	board, err := game.MarkTile(c.session.Board, tile, mark)
	if err != nil {
		return "", fmt.Errorf("failed to apply opponent move on tile %d: %w", tile, err)
	}
	span.SetAttributes(attribute.Int("move.tile", tile))

	c.session.Board = board
	c.session.Phase = session.AwaitingHuman
	c.session.Turn++
	c.metrics.recordMove(ctx, playerAI)

	if game.CheckWin(board, mark) {
		c.session.Phase = session.Finished
		c.session.AIScore++
		c.metrics.recordGame(ctx, outcomeAI)
		slog.InfoContext(ctx, "opponent won", "session.id", c.session.ID, "turn", c.session.Turn)
		return MsgAIWin, nil
	}
	return "", nil
}
