package client

import (
	"log/slog"

	"github.com/beng262/InfiniteTicTacToe/internal/entity"
	"github.com/beng262/InfiniteTicTacToe/internal/tictactoe"
)

// Session is the game as the renderer sees it, local or mirrored from a relay.
type Session interface {
	Board() entity.Board
	Turn() string
	Winner() string

	// Mark is the seat this client plays, or "" when both players share the screen.
	Mark() string
	LastError() error

	Play(row, col int) error
	Reset() error
	OnWin(fn func(winner string))

	Close() error
}

var _ Session = (*LocalSession)(nil)

// LocalSession is a hot-seat game on an in-process engine.
// Like the engine it must be driven from a single goroutine.
type LocalSession struct {
	logger  *slog.Logger
	engine  *tictactoe.Engine
	lastErr error
}

func NewLocalSession(logger *slog.Logger) *LocalSession {
	return &LocalSession{
		logger: logger.With("component", "local_session"),
		engine: tictactoe.NewEngine(),
	}
}

func (that *LocalSession) Board() entity.Board {
	return that.engine.Board()
}

func (that *LocalSession) Turn() string {
	return that.engine.Turn()
}

func (that *LocalSession) Winner() string {
	return that.engine.Winner()
}

func (that *LocalSession) Mark() string {
	return ""
}

func (that *LocalSession) LastError() error {
	return that.lastErr
}

// Play - places a mark for whoever's turn it is.
func (that *LocalSession) Play(row, col int) error {
	outcome, err := that.engine.ApplyMove(row, col, that.engine.Turn())
	that.lastErr = err
	if err != nil {
		that.logger.Debug("move rejected", "row", row, "col", col, "error", err)
		return err
	}

	if outcome.Evicted != nil {
		that.logger.Debug("mark evicted", "player", outcome.Player, "cell", outcome.Evicted.String())
	}

	return nil
}

func (that *LocalSession) Reset() error {
	that.engine.Reset()
	that.lastErr = nil

	return nil
}

func (that *LocalSession) OnWin(fn func(winner string)) {
	that.engine.OnWin(fn)
}

func (that *LocalSession) Close() error {
	return nil
}
