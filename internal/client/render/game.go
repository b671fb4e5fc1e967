package render

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
	"github.com/beng262/InfiniteTicTacToe/internal/client"
)

const WindowTitle = "Infinite Tic Tac Toe"

// Game draws a session and feeds clicks back into it.
type Game struct {
	logger  *slog.Logger
	session client.Session
	layout  client.Layout

	// autoReset starts a new game once the celebration ends.
	autoReset bool

	wins        chan string
	celebration *client.Celebration
	particles   []client.Particle
	seed        uint64
}

func New(logger *slog.Logger, session client.Session, layout client.Layout, autoReset bool) *Game {
	game := &Game{
		logger:    logger.With("component", "render"),
		session:   session,
		layout:    layout,
		autoReset: autoReset,
		wins:      make(chan string, 1),
	}

	// Remote sessions call this from their reader goroutine.
	session.OnWin(func(winner string) {
		select {
		case game.wins <- winner:
		default:
		}
	})

	return game
}

// Run opens the window and blocks until it is closed.
func Run(game *Game) error {
	width, height := game.layout.WindowSize()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(WindowTitle)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}

	return nil
}

func (that *Game) Update() error {
	select {
	case winner := <-that.wins:
		that.logger.Info("game won", "winner", winner)
		that.seed++
		that.celebration = client.NewCelebration(that.layout, winner, that.seed)
	default:
	}

	if that.celebration != nil {
		that.stepCelebration()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		that.handleClick(ebiten.CursorPosition())
	}

	return nil
}

func (that *Game) stepCelebration() {
	that.particles = that.celebration.Step()
	if !that.celebration.Done() {
		return
	}

	that.celebration = nil
	that.particles = nil

	if that.autoReset {
		if err := that.session.Reset(); err != nil {
			that.logger.Error("failed to reset game", "error", err)
		}
	}
}

func (that *Game) handleClick(x, y int) {
	log := that.logger.With("method", "handleClick")

	target := that.layout.Hit(x, y)

	switch target.Kind {
	case client.TargetReset:
		if err := that.session.Reset(); err != nil {
			log.Error("failed to reset game", "error", err)
		}
	case client.TargetCell:
		if err := that.session.Play(target.Cell.Row, target.Cell.Col); err != nil {
			log.Debug("move refused", "cell", target.Cell.String(), "code", apperror.Code(err))
		}
	case client.TargetNone:
	}
}

func (that *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	that.drawGrid(screen)

	if that.particles != nil {
		that.drawParticles(screen)
	} else {
		that.drawBoard(screen)
	}

	that.drawButton(screen)
}

func (that *Game) Layout(_, _ int) (int, int) {
	return that.layout.WindowSize()
}
