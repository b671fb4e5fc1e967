package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
	"github.com/beng262/InfiniteTicTacToe/internal/tictactoe"
)

var seatOrder = []string{entity.PlayerX, entity.PlayerO}

type broadcasterDep interface {
	Broadcast(state *entity.GameState)
}

type eventPublisherDep interface {
	Publish(ctx context.Context, event *entity.GameEvent) error
}

// GameRelay owns the single authoritative engine shared by every connection.
// All engine access and the broadcasts that follow it happen under one lock,
// so clients observe updates in the order they were applied.
type GameRelay struct {
	logger *slog.Logger

	mu     sync.Mutex
	engine *tictactoe.Engine
	seats  map[string]string // mark -> player id

	broadcaster broadcasterDep
	publisher   eventPublisherDep

	now func() time.Time
}

func NewGameRelay(logger *slog.Logger, engine *tictactoe.Engine, broadcaster broadcasterDep, publisher eventPublisherDep) *GameRelay {
	return &GameRelay{
		logger: logger.With("component", "relay"),
		engine: engine,
		seats:  make(map[string]string, len(seatOrder)),

		broadcaster: broadcaster,
		publisher:   publisher,

		now: time.Now,
	}
}

// Join seats the player at the first free mark, X before O.
func (that *GameRelay) Join(_ context.Context, playerID string) (*entity.Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if mark := that.markOf(playerID); mark != "" {
		return &entity.Player{ID: playerID, Mark: mark}, nil
	}

	for _, mark := range seatOrder {
		if _, taken := that.seats[mark]; taken {
			continue
		}

		that.seats[mark] = playerID
		that.logger.Info("player seated", "playerID", playerID, "mark", mark)
		that.broadcaster.Broadcast(that.engine.State())

		return &entity.Player{ID: playerID, Mark: mark}, nil
	}

	return nil, apperror.ErrGameFull
}

// Leave frees the player's seat. The game itself is kept as is.
func (that *GameRelay) Leave(_ context.Context, playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	mark := that.markOf(playerID)
	if mark == "" {
		return
	}

	delete(that.seats, mark)
	that.logger.Info("player left", "playerID", playerID, "mark", mark)
}

// MakeTurn applies a move for the player's seat and broadcasts the resulting state.
func (that *GameRelay) MakeTurn(ctx context.Context, playerID string, row, col int) (*tictactoe.MoveOutcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	mark := that.markOf(playerID)
	if mark == "" {
		return nil, apperror.ErrNotSeated
	}

	outcome, err := that.engine.ApplyMove(row, col, mark)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	state := that.engine.State()
	that.broadcaster.Broadcast(state)

	event := &entity.GameEvent{
		Type:    entity.EventMove,
		Player:  mark,
		Cell:    &outcome.Cell,
		Evicted: outcome.Evicted,
		Board:   state.Board,
		At:      that.now(),
	}

	if outcome.Winner != "" {
		event.Type = entity.EventWin
		event.Winner = outcome.Winner
	}

	that.publish(ctx, event)

	return outcome, nil
}

// Reset starts a new game. Only seated players may reset.
func (that *GameRelay) Reset(ctx context.Context, playerID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	mark := that.markOf(playerID)
	if mark == "" {
		return apperror.ErrNotSeated
	}

	that.engine.Reset()

	state := that.engine.State()
	that.broadcaster.Broadcast(state)

	that.publish(ctx, &entity.GameEvent{
		Type:   entity.EventReset,
		Player: mark,
		Board:  state.Board,
		At:     that.now(),
	})

	that.logger.Info("game reset", "playerID", playerID)

	return nil
}

func (that *GameRelay) State() *entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.State()
}

func (that *GameRelay) markOf(playerID string) string {
	for mark, id := range that.seats {
		if id == playerID {
			return mark
		}
	}

	return ""
}

func (that *GameRelay) publish(ctx context.Context, event *entity.GameEvent) {
	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish game event", "type", event.Type, "error", err)
	}
}
