package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
	wire "github.com/beng262/InfiniteTicTacToe/transport/websocket"
)

const writeWait = 5 * time.Second

var ErrConnectionClosed = errors.New("connection to the server is closed")

// RemoteError is a refusal reported by the relay.
type RemoteError struct {
	Code    string
	Message string
}

func (that *RemoteError) Error() string {
	return that.Message
}

func (that *RemoteError) Unwrap() error {
	return apperror.FromCode(that.Code)
}

func remoteError(payload *wire.Payload) error {
	if payload.Code == "" && payload.Error == "" {
		return nil
	}

	return &RemoteError{Code: payload.Code, Message: payload.Error}
}

var _ Session = (*RemoteSession)(nil)

// RemoteSession mirrors the relay's game. The server stays authoritative:
// Play and Reset only send requests, the board changes when a game:state arrives.
type RemoteSession struct {
	logger *slog.Logger
	conn   *websocket.Conn

	writeMu sync.Mutex

	mu             sync.RWMutex
	player         *entity.Player
	state          entity.GameState
	lastErr        error
	winSubscribers []func(winner string)

	connected   chan struct{}
	connectOnce sync.Once
	connectErr  error

	done chan struct{}
}

// DialRemote connects to the relay and waits until a seat is assigned.
func DialRemote(ctx context.Context, logger *slog.Logger, url string) (*RemoteSession, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}

	session := &RemoteSession{
		logger: logger.With("component", "remote_session"),
		conn:   conn,
		state: entity.GameState{
			Turn:   entity.PlayerX,
			Status: entity.StatusOngoing,
		},
		connected: make(chan struct{}),
		done:      make(chan struct{}),
	}

	go session.readLoop()

	select {
	case <-session.connected:
	case <-ctx.Done():
		_ = session.Close()
		return nil, ctx.Err()
	}

	if session.connectErr != nil {
		_ = session.Close()
		return nil, fmt.Errorf("failed to join game: %w", session.connectErr)
	}

	session.logger.Info("joined game", "mark", session.Mark())

	return session, nil
}

func (that *RemoteSession) Board() entity.Board {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Board
}

func (that *RemoteSession) Turn() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Turn
}

func (that *RemoteSession) Winner() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Winner
}

func (that *RemoteSession) Mark() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.player == nil {
		return ""
	}

	return that.player.Mark
}

// LastError is the latest refusal from the server, cleared by the next accepted request.
func (that *RemoteSession) LastError() error {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.lastErr
}

func (that *RemoteSession) Play(row, col int) error {
	return that.send(wire.ActionTurn, wire.Payload{Move: wire.NewMove(row, col)})
}

func (that *RemoteSession) Reset() error {
	return that.send(wire.ActionReset, wire.Payload{})
}

func (that *RemoteSession) OnWin(fn func(winner string)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.winSubscribers = append(that.winSubscribers, fn)
}

// Close - says goodbye to the server and waits for the reader to stop.
func (that *RemoteSession) Close() error {
	that.writeMu.Lock()
	_ = that.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
	that.writeMu.Unlock()

	err := that.conn.Close()
	<-that.done

	if err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}

func (that *RemoteSession) send(action string, payload wire.Payload) error {
	msg, err := wire.EncodeMessage(action, payload)
	if err != nil {
		return err
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err = that.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", action, err)
	}

	return nil
}

// readLoop - applies server messages to the mirrored state until the connection fails.
func (that *RemoteSession) readLoop() {
	log := that.logger.With("method", "readLoop")

	defer close(that.done)
	defer that.markConnected(ErrConnectionClosed)

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Debug("connection closed", "error", err)
			}

			that.mu.Lock()
			if that.player != nil {
				that.lastErr = ErrConnectionClosed
			}
			that.mu.Unlock()

			return
		}

		var message wire.Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		var payload wire.Payload
		if len(message.Payload) > 0 {
			if err = json.Unmarshal(message.Payload, &payload); err != nil {
				log.Warn("failed to unmarshal payload", "action", message.Action, "error", err)
				continue
			}
		}

		that.handleMessage(message.Action, &payload)
	}
}

func (that *RemoteSession) handleMessage(action string, payload *wire.Payload) {
	switch action {
	case wire.ActionConnect:
		if payload.Player == nil {
			that.markConnected(remoteError(payload))
			return
		}

		that.mu.Lock()
		that.player = payload.Player
		that.mu.Unlock()

		that.markConnected(nil)
	case wire.ActionState:
		if payload.Game != nil {
			that.applyState(*payload.Game)
		}
	case wire.ActionTurn, wire.ActionReset, wire.ActionError:
		that.mu.Lock()
		that.lastErr = remoteError(payload)
		that.mu.Unlock()
	default:
		that.logger.Debug("ignoring message", "action", action)
	}
}

// applyState replaces the mirror and fires win subscribers when a winner appears.
func (that *RemoteSession) applyState(state entity.GameState) {
	that.mu.Lock()
	previousWinner := that.state.Winner
	that.state = state
	subscribers := append([]func(string){}, that.winSubscribers...)
	that.mu.Unlock()

	if previousWinner != "" || state.Winner == "" {
		return
	}

	for _, fn := range subscribers {
		fn(state.Winner)
	}
}

func (that *RemoteSession) markConnected(err error) {
	that.connectOnce.Do(func() {
		that.connectErr = err
		close(that.connected)
	})
}
