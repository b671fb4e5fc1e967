package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
	"github.com/beng262/InfiniteTicTacToe/internal/pkg"
	"github.com/beng262/InfiniteTicTacToe/internal/tictactoe"
)

const (
	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type gameRelay interface {
	Join(ctx context.Context, playerID string) (*entity.Player, error)
	Leave(ctx context.Context, playerID string)

	MakeTurn(ctx context.Context, playerID string, row, col int) (*tictactoe.MoveOutcome, error)
	Reset(ctx context.Context, playerID string) error
}

type Server struct {
	logger *slog.Logger
	relay  gameRelay
	hub    *Hub

	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, c *client, message *Message) error
}

func New(logger *slog.Logger, relay gameRelay, hub *Hub) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		relay:  relay,
		hub:    hub,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *client, *Message) error),
	}

	server.handlers[ActionTurn] = server.handleGameTurn
	server.handlers[ActionReset] = server.handleGameReset

	return server
}

// Handler - returns the HTTP handler serving the game socket on /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and blocks until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(ctx),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWebSocket - upgrades the connection, seats the player and serves it until it goes away.
func (that *Server) serveWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWebSocket")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)

	c := newClient(pkg.GenerateConnectionID(), conn)
	log = log.With("connectionID", c.id)

	done := make(chan struct{})
	go func() {
		c.writer()
		close(done)
	}()

	that.hub.register(c)

	player, err := that.relay.Join(ctx, c.id)
	if err != nil {
		log.Info("connection refused", "error", err)

		if err = that.sendErrorResponse(c, ActionConnect, err); err != nil {
			log.Error("failed to send refusal", "error", err)
		}

		that.hub.unregister(c.id)
		<-done

		return
	}

	if err = that.hub.send(c, ActionConnect, Payload{Player: player}); err != nil {
		log.Error("failed to send connect response", "error", err)
	}

	log.Info("WebSocket connection established", "mark", player.Mark)

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if err = that.handleMessages(ctx, c); err != nil {
		log.Info("connection closed", "error", err)
	}

	that.relay.Leave(ctx, c.id)
	that.hub.unregister(c.id)
	<-done
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages", "connectionID", c.id)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			err = fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
			if err = that.sendErrorResponse(c, ActionError, err); err != nil {
				log.Error("failed to send error response", "error", err)
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			err = fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action)
			if err = that.sendErrorResponse(c, ActionError, err); err != nil {
				log.Error("failed to send error response", "error", err)
			}

			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
