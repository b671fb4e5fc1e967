package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/beng262/InfiniteTicTacToe/internal/config"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
	"github.com/beng262/InfiniteTicTacToe/internal/repository/storage"
	"github.com/beng262/InfiniteTicTacToe/internal/tictactoe"
	eventfeed "github.com/beng262/InfiniteTicTacToe/internal/transport/redis"
	"github.com/beng262/InfiniteTicTacToe/internal/usecase"
	"github.com/beng262/InfiniteTicTacToe/transport/rest"
	"github.com/beng262/InfiniteTicTacToe/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type eventPublisher interface {
	Publish(ctx context.Context, event *entity.GameEvent) error
}

// RunApp - runs the relay server.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var publisher eventPublisher = eventfeed.NopPublisher{}

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		publisher = eventfeed.NewPublisher(redisStorage.Connection, conf.Redis.Channel)
		log.Info("Publishing game events", "addr", redisAddrString, "channel", conf.Redis.Channel)
	}

	engine := tictactoe.NewEngine()
	engine.OnWin(func(winner string) {
		log.Info("Game won", "winner", winner)
	})

	hub := websocket.NewHub(logger)
	relay := usecase.NewGameRelay(logger, engine, hub, publisher)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, relay, hub)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
