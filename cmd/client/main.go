package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/beng262/InfiniteTicTacToe/internal/client"
	"github.com/beng262/InfiniteTicTacToe/internal/client/render"
	"github.com/beng262/InfiniteTicTacToe/internal/config"
)

const dialTimeout = 10 * time.Second

// main - runs the graphical client, hot-seat or against a relay when client.server-url is set.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	session, err := newSession(logger, conf)
	if err != nil {
		panic(fmt.Errorf("failed to start session: %w", err))
	}

	defer func() {
		if err = session.Close(); err != nil {
			logger.Error("failed to close session", "error", err)
		}
	}()

	local := conf.Client.ServerURL == ""
	game := render.New(logger, session, client.NewLayout(conf.Client), local)

	if err = render.Run(game); err != nil {
		panic(fmt.Errorf("client run failed: %w", err))
	}
}

func newSession(logger *slog.Logger, conf *config.Config) (client.Session, error) {
	if conf.Client.ServerURL == "" {
		logger.Info("starting local game")
		return client.NewLocalSession(logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	logger.Info("connecting to relay", "url", conf.Client.ServerURL)

	session, err := client.DialRemote(ctx, logger, conf.Client.ServerURL)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
