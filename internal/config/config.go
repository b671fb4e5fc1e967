package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"5555"`
	Redis      Redis  `yaml:"redis"`
	Client     Client `yaml:"client"`
}

// Redis configures the optional game event feed.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe:events"`
}

// Client configures the graphical client.
type Client struct {
	// ServerURL is the relay's WebSocket URL, empty for a local hot-seat game.
	ServerURL    string `yaml:"server-url" env:"SERVER_URL" env-default:""`
	ScreenSize   int    `yaml:"screen-size" env:"SCREEN_SIZE" env-default:"600"`
	ButtonHeight int    `yaml:"button-height" env:"BUTTON_HEIGHT" env-default:"50"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
