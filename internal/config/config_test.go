package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every section set
		path := writeConfig(t, `
log-level: debug
http-port: "8081"
socket-port: "6000"
redis:
  enabled: true
  host: redis
  port: "6380"
  channel: games
client:
  server-url: ws://localhost:6000/ws
  screen-size: 300
  button-height: 40
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: the values should be taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "6000", conf.SocketPort)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "games", conf.Redis.Channel)
		assert.Equal(t, "ws://localhost:6000/ws", conf.Client.ServerURL)
		assert.Equal(t, 300, conf.Client.ScreenSize)
		assert.Equal(t, 40, conf.Client.ButtonHeight)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: info\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: the defaults should be used
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "5555", conf.SocketPort)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe:events", conf.Redis.Channel)
		assert.Empty(t, conf.Client.ServerURL)
		assert.Equal(t, 600, conf.Client.ScreenSize)
		assert.Equal(t, 50, conf.Client.ButtonHeight)
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
