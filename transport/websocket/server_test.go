package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
	"github.com/beng262/InfiniteTicTacToe/internal/tictactoe"
	eventfeed "github.com/beng262/InfiniteTicTacToe/internal/transport/redis"
	"github.com/beng262/InfiniteTicTacToe/internal/usecase"
)

const readTimeout = 2 * time.Second

func newTestServer(t *testing.T) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(logger)
	relay := usecase.NewGameRelay(logger, tictactoe.NewEngine(), hub, eventfeed.NopPublisher{})

	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(New(logger, relay, hub).Handler(ctx))

	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// readUntil skips messages until one with the given action arrives.
func readUntil(t *testing.T, conn *websocket.Conn, action string) Payload {
	t.Helper()

	for {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(readTimeout)))

		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var message Message
		require.NoError(t, json.Unmarshal(data, &message))

		if message.Action != action {
			continue
		}

		var payload Payload
		require.NoError(t, json.Unmarshal(message.Payload, &payload))

		return payload
	}
}

// join dials the server and waits for the seat assignment.
func join(t *testing.T, url string) (*websocket.Conn, *entity.Player) {
	t.Helper()

	conn := dial(t, url)
	payload := readUntil(t, conn, ActionConnect)
	require.NotNil(t, payload.Player, "connect refused: %s", payload.Error)

	return conn, payload.Player
}

func sendMessage(t *testing.T, conn *websocket.Conn, action string, payload Payload) {
	t.Helper()

	data, err := EncodeMessage(action, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func TestServer_Connect(t *testing.T) {
	t.Run("Seats two players and refuses a third", func(t *testing.T) {
		// Given: a running server
		url := newTestServer(t)

		// When: three clients connect
		_, first := join(t, url)
		_, second := join(t, url)

		third := dial(t, url)
		refusal := readUntil(t, third, ActionConnect)

		// Then: X and O are handed out and the third gets game_full before being closed
		assert.Equal(t, entity.PlayerX, first.Mark)
		assert.Equal(t, entity.PlayerO, second.Mark)
		assert.NotEqual(t, first.ID, second.ID)

		assert.Nil(t, refusal.Player)
		assert.Equal(t, apperror.CodeGameFull, refusal.Code)

		require.NoError(t, third.SetReadDeadline(time.Now().Add(readTimeout)))
		_, _, err := third.ReadMessage()
		assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
	})

	t.Run("Disconnect frees the seat", func(t *testing.T) {
		// Given: a server with X seated
		url := newTestServer(t)
		connX, _ := join(t, url)
		join(t, url)

		// When: X disconnects
		require.NoError(t, connX.Close())

		// Then: a new client eventually gets the X seat
		assert.Eventually(t, func() bool {
			conn := dial(t, url)
			defer conn.Close()

			return readUntil(t, conn, ActionConnect).Player != nil
		}, 3*time.Second, 50*time.Millisecond)
	})
}

func TestServer_GameTurn(t *testing.T) {
	t.Run("Accepted move is acknowledged and broadcast", func(t *testing.T) {
		// Given: both seats taken
		url := newTestServer(t)
		connX, _ := join(t, url)
		connO, _ := join(t, url)

		// When: X plays the center
		sendMessage(t, connX, ActionTurn, Payload{Move: NewMove(1, 1)})

		// Then: both get the new state, followed by the ack for X
		for _, conn := range []*websocket.Conn{connX, connO} {
			state := readUntil(t, conn, ActionState)
			for state.Game.Board.Count(entity.PlayerX) == 0 {
				state = readUntil(t, conn, ActionState)
			}

			assert.Equal(t, "....X....", state.Game.Board.Encode())
			assert.Equal(t, entity.PlayerO, state.Game.Turn)
		}

		ack := readUntil(t, connX, ActionTurn)
		require.NotNil(t, ack.Move)
		assert.Equal(t, 1, *ack.Move.Row)
		assert.Equal(t, 1, *ack.Move.Col)
		assert.Empty(t, ack.Code)
		assert.Nil(t, ack.Evicted)
	})

	t.Run("Out of turn move is rejected", func(t *testing.T) {
		// Given: both seats taken
		url := newTestServer(t)
		join(t, url)
		connO, _ := join(t, url)

		// When: O moves first
		sendMessage(t, connO, ActionTurn, Payload{Move: NewMove(0, 0)})

		// Then: O gets an out_of_turn error
		resp := readUntil(t, connO, ActionTurn)
		assert.Equal(t, apperror.CodeOutOfTurn, resp.Code)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("Missing move is malformed", func(t *testing.T) {
		// Given: X seated
		url := newTestServer(t)
		connX, _ := join(t, url)

		// When: X sends a turn with only a row
		row := 0
		sendMessage(t, connX, ActionTurn, Payload{Move: &Move{Row: &row}})

		// Then: the turn is rejected as malformed
		resp := readUntil(t, connX, ActionTurn)
		assert.Equal(t, apperror.CodeMalformedMessage, resp.Code)
	})
}

func TestServer_BadInput(t *testing.T) {
	t.Run("Malformed JSON keeps the connection open", func(t *testing.T) {
		// Given: both seats taken
		url := newTestServer(t)
		connX, _ := join(t, url)
		join(t, url)

		// When: X sends garbage and then a valid move
		require.NoError(t, connX.WriteMessage(websocket.TextMessage, []byte("{not json")))
		errResp := readUntil(t, connX, ActionError)

		sendMessage(t, connX, ActionTurn, Payload{Move: NewMove(0, 0)})
		ack := readUntil(t, connX, ActionTurn)

		// Then: the garbage is reported and the move still goes through
		assert.Equal(t, apperror.CodeMalformedMessage, errResp.Code)
		assert.Empty(t, ack.Code)
	})

	t.Run("Unknown action", func(t *testing.T) {
		// Given: X seated
		url := newTestServer(t)
		connX, _ := join(t, url)

		// When: X sends an action the server doesn't know
		sendMessage(t, connX, "game:undo", Payload{})

		// Then: an unknown_action error comes back
		resp := readUntil(t, connX, ActionError)
		assert.Equal(t, apperror.CodeUnknownAction, resp.Code)
	})
}

func TestServer_GameReset(t *testing.T) {
	// Given: a game with one move played
	url := newTestServer(t)
	connX, _ := join(t, url)
	join(t, url)

	sendMessage(t, connX, ActionTurn, Payload{Move: NewMove(2, 2)})
	readUntil(t, connX, ActionTurn)

	// When: X resets
	sendMessage(t, connX, ActionReset, Payload{})

	// Then: the empty state is broadcast and the ack has no error
	state := readUntil(t, connX, ActionState)
	for state.Game.Board.Count(entity.PlayerX) != 0 {
		state = readUntil(t, connX, ActionState)
	}
	assert.Equal(t, ".........", state.Game.Board.Encode())
	assert.Equal(t, entity.PlayerX, state.Game.Turn)

	ack := readUntil(t, connX, ActionReset)
	assert.Empty(t, ack.Code)
}
