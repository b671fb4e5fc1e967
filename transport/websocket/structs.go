package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

const (
	ActionConnect = "connect"
	ActionTurn    = "game:turn"
	ActionReset   = "game:reset"
	ActionState   = "game:state"
	ActionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is shared by every action, each one fills the fields it needs.
type Payload struct {
	Player  *entity.Player    `json:"player,omitempty"`
	Game    *entity.GameState `json:"game,omitempty"`
	Move    *Move             `json:"move,omitempty"`
	Evicted *entity.Cell      `json:"evicted,omitempty"`
	Winner  string            `json:"winner,omitempty"`
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
}

// Move is a move request. Both coordinates are required.
type Move struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func NewMove(row, col int) *Move {
	return &Move{Row: &row, Col: &col}
}

func (that *Move) complete() bool {
	return that != nil && that.Row != nil && that.Col != nil
}

// EncodeMessage wraps the payload into a Message and marshals it.
func EncodeMessage(action string, payload Payload) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	messageJSON, err := json.Marshal(Message{Action: action, Payload: payloadJSON})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return messageJSON, nil
}
