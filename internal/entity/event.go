package entity

import "time"

const (
	EventMove  = "move"
	EventWin   = "win"
	EventReset = "reset"
)

// GameEvent describes a state change of the relay's game for feed subscribers.
type GameEvent struct {
	Type    string    `json:"type"`
	Player  string    `json:"player,omitempty"`
	Cell    *Cell     `json:"cell,omitempty"`
	Evicted *Cell     `json:"evicted,omitempty"`
	Board   Board     `json:"board"`
	Winner  string    `json:"winner,omitempty"`
	At      time.Time `json:"at"`
}
