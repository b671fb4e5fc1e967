package entity

// Player is a connection seated at the relay's game.
type Player struct {
	ID   string `json:"id"`
	Mark string `json:"mark,omitempty"`
}
