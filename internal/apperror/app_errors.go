package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")

	ErrGameFull         = errors.New("game already has two players")
	ErrNotSeated        = errors.New("player is not seated at the game")
	ErrMalformedMessage = errors.New("malformed message")
	ErrUnknownAction    = errors.New("unknown action")

	ErrInternal = errors.New("internal error")
)

// Reason codes sent to clients alongside a refusal.
const (
	CodeOutOfTurn        = "out_of_turn"
	CodeOutOfBounds      = "out_of_bounds"
	CodeCellOccupied     = "cell_occupied"
	CodeGameOver         = "game_over"
	CodeGameFull         = "game_full"
	CodeNotSeated        = "not_seated"
	CodeMalformedMessage = "malformed_message"
	CodeUnknownAction    = "unknown_action"
	CodeInternal         = "internal"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrNotYourTurn, CodeOutOfTurn},
	{ErrOutOfBounds, CodeOutOfBounds},
	{ErrCellOccupied, CodeCellOccupied},
	{ErrGameFinished, CodeGameOver},
	{ErrGameFull, CodeGameFull},
	{ErrNotSeated, CodeNotSeated},
	{ErrMalformedMessage, CodeMalformedMessage},
	{ErrUnknownAction, CodeUnknownAction},
}

// Code maps an error, possibly wrapped, to its reason code.
func Code(err error) string {
	if err == nil {
		return ""
	}

	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return CodeInternal
}

// FromCode is the inverse of Code. Unknown codes map to ErrInternal.
func FromCode(code string) error {
	if code == "" {
		return nil
	}

	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}

	return ErrInternal
}
