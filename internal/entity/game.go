package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	// BoardSize is the number of rows and columns on the board.
	BoardSize = 3

	// MaxMarksPerPlayer is how many marks a player keeps before the oldest one vanishes.
	MaxMarksPerPlayer = 4
)

// symbols used by the board wire format.
const (
	symbolX     = 'X'
	symbolO     = 'O'
	symbolEmpty = '.'
)

var (
	ErrInvalidBoardLength = errors.New("invalid board length")
	ErrInvalidBoardSymbol = errors.New("invalid board symbol")
)

// Cell addresses a single square of the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board holds the mark of every cell, EmptyCell when nobody owns it.
type Board [BoardSize][BoardSize]string

// Encode returns the board as BoardSize*BoardSize symbols in row-major order.
func (that Board) Encode() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for _, row := range that {
		for _, mark := range row {
			switch mark {
			case PlayerX:
				sb.WriteByte(symbolX)
			case PlayerO:
				sb.WriteByte(symbolO)
			default:
				sb.WriteByte(symbolEmpty)
			}
		}
	}

	return sb.String()
}

// DecodeBoard parses the row-major wire format produced by Board.Encode.
func DecodeBoard(encoded string) (Board, error) {
	var board Board

	if len(encoded) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: got %d symbols, want %d", ErrInvalidBoardLength, len(encoded), BoardSize*BoardSize)
	}

	for i := range len(encoded) {
		row, col := i/BoardSize, i%BoardSize

		switch encoded[i] {
		case symbolX:
			board[row][col] = PlayerX
		case symbolO:
			board[row][col] = PlayerO
		case symbolEmpty:
			board[row][col] = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: %q at %d", ErrInvalidBoardSymbol, encoded[i], i)
		}
	}

	return board, nil
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.Encode()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := DecodeBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark string) int {
	count := 0

	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// GameState is a read-only snapshot of a game.
type GameState struct {
	Board  Board  `json:"board"`
	Turn   string `json:"turn"`
	Winner string `json:"winner,omitempty"`
	Status string `json:"status"`
}

func (that *GameState) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameState) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Opponent returns the other player's mark.
func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
