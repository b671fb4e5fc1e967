package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Encode(t *testing.T) {
	t.Run("Empty board encodes as empty markers", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: encoding the board
		encoded := board.Encode()

		// Then: every cell should be the empty marker
		assert.Equal(t, ".........", encoded)
	})

	t.Run("Marks are encoded in row-major order", func(t *testing.T) {
		// Given: a board with marks in the first and last rows
		board := Board{
			{PlayerX, EmptyCell, PlayerO},
			{EmptyCell, EmptyCell, EmptyCell},
			{PlayerO, EmptyCell, PlayerX},
		}

		// When: encoding the board
		encoded := board.Encode()

		// Then: the symbols should follow the rows left to right
		assert.Equal(t, "X.O...O.X", encoded)
	})
}

func TestDecodeBoard(t *testing.T) {
	t.Run("Decodes what Encode produces", func(t *testing.T) {
		// Given: an encoded board
		encoded := "XO.OX...X"

		// When: decoding it
		board, err := DecodeBoard(encoded)

		// Then: the cells should hold the matching marks
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board[0][0])
		assert.Equal(t, PlayerO, board[0][1])
		assert.Equal(t, EmptyCell, board[0][2])
		assert.Equal(t, PlayerX, board[2][2])
		assert.Equal(t, encoded, board.Encode())
	})

	t.Run("Rejects a board of the wrong length", func(t *testing.T) {
		// When: decoding a short board
		_, err := DecodeBoard("XO.")

		// Then: ErrInvalidBoardLength should be returned
		assert.ErrorIs(t, err, ErrInvalidBoardLength)
	})

	t.Run("Rejects unknown symbols", func(t *testing.T) {
		// When: decoding a board with a stray symbol
		_, err := DecodeBoard("XO.OZ...X")

		// Then: ErrInvalidBoardSymbol should be returned
		assert.ErrorIs(t, err, ErrInvalidBoardSymbol)
	})
}

func TestGameState_JSON(t *testing.T) {
	// Given: a game state with a couple of marks
	state := GameState{
		Board:  Board{{PlayerX}, {EmptyCell, PlayerO}},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}

	// When: marshalling it to JSON
	data, err := json.Marshal(state)
	require.NoError(t, err)

	// Then: the board should travel as the fixed-length symbol string
	assert.JSONEq(t, `{"board":"X...O....","turn":"X","status":"ongoing"}`, string(data))

	// And: it should decode back into the same state
	var decoded GameState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)
}

func TestBoard_Count(t *testing.T) {
	// Given: a board with two X marks and one O mark
	board := Board{
		{PlayerX, PlayerO, EmptyCell},
		{EmptyCell, PlayerX, EmptyCell},
	}

	// Then: Count should report each mark separately
	assert.Equal(t, 2, board.Count(PlayerX))
	assert.Equal(t, 1, board.Count(PlayerO))
	assert.Equal(t, 6, board.Count(EmptyCell))
}

func TestCell_InBounds(t *testing.T) {
	assert.True(t, Cell{Row: 0, Col: 0}.InBounds())
	assert.True(t, Cell{Row: 2, Col: 2}.InBounds())
	assert.False(t, Cell{Row: -1, Col: 0}.InBounds())
	assert.False(t, Cell{Row: 0, Col: 3}.InBounds())
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerO, Opponent(PlayerX))
	assert.Equal(t, PlayerX, Opponent(PlayerO))
}
