package tictactoe

import (
	"fmt"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

// WinLines lists every row, column and both diagonals of the board.
var WinLines = buildWinLines(entity.BoardSize)

// MoveOutcome reports what an accepted move changed.
type MoveOutcome struct {
	Player  string       `json:"player"`
	Cell    entity.Cell  `json:"cell"`
	Evicted *entity.Cell `json:"evicted,omitempty"`
	Winner  string       `json:"winner,omitempty"`
}

// Engine enforces the rules of infinite tic-tac-toe: every player keeps at most
// entity.MaxMarksPerPlayer marks and the oldest one vanishes when a new one is placed.
//
// Engine is not safe for concurrent use.
type Engine struct {
	board   entity.Board
	history map[string][]entity.Cell
	turn    string
	winner  string

	winSubscribers []func(winner string)
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// ApplyMove places player's mark at (row, col). A rejected move returns an error
// from apperror and leaves the engine untouched.
func (that *Engine) ApplyMove(row, col int, player string) (*MoveOutcome, error) {
	cell := entity.Cell{Row: row, Col: col}

	if err := that.validateMove(cell, player); err != nil {
		return nil, fmt.Errorf("invalid turn %s by %q: %w", cell, player, err)
	}

	outcome := &MoveOutcome{
		Player: player,
		Cell:   cell,
	}

	// the oldest mark is removed before the new one is placed, the cells may coincide
	if len(that.history[player]) >= entity.MaxMarksPerPlayer {
		oldest := that.history[player][0]
		that.history[player] = that.history[player][1:]
		that.board[oldest.Row][oldest.Col] = entity.EmptyCell
		outcome.Evicted = &oldest
	}

	that.board[row][col] = player
	that.history[player] = append(that.history[player], cell)

	if !hasLine(that.board, player) {
		that.turn = entity.Opponent(player)
		return outcome, nil
	}

	that.winner = player
	outcome.Winner = player

	for _, notify := range that.winSubscribers {
		notify(player)
	}

	return outcome, nil
}

// validateMove - checks if the move is legal in the current state.
func (that *Engine) validateMove(cell entity.Cell, player string) error {
	if that.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if that.turn != player {
		return apperror.ErrNotYourTurn
	}

	if !cell.InBounds() {
		return apperror.ErrOutOfBounds
	}

	if that.board[cell.Row][cell.Col] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Reset clears the board and both histories and gives the first turn to X.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.history = map[string][]entity.Cell{
		entity.PlayerX: nil,
		entity.PlayerO: nil,
	}
	that.turn = entity.PlayerX
	that.winner = ""
}

// OnWin registers fn to be called with the winner's mark when a move wins the game.
func (that *Engine) OnWin(fn func(winner string)) {
	that.winSubscribers = append(that.winSubscribers, fn)
}

func (that *Engine) IsTerminal() bool {
	return that.winner != ""
}

func (that *Engine) Board() entity.Board {
	return that.board
}

// History returns the cells of player's live marks, oldest first.
func (that *Engine) History(player string) []entity.Cell {
	return append([]entity.Cell(nil), that.history[player]...)
}

func (that *Engine) Turn() string {
	return that.turn
}

func (that *Engine) Winner() string {
	return that.winner
}

func (that *Engine) State() *entity.GameState {
	state := &entity.GameState{
		Board:  that.board,
		Turn:   that.turn,
		Winner: that.winner,
		Status: entity.StatusOngoing,
	}

	if that.IsTerminal() {
		state.Status = entity.StatusFinished
	}

	return state
}

func hasLine(board entity.Board, player string) bool {
	for _, line := range WinLines {
		complete := true

		for _, cell := range line {
			if board[cell.Row][cell.Col] != player {
				complete = false
				break
			}
		}

		if complete {
			return true
		}
	}

	return false
}

func buildWinLines(size int) [][]entity.Cell {
	lines := make([][]entity.Cell, 0, 2*size+2)

	for i := range size {
		row := make([]entity.Cell, 0, size)
		col := make([]entity.Cell, 0, size)

		for j := range size {
			row = append(row, entity.Cell{Row: i, Col: j})
			col = append(col, entity.Cell{Row: j, Col: i})
		}

		lines = append(lines, row, col)
	}

	diagonal := make([]entity.Cell, 0, size)
	antiDiagonal := make([]entity.Cell, 0, size)

	for i := range size {
		diagonal = append(diagonal, entity.Cell{Row: i, Col: i})
		antiDiagonal = append(antiDiagonal, entity.Cell{Row: i, Col: size - 1 - i})
	}

	return append(lines, diagonal, antiDiagonal)
}
