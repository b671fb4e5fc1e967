package client

import (
	"github.com/beng262/InfiniteTicTacToe/internal/config"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

const (
	defaultScreenSize   = 600
	defaultButtonHeight = 50
)

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetReset
)

// Target is what a pointer position lands on.
type Target struct {
	Kind TargetKind
	Cell entity.Cell
}

// Layout maps the board and the "New Game" button onto window pixels.
// The board is a ScreenSize square with the button strip underneath.
type Layout struct {
	ScreenSize   int
	GridSize     int
	ButtonHeight int
}

func DefaultLayout() Layout {
	return Layout{
		ScreenSize:   defaultScreenSize,
		GridSize:     entity.BoardSize,
		ButtonHeight: defaultButtonHeight,
	}
}

// NewLayout builds a layout from config, falling back to the defaults for unset sizes.
func NewLayout(conf config.Client) Layout {
	layout := DefaultLayout()

	if conf.ScreenSize >= layout.GridSize {
		layout.ScreenSize = conf.ScreenSize
	}

	if conf.ButtonHeight > 0 {
		layout.ButtonHeight = conf.ButtonHeight
	}

	return layout
}

func (that Layout) CellSize() int {
	return that.ScreenSize / that.GridSize
}

func (that Layout) WindowSize() (int, int) {
	return that.ScreenSize, that.ScreenSize + that.ButtonHeight
}

// CellOrigin returns the top-left pixel of the cell.
func (that Layout) CellOrigin(cell entity.Cell) (int, int) {
	size := that.CellSize()
	return cell.Col * size, cell.Row * size
}

func (that Layout) CellCenter(cell entity.Cell) (float32, float32) {
	x, y := that.CellOrigin(cell)
	half := float32(that.CellSize()) / 2

	return float32(x) + half, float32(y) + half
}

// Hit resolves a pointer position to a board cell or the reset button.
func (that Layout) Hit(x, y int) Target {
	width, height := that.WindowSize()
	if x < 0 || y < 0 || x >= width || y >= height {
		return Target{Kind: TargetNone}
	}

	if y >= that.ScreenSize {
		return Target{Kind: TargetReset}
	}

	size := that.CellSize()
	cell := entity.Cell{
		Row: min(y/size, that.GridSize-1),
		Col: min(x/size, that.GridSize-1),
	}

	return Target{Kind: TargetCell, Cell: cell}
}
