package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

// Sizes are for a 200px cell and scale with the layout.
const (
	referenceCell = 200
	lineWidth     = 15
	crossWidth    = 25
	space         = 55
	circleWidth   = 15
	circleInset   = 14

	glyphWidth  = 7
	glyphHeight = 13
)

var (
	bgColor         = color.RGBA{R: 28, G: 170, B: 156, A: 255}
	lineColor       = color.RGBA{R: 23, G: 145, B: 135, A: 255}
	crossColor      = color.RGBA{R: 162, G: 207, B: 254, A: 255}
	circleColor     = color.RGBA{R: 140, G: 255, B: 158, A: 255}
	buttonColor     = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	buttonTextColor = color.White
	errorTextColor  = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

func (that *Game) scale() float32 {
	return float32(that.layout.CellSize()) / referenceCell
}

func (that *Game) drawGrid(screen *ebiten.Image) {
	size := float32(that.layout.ScreenSize)
	cell := float32(that.layout.CellSize())
	width := lineWidth * that.scale()

	for i := 1; i < that.layout.GridSize; i++ {
		offset := float32(i) * cell
		vector.StrokeLine(screen, 0, offset, size, offset, width, lineColor, true)
		vector.StrokeLine(screen, offset, 0, offset, size, width, lineColor, true)
	}
}

func (that *Game) drawBoard(screen *ebiten.Image) {
	board := that.session.Board()

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			cx, cy := that.layout.CellCenter(entity.Cell{Row: row, Col: col})

			switch board[row][col] {
			case entity.PlayerX:
				that.drawCross(screen, cx, cy)
			case entity.PlayerO:
				that.drawCircle(screen, cx, cy)
			}
		}
	}
}

func (that *Game) drawParticles(screen *ebiten.Image) {
	winner := that.celebration.Winner()

	for _, p := range that.particles {
		if winner == entity.PlayerX {
			that.drawCross(screen, p.X, p.Y)
			continue
		}

		that.drawCircle(screen, p.X, p.Y)
	}
}

func (that *Game) drawCross(screen *ebiten.Image, cx, cy float32) {
	half := float32(that.layout.CellSize())/2 - space*that.scale()
	width := crossWidth * that.scale()

	vector.StrokeLine(screen, cx-half, cy-half, cx+half, cy+half, width, crossColor, true)
	vector.StrokeLine(screen, cx-half, cy+half, cx+half, cy-half, width, crossColor, true)
}

func (that *Game) drawCircle(screen *ebiten.Image, cx, cy float32) {
	scale := that.scale()
	outer := float32(that.layout.CellSize())/2 - (circleInset+space/4)*scale
	width := circleWidth * scale

	vector.StrokeCircle(screen, cx, cy, outer-width/2, width, circleColor, true)
}

// drawButton draws the "New Game" strip with the game status on its left.
func (that *Game) drawButton(screen *ebiten.Image) {
	top := that.layout.ScreenSize
	width := that.layout.ScreenSize
	height := that.layout.ButtonHeight

	vector.DrawFilledRect(screen, 0, float32(top), float32(width), float32(height), buttonColor, true)

	label := "New Game"
	baseline := top + (height+glyphHeight)/2
	text.Draw(screen, label, basicfont.Face7x13, (width-len(label)*glyphWidth)/2, baseline, buttonTextColor)

	text.Draw(screen, that.status(), basicfont.Face7x13, 8, baseline, buttonTextColor)

	if code := apperror.Code(that.session.LastError()); code != "" {
		text.Draw(screen, code, basicfont.Face7x13, width-len(code)*glyphWidth-8, baseline, errorTextColor)
	}
}

func (that *Game) status() string {
	if winner := that.session.Winner(); winner != "" {
		return fmt.Sprintf("%s wins", winner)
	}

	mark := that.session.Mark()
	if mark == "" {
		return fmt.Sprintf("%s to move", that.session.Turn())
	}

	if mark == that.session.Turn() {
		return fmt.Sprintf("You (%s): your move", mark)
	}

	return fmt.Sprintf("You (%s): waiting", mark)
}
