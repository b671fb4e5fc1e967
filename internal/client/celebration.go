package client

import (
	"math/rand/v2"

	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

const (
	// CelebrationFrames is two seconds at 60 ticks per second.
	CelebrationFrames = 120
	particlesPerFrame = 15
)

// Particle is the center of one falling mark.
type Particle struct {
	X, Y float32
}

// Celebration is the falling-marks animation played after a win.
type Celebration struct {
	layout Layout
	winner string
	frame  int
	rng    *rand.Rand
}

func NewCelebration(layout Layout, winner string, seed uint64) *Celebration {
	return &Celebration{
		layout: layout,
		winner: winner,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (that *Celebration) Winner() string {
	return that.winner
}

func (that *Celebration) Done() bool {
	return that.frame >= CelebrationFrames
}

// Step advances one frame and returns where to draw this frame's marks.
// Crosses snap to the grid, circles fall freely.
func (that *Celebration) Step() []Particle {
	if that.Done() {
		return nil
	}

	that.frame++

	size := that.layout.CellSize()
	particles := make([]Particle, 0, particlesPerFrame)

	for range particlesPerFrame {
		x := that.rng.IntN(that.layout.ScreenSize + 1)
		y := that.rng.IntN(that.layout.ScreenSize+size+1) - size

		if that.winner == entity.PlayerX {
			cell := entity.Cell{Row: floorDiv(y, size), Col: x / size}
			cx, cy := that.layout.CellCenter(cell)
			particles = append(particles, Particle{X: cx, Y: cy})

			continue
		}

		particles = append(particles, Particle{X: float32(x), Y: float32(y)})
	}

	return particles
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}

	return q
}
