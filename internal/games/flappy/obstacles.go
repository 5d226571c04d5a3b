package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RandFunc returns a uniformly distributed value in [0, 1).
type RandFunc func() float64

// NewRand returns a RandFunc backed by a seeded source.
func NewRand(seed int64) RandFunc {
	return rand.New(rand.NewSource(seed)).Float64
}

// Variant tells which half of a gate an obstacle is.
type Variant int

const (
	VariantUpper Variant = iota
	VariantLower
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	if v == VariantUpper {
		return "upper"
	}
	return "lower"
}

// Obstacle is one pipe of a gate.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Passed  bool // Set once the bird has cleared it
	Variant Variant
}

// Rect returns the pipe's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// SpawnPair builds an upper and a lower pipe sharing originX.
// The upper pipe hangs between a quarter and three quarters of its height
// above baseY; the lower pipe starts openSpace below the upper one.
func SpawnPair(originX, baseY, paneW, paneH, openSpace float64, rng RandFunc) (Obstacle, Obstacle) {
	upperY := baseY - paneH/4 - rng()*(paneH/2)

	upper := Obstacle{
		X:       originX,
		Y:       upperY,
		W:       paneW,
		H:       paneH,
		Variant: VariantUpper,
	}
	lower := Obstacle{
		X:       originX,
		Y:       upperY + paneH + openSpace,
		W:       paneW,
		H:       paneH,
		Variant: VariantLower,
	}
	return upper, lower
}

// CheckPassage marks o as passed the first time the bird's x moves beyond
// the pipe's trailing edge. It returns true only on that transition.
func CheckPassage(actor Actor, o *Obstacle) bool {
	if o.Passed || actor.X <= o.X+o.W {
		return false
	}
	o.Passed = true
	return true
}

// Collides is the collision policy: geometry overlap, unless god mode is on.
func Collides(actor Actor, o Obstacle, godMode bool) bool {
	if godMode {
		return false
	}
	return actor.Rect().Intersects(o.Rect())
}

// Lane is the FIFO sequence of live pipes. All pipes spawn at the same x and
// move at the same speed, so the front is always the left-most pair.
type Lane struct {
	items []Obstacle
}

// Spawn appends a new pair. It refuses while the game is idle or over.
func (l *Lane) Spawn(state GameState, originX, baseY, paneW, paneH, openSpace float64, rng RandFunc) bool {
	if !state.Running || state.Terminal {
		return false
	}
	upper, lower := SpawnPair(originX, baseY, paneW, paneH, openSpace, rng)
	l.items = append(l.items, upper, lower)
	return true
}

// Advance moves every pipe dx to the left.
func (l *Lane) Advance(dx float64) {
	for i := range l.items {
		l.items[i].X -= dx
	}
}

// Prune drops pipes from the front whose trailing edge is left of originX.
// Returns the number removed.
func (l *Lane) Prune(originX float64) int {
	n := 0
	for n < len(l.items) && l.items[n].X+l.items[n].W < originX {
		n++
	}
	if n > 0 {
		l.items = l.items[n:]
	}
	return n
}

// Scale multiplies every pipe's geometry by k (used when the viewport changes).
func (l *Lane) Scale(k float64) {
	for i := range l.items {
		o := &l.items[i]
		o.X *= k
		o.Y *= k
		o.W *= k
		o.H *= k
	}
}

// Reset removes all pipes.
func (l *Lane) Reset() {
	l.items = nil
}

// Len returns the number of live pipes.
func (l *Lane) Len() int {
	return len(l.items)
}

// Items returns a copy of the live pipes, front first.
func (l *Lane) Items() []Obstacle {
	out := make([]Obstacle, len(l.items))
	copy(out, l.items)
	return out
}
