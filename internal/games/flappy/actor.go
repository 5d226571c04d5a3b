package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the player-controlled bird.
type Actor struct {
	X, Y      float64 // Top-left corner
	W, H      float64 // Hitbox size
	VelocityY float64 // Positive is down
	Gravity   float64 // Zero until the first flap
}

// Rect returns the bird's collision rectangle.
func (a Actor) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}

// Integrate advances the bird by dt seconds. Y is clamped at the top of the
// board but not at the bottom; falling out is a game-over condition.
func (a *Actor) Integrate(dt float64) {
	a.VelocityY += a.Gravity * dt
	a.Y = math.Max(a.Y+a.VelocityY*dt, 0)
}

// ApplyImpulse makes the bird jump and switches gravity on.
// In god mode the flap is ignored entirely.
func (a *Actor) ApplyImpulse(jumpForce, gravity float64, godMode bool) {
	if godMode {
		return
	}
	a.Gravity = gravity
	a.VelocityY = -jumpForce
}
