// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// Game is driven by the host once per animation frame with a monotonically
// increasing timestamp. It owns all mutable state; the host supplies a
// Surface to draw on, activate events, viewport sizes and asset handles.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Title is the display name of the game.
const Title = "Flappy Bird"

// Game is the frame-loop driver. It is not safe for concurrent use; hosts
// deliver frames, input and resizes from a single goroutine.
type Game struct {
	cfg    config.FlappyConfig
	dims   Dimensions
	state  GameState
	actor  Actor
	lane   Lane
	timing Timing
	assets Assets
	rng    RandFunc
	events []Cue
}

// New creates a game. Call Resize before the first Frame.
// A nil rng uses a time-seeded source.
func New(cfg config.FlappyConfig, assets Assets, rng RandFunc) *Game {
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	return &Game{
		cfg:    cfg,
		state:  GameState{GodMode: cfg.GodMode},
		timing: Timing{SpawnInterval: cfg.Obstacles.SpawnInterval},
		assets: assets,
		rng:    rng,
	}
}

// Resize recomputes every derived size for a new viewport. A running game
// is scaled in place so the bird and pipes keep their relative positions.
func (g *Game) Resize(viewW, viewH float64) {
	if viewH <= 0 {
		return
	}
	old := g.dims
	g.dims = ComputeDimensions(g.cfg, viewW, viewH)

	g.actor.X = g.dims.ActorX
	g.actor.W = g.dims.ActorW
	g.actor.H = g.dims.ActorH

	if old.BoardH <= 0 || g.state.Phase() == PhaseIdle {
		g.actor.Y = g.dims.ActorStartY
		return
	}

	k := viewH / old.BoardH
	g.actor.Y *= k
	g.actor.VelocityY *= k
	g.actor.Gravity *= k
	g.lane.Scale(k)
}

// Activate handles the flap input. It starts an idle game, restarts a
// finished one, and otherwise makes the bird jump.
func (g *Game) Activate() {
	g.notify(CueWing)

	if g.state.Terminal {
		g.restart()
		return
	}

	g.state.Running = true
	g.actor.ApplyImpulse(g.dims.JumpForce, g.dims.Gravity, g.state.GodMode)
}

// restart resets the round in one step and goes straight back to running.
func (g *Game) restart() {
	g.actor = Actor{
		X: g.dims.ActorX,
		Y: g.dims.ActorStartY,
		W: g.dims.ActorW,
		H: g.dims.ActorH,
	}
	g.lane.Reset()
	g.timing.SpawnAccumulator = 0
	g.state.Score = 0
	g.state.Terminal = false
	g.state.Running = true
}

// Frame advances the game to timestamp now and draws it on dst.
func (g *Game) Frame(now time.Duration, dst Surface) {
	if g.state.Terminal {
		// Keep the clock current so the round after a restart does not
		// start with the whole game-over pause as its first delta.
		g.timing.delta(now)
		g.redraw(dst)
		return
	}

	dt := g.timing.delta(now)

	dst.Clear()
	g.drawBackground(dst)

	g.actor.Integrate(dt)
	g.drawActor(dst)

	if !g.state.Running {
		return
	}

	if g.actor.Y > g.dims.BoardH {
		g.terminate(CueDie)
	}

	g.timing.SpawnAccumulator += dt
	if g.timing.SpawnAccumulator >= g.timing.SpawnInterval {
		g.lane.Spawn(g.state, g.dims.SpawnX, g.dims.BaseY, g.dims.PaneW, g.dims.PaneH, g.dims.OpenSpace, g.rng)
		g.timing.SpawnAccumulator = 0
	}

	g.lane.Advance(g.dims.Speed * dt)
	for i := range g.lane.items {
		o := &g.lane.items[i]
		g.drawObstacle(dst, *o)

		if CheckPassage(g.actor, o) {
			g.notify(CuePoint)
			g.state.addPoint()
		}

		if Collides(g.actor, *o, g.state.GodMode) {
			g.terminate(CueHit)
		}
	}

	g.lane.Prune(0)

	g.drawHUD(dst)
}

// terminate ends the round. Only the first cause in a frame is announced.
func (g *Game) terminate(cause Cue) {
	if g.state.Terminal {
		return
	}
	g.state.Terminal = true
	g.notify(cause)
}

// notify plays the cue's sound and records it for the host.
func (g *Game) notify(c Cue) {
	if s := g.assets.sound(c); s != nil {
		s.Play()
	}
	g.events = append(g.events, c)
}

// redraw paints the current scene without advancing anything.
func (g *Game) redraw(dst Surface) {
	dst.Clear()
	g.drawBackground(dst)
	g.drawActor(dst)
	if !g.state.Running {
		return
	}
	for _, o := range g.lane.items {
		g.drawObstacle(dst, o)
	}
	g.drawHUD(dst)
}

func (g *Game) drawBackground(dst Surface) {
	g.drawImage(dst, g.assets.Background, 0, 0, g.dims.BoardW, g.dims.BoardH)
}

func (g *Game) drawActor(dst Surface) {
	g.drawImage(dst, g.assets.Bird, g.actor.X, g.actor.Y, g.actor.W, g.actor.H)
}

func (g *Game) drawObstacle(dst Surface, o Obstacle) {
	g.drawImage(dst, g.assets.pipe(o.Variant), o.X, o.Y, o.W, o.H)
}

// drawImage draws img, or defers a full redraw until img has loaded.
func (g *Game) drawImage(dst Surface, img Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	if img.Ready() {
		dst.DrawImage(img, x, y, w, h)
		return
	}
	img.OnReady(func() { g.redraw(dst) })
}

func (g *Game) drawHUD(dst Surface) {
	d := g.dims
	dst.DrawText(FormatScore(g.state.Score), d.ScoreX, d.TextY, d.FontSize)
	dst.DrawText("Best score: "+FormatScore(g.state.BestScore), d.BestX, d.TextY, d.FontSize)

	if g.state.Terminal {
		dst.DrawText("GAME OVER", d.BannerX, d.BannerY, d.BannerFont)
	}
}

// SetAssets rebinds the sprite and sound handles (theme switch).
func (g *Game) SetAssets(a Assets) {
	g.assets = a
}

// SetGodMode toggles the debug mode that disables collisions and flapping.
func (g *Game) SetGodMode(on bool) {
	g.state.GodMode = on
}

// DrainEvents returns the cues raised since the last call.
func (g *Game) DrainEvents() []Cue {
	ev := g.events
	g.events = nil
	return ev
}

// State returns the current score and flags.
func (g *Game) State() GameState {
	return g.state
}

// Actor returns a copy of the bird.
func (g *Game) Actor() Actor {
	return g.actor
}

// Obstacles returns a copy of the live pipes, oldest first.
func (g *Game) Obstacles() []Obstacle {
	return g.lane.Items()
}

// Dimensions returns the sizes derived from the current viewport.
func (g *Game) Dimensions() Dimensions {
	return g.dims
}
