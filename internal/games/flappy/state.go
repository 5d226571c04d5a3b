package flappy

import (
	"math"
	"strconv"
	"time"
)

// PointPerObstacle is awarded for each pipe the bird clears.
// Pipes come in pairs, so a full gate is worth one point.
const PointPerObstacle = 0.5

// Phase is the combined bird/game state.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first flap
	PhaseRunning               // Pipes spawn, score counts
	PhaseTerminal              // Game over until the next flap
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// GameState is the score and mode bookkeeping owned by the Game.
type GameState struct {
	Running   bool    // Set by the first flap
	Terminal  bool    // Game over
	Score     float64 // Half-point increments
	BestScore float64 // Never decreases within a Game lifetime
	GodMode   bool    // No collisions, no flapping
}

// Phase derives the state-machine phase from the flags.
func (s GameState) Phase() Phase {
	switch {
	case s.Terminal:
		return PhaseTerminal
	case s.Running:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// addPoint credits one obstacle passage and lifts the best score.
func (s *GameState) addPoint() {
	s.Score += PointPerObstacle
	s.BestScore = math.Max(s.BestScore, s.Score)
}

// FormatScore renders a half-integer score the way the HUD shows it ("3", "3.5").
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// Timing holds the frame clock and the pipe spawn accumulator.
type Timing struct {
	LastFrame        time.Duration // Timestamp of the previous frame
	SpawnAccumulator float64       // Seconds since the last spawned pair
	SpawnInterval    float64       // Seconds between pairs
	started          bool          // False until the first frame is seen
}

// delta returns the seconds elapsed since the previous frame and records now.
// The first frame has a delta of zero.
func (t *Timing) delta(now time.Duration) float64 {
	dt := 0.0
	if t.started && now > t.LastFrame {
		dt = (now - t.LastFrame).Seconds()
	}
	t.started = true
	t.LastFrame = now
	return dt
}
