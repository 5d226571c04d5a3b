package flappy

import (
	"testing"
)

// seq returns a RandFunc cycling through values.
func seq(values ...float64) RandFunc {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestSpawnPairGeometry(t *testing.T) {
	const (
		paneH     = 80.0
		paneW     = 10.0
		openSpace = 20.0
		baseY     = 0.0
	)

	for _, r := range []float64{0, 0.25, 0.5, 0.999} {
		upper, lower := SpawnPair(56, baseY, paneW, paneH, openSpace, seq(r))

		if upper.X != 56 || lower.X != 56 {
			t.Errorf("r=%v: pair should share x=56, got %v and %v", r, upper.X, lower.X)
		}
		if lower.Y != upper.Y+paneH+openSpace {
			t.Errorf("r=%v: lower.Y = %v, expected %v", r, lower.Y, upper.Y+paneH+openSpace)
		}
		if upper.Y > baseY-paneH/4 {
			t.Errorf("r=%v: upper.Y = %v should not exceed %v", r, upper.Y, baseY-paneH/4)
		}
		if upper.Y < baseY-paneH/4-paneH/2 {
			t.Errorf("r=%v: upper.Y = %v below offset range", r, upper.Y)
		}
		if upper.Variant != VariantUpper || lower.Variant != VariantLower {
			t.Errorf("r=%v: variants = %v/%v", r, upper.Variant, lower.Variant)
		}
		if upper.Passed || lower.Passed {
			t.Errorf("r=%v: new pipes must not be passed", r)
		}
		if upper.W != paneW || upper.H != paneH || lower.W != paneW || lower.H != paneH {
			t.Errorf("r=%v: pipe sizes wrong: %+v %+v", r, upper, lower)
		}
	}
}

func TestLaneSpawnRequiresRunning(t *testing.T) {
	tests := []struct {
		name  string
		state GameState
		want  bool
	}{
		{"idle", GameState{}, false},
		{"running", GameState{Running: true}, true},
		{"terminal", GameState{Running: true, Terminal: true}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var l Lane
			got := l.Spawn(tc.state, 50, 0, 5, 40, 10, seq(0.5))
			if got != tc.want {
				t.Errorf("Spawn() = %v, expected %v", got, tc.want)
			}
			wantLen := 0
			if tc.want {
				wantLen = 2
			}
			if l.Len() != wantLen {
				t.Errorf("Len() = %d, expected %d", l.Len(), wantLen)
			}
		})
	}
}

func TestLaneAdvanceAndPrune(t *testing.T) {
	var l Lane
	running := GameState{Running: true}

	l.Spawn(running, 10, 0, 4, 40, 10, seq(0.1))
	l.Advance(5)
	l.Spawn(running, 10, 0, 4, 40, 10, seq(0.9))

	items := l.Items()
	if items[0].X != 5 || items[1].X != 5 || items[2].X != 10 || items[3].X != 10 {
		t.Fatalf("unexpected x positions: %v %v %v %v", items[0].X, items[1].X, items[2].X, items[3].X)
	}

	// First pair: trailing edge at 5+4=9, still on screen
	if n := l.Prune(0); n != 0 {
		t.Errorf("Prune() removed %d, expected 0", n)
	}

	l.Advance(9.5) // first pair trailing edge at -0.5, second at 4.5
	if n := l.Prune(0); n != 2 {
		t.Errorf("Prune() removed %d, expected 2", n)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", l.Len())
	}
	if got := l.Items()[0].X; got != 0.5 {
		t.Errorf("front X = %v, expected 0.5", got)
	}

	// Trailing edge exactly at the origin is still visible
	l.Advance(4.5)
	if n := l.Prune(0); n != 0 {
		t.Errorf("Prune() removed %d at the boundary, expected 0", n)
	}

	l.Reset()
	if l.Len() != 0 {
		t.Errorf("Reset() left %d pipes", l.Len())
	}
}

func TestLaneItemsIsACopy(t *testing.T) {
	var l Lane
	l.Spawn(GameState{Running: true}, 10, 0, 4, 40, 10, seq(0.5))

	items := l.Items()
	items[0].X = 999

	if l.Items()[0].X == 999 {
		t.Error("Items() should return a copy")
	}
}

func TestCheckPassageOnce(t *testing.T) {
	o := Obstacle{X: 10, W: 5}
	actor := Actor{X: 14}

	if CheckPassage(actor, &o) {
		t.Error("actor inside the pipe should not pass")
	}

	actor.X = 15 // equal to the trailing edge
	if CheckPassage(actor, &o) {
		t.Error("actor at the trailing edge should not pass yet")
	}

	actor.X = 15.01
	if !CheckPassage(actor, &o) {
		t.Error("actor beyond the trailing edge should pass")
	}
	if !o.Passed {
		t.Error("Passed should be set")
	}

	if CheckPassage(actor, &o) {
		t.Error("passage must only be reported once")
	}
}

func TestCollidesGodMode(t *testing.T) {
	actor := Actor{X: 10, Y: 10, W: 5, H: 5}
	hit := Obstacle{X: 12, Y: 8, W: 4, H: 20}
	miss := Obstacle{X: 20, Y: 8, W: 4, H: 20}

	if !Collides(actor, hit, false) {
		t.Error("overlapping pipe should collide")
	}
	if Collides(actor, miss, false) {
		t.Error("distant pipe should not collide")
	}
	if Collides(actor, hit, true) {
		t.Error("god mode should never collide")
	}
}

func TestLaneScale(t *testing.T) {
	var l Lane
	l.Spawn(GameState{Running: true}, 10, 0, 4, 40, 10, seq(0))
	l.Scale(2)

	upper := l.Items()[0]
	if upper.X != 20 || upper.W != 8 || upper.H != 80 || upper.Y != -20 {
		t.Errorf("scaled pipe = %+v", upper)
	}
}
