package flappy

import "testing"

func TestActorIntegrateGravity(t *testing.T) {
	a := Actor{Y: 10, Gravity: 20}

	a.Integrate(0.5)

	// v = 0 + 20*0.5 = 10; y = 10 + 10*0.5 = 15
	if a.VelocityY != 10 {
		t.Errorf("VelocityY = %v, expected 10", a.VelocityY)
	}
	if a.Y != 15 {
		t.Errorf("Y = %v, expected 15", a.Y)
	}
}

func TestActorIntegrateClampsTop(t *testing.T) {
	a := Actor{Y: 1, VelocityY: -100}

	for i := 0; i < 10; i++ {
		a.Integrate(0.1)
		if a.Y < 0 {
			t.Fatalf("Y = %v after step %d, must never be negative", a.Y, i)
		}
	}
	if a.Y != 0 {
		t.Errorf("Y = %v, expected to rest at the top", a.Y)
	}
}

func TestActorIntegrateNoBottomClamp(t *testing.T) {
	a := Actor{Y: 90, VelocityY: 100}
	a.Integrate(1)
	if a.Y != 190 {
		t.Errorf("Y = %v, falling should not be clamped", a.Y)
	}
}

func TestActorIdleIsStatic(t *testing.T) {
	a := Actor{Y: 12}
	for i := 0; i < 100; i++ {
		a.Integrate(1.0 / 60)
	}
	if a.Y != 12 || a.VelocityY != 0 {
		t.Errorf("actor without gravity moved: Y=%v v=%v", a.Y, a.VelocityY)
	}
}

func TestActorApplyImpulse(t *testing.T) {
	a := Actor{Y: 12, VelocityY: 5}

	a.ApplyImpulse(14.4, 48, false)
	if a.VelocityY != -14.4 {
		t.Errorf("VelocityY = %v, expected -14.4", a.VelocityY)
	}
	if a.Gravity != 48 {
		t.Errorf("Gravity = %v, expected 48", a.Gravity)
	}
}

func TestActorApplyImpulseGodMode(t *testing.T) {
	a := Actor{Y: 12, VelocityY: 5}

	a.ApplyImpulse(14.4, 48, true)
	if a.VelocityY != 5 || a.Gravity != 0 {
		t.Errorf("god mode should suppress the impulse, got v=%v g=%v", a.VelocityY, a.Gravity)
	}
}
