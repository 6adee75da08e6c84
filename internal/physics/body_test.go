package physics

import (
	"testing"
)

const (
	testGravity = 0.5
	testFloor   = 700.0
)

func TestStepAccumulatesGravity(t *testing.T) {
	b := NewBody(100, 100, 60, 100, 5, testGravity)

	for n := 1; n <= 10; n++ {
		b.Step(testFloor)
		want := testGravity * float64(n)
		if b.VelY != want {
			t.Fatalf("after %d steps VelY = %v, expected %v", n, b.VelY, want)
		}
		if b.Contact() != Airborne {
			t.Fatalf("after %d steps contact = %v, expected airborne", n, b.Contact())
		}
	}

	// y = 100 + g*(1+2+...+10)
	wantY := 100 + testGravity*55
	if b.Y != wantY {
		t.Errorf("Y = %v, expected %v", b.Y, wantY)
	}
}

func TestStepClampsToFloor(t *testing.T) {
	b := NewBody(100, 100, 60, 100, 5, testGravity)

	landed := false
	for i := 0; i < 1000; i++ {
		if b.Step(testFloor) {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("body never reported a contact change")
	}

	if b.VelY != 0 {
		t.Errorf("VelY after landing = %v, expected 0", b.VelY)
	}
	if b.Y != testFloor-b.H {
		t.Errorf("Y after landing = %v, expected %v", b.Y, testFloor-b.H)
	}
	if b.Contact() != Grounded {
		t.Errorf("contact = %v, expected grounded", b.Contact())
	}

	// Stays pinned while no jump occurs
	for i := 0; i < 50; i++ {
		if b.Step(testFloor) {
			t.Fatalf("step %d reported a contact change while resting", i)
		}
		if b.VelY != 0 || b.Y != testFloor-b.H {
			t.Fatalf("step %d: body drifted to Y=%v VelY=%v", i, b.Y, b.VelY)
		}
	}
}

func TestStepNeverPassesFloor(t *testing.T) {
	// Large gravity overshoots the floor in a single step
	b := NewBody(0, 0, 10, 10, 0, 1000)
	b.Step(testFloor)

	if b.Y+b.H > testFloor {
		t.Errorf("bottom edge %v below floor %v", b.Y+b.H, testFloor)
	}
	if !b.OnGround(testFloor) {
		t.Error("body should be on ground after clamp")
	}
}

func TestJumpOverridesVelocity(t *testing.T) {
	tests := []struct {
		name  string
		velY  float64
		power float64
	}{
		{"from rest", 0, 12},
		{"while falling", 7.5, 12},
		{"mid-air re-trigger while rising", -4, 12},
		{"zero power", 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(0, 0, 10, 10, 5, testGravity)
			b.VelY = tc.velY
			b.Jump(tc.power)
			if b.VelY != -tc.power {
				t.Errorf("VelY = %v, expected %v", b.VelY, -tc.power)
			}
		})
	}
}

func TestJumpTakesOff(t *testing.T) {
	b := NewBody(0, testFloor-10, 10, 10, 5, testGravity)
	b.Step(testFloor)
	if b.Contact() != Grounded {
		t.Fatalf("expected grounded before jump, got %v", b.Contact())
	}

	b.Jump(12)
	if !b.Step(testFloor) {
		t.Error("take-off should report a contact change")
	}
	if b.Contact() != Airborne {
		t.Errorf("contact = %v, expected airborne", b.Contact())
	}
	if b.VelY != -12+testGravity {
		t.Errorf("VelY = %v, expected %v", b.VelY, -12+testGravity)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		wantX       float64
	}{
		{"none", false, false, 100},
		{"left", true, false, 95},
		{"right", false, true, 105},
		{"both cancel", true, true, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(100, 0, 10, 10, 5, testGravity)
			b.Move(tc.left, tc.right)
			if b.X != tc.wantX {
				t.Errorf("X = %v, expected %v", b.X, tc.wantX)
			}
		})
	}
}

func TestOnGround(t *testing.T) {
	b := NewBody(0, 689, 10, 10, 5, testGravity)
	if b.OnGround(testFloor) {
		t.Error("bottom at 699 should not be on ground")
	}
	b.Y = 690
	if !b.OnGround(testFloor) {
		t.Error("bottom exactly at floor should be on ground")
	}
}

func TestRect(t *testing.T) {
	b := NewBody(1, 2, 3, 4, 0, 0)
	r := b.Rect()
	if r.X != 1 || r.Y != 2 || r.W != 3 || r.H != 4 {
		t.Errorf("Rect() = %+v", r)
	}
}
