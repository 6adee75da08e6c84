package core

import "testing"

func TestFRectEdges(t *testing.T) {
	r := FRect{X: 100, Y: 600, W: 50, H: 100}
	if r.Right() != 150 {
		t.Errorf("Right() = %v, expected 150", r.Right())
	}
	if r.Bottom() != 700 {
		t.Errorf("Bottom() = %v, expected 700", r.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestProjection(t *testing.T) {
	p := Projection{WorldW: 1000, WorldH: 800, ScreenW: 100, ScreenH: 40}

	if got := p.X(600); got != 60 {
		t.Errorf("X(600) = %d, expected 60", got)
	}
	if got := p.Y(700); got != 35 {
		t.Errorf("Y(700) = %d, expected 35", got)
	}

	// Tiny world rects still cover a cell
	r := p.Rect(FRect{X: 0, Y: 0, W: 1, H: 1})
	if r.W != 1 || r.H != 1 {
		t.Errorf("Rect() of tiny rect = %+v, expected 1x1", r)
	}

	r = p.Rect(FRect{X: 100, Y: 600, W: 60, H: 100})
	if r != NewRect(10, 30, 6, 5) {
		t.Errorf("Rect() = %+v, expected {10 30 6 5}", r)
	}

	var zero Projection
	if zero.X(50) != 0 || zero.Y(50) != 0 {
		t.Error("zero projection should map to origin")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
