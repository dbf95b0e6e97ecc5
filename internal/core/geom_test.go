package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single pixel overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"probe under feet", NewRect(40, 240, 8, 8), NewRect(0, 240, 48, 48), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectAnchors(t *testing.T) {
	r := RectFromMidBottom(120, 288, 34, 46)
	if r.X != 103 || r.Y != 242 {
		t.Errorf("RectFromMidBottom = %+v, expected top-left (103, 242)", r)
	}
	if mb := r.MidBottom(); mb != (Point{X: 120, Y: 288}) {
		t.Errorf("MidBottom() = %+v", mb)
	}

	c := RectFromCenter(24, 24, 20, 20)
	if c.X != 14 || c.Y != 14 {
		t.Errorf("RectFromCenter = %+v", c)
	}
	if cx, cy := c.Center(); cx != 24 || cy != 24 {
		t.Errorf("Center() = (%d, %d)", cx, cy)
	}

	moved := r.Move(-60, 5)
	if moved.X != 43 || moved.Y != 247 || r.X != 103 {
		t.Errorf("Move should return a shifted copy, got %+v from %+v", moved, r)
	}

	if got := r.WithMidBottom(Point{X: 0, Y: 0}); got.Bottom() != 0 || got.CenterX() != 0 {
		t.Errorf("WithMidBottom = %+v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{-0.5, 0},
		{-1.5, -2},
		{0.8, 1},
		{1.2, 1},
		{-14.2, -14},
	}

	for _, tc := range tests {
		if got := Round(tc.in); got != tc.want {
			t.Errorf("Round(%v) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 12, 0},
		{-1, 12, -1},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestClampHelpers(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of range")
	}
	if ClampF(15.5, 0, 10) != 10 {
		t.Error("ClampF should cap at max")
	}
	if Min(5, 10) != 5 || Max(5, 10) != 10 || Abs(-5) != 5 {
		t.Error("Min/Max/Abs")
	}
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(9) != 1 {
		t.Error("Sign")
	}
}
