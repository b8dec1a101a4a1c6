package geometry

import (
	"math"
	"testing"
)

func TestIsPointInCircle(t *testing.T) {
	tests := []struct {
		name           string
		px, py, cx, cy float64
		r              float64
		want           bool
	}{
		{"center", 5, 5, 5, 5, 10, true},
		{"inside", 8, 9, 5, 5, 10, true},
		{"boundary", 15, 5, 5, 5, 10, true},
		{"boundary diagonal", 8, 9, 5, 5, 5, true},
		{"just outside", 15.001, 5, 5, 5, 10, false},
		{"far away", 100, 100, 5, 5, 10, false},
		{"zero radius on center", 1, 1, 1, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPointInCircle(tt.px, tt.py, tt.cx, tt.cy, tt.r); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsPointOnLine(t *testing.T) {
	t.Run("points along the segment with zero tolerance", func(t *testing.T) {
		for _, tp := range []float64{0, 0.25, 0.5, 0.75, 1} {
			x := 0 + tp*40
			y := 10 + tp*0
			if !IsPointOnLine(x, y, 0, 10, 40, 10, 0) {
				t.Errorf("expected (%v,%v) on the horizontal segment", x, y)
			}
			x, y = 3, 2+tp*8
			if !IsPointOnLine(x, y, 3, 2, 3, 10, 0) {
				t.Errorf("expected (%v,%v) on the vertical segment", x, y)
			}
		}
		if !IsPointOnLine(5, 5, 0, 0, 10, 10, 0) {
			t.Error("expected midpoint of the diagonal on the segment")
		}
	})

	t.Run("perpendicular offset", func(t *testing.T) {
		if !IsPointOnLine(20, 15, 0, 10, 40, 10, DefaultLineTolerance) {
			t.Error("expected offset equal to tolerance to hit")
		}
		if IsPointOnLine(20, 15.5, 0, 10, 40, 10, DefaultLineTolerance) {
			t.Error("expected offset beyond tolerance to miss")
		}
	})

	t.Run("projection is clamped to the segment", func(t *testing.T) {
		// On the infinite line but past the end.
		if IsPointOnLine(50, 10, 0, 10, 40, 10, DefaultLineTolerance) {
			t.Error("expected point past the end to miss")
		}
		if !IsPointOnLine(44, 10, 0, 10, 40, 10, DefaultLineTolerance) {
			t.Error("expected point within tolerance of the end to hit")
		}
	})

	t.Run("zero length segment", func(t *testing.T) {
		if !IsPointOnLine(3, 4, 0, 0, 0, 0, 5) {
			t.Error("expected point at distance 5 to hit")
		}
		if IsPointOnLine(3, 4.1, 0, 0, 0, 0, 5) {
			t.Error("expected point beyond distance 5 to miss")
		}
	})
}

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: Coords{X: x1, Y: y1}, End: Coords{X: x2, Y: y2}}
}

func TestIntersect(t *testing.T) {
	t.Run("crossing segments", func(t *testing.T) {
		got, ok := Intersect(seg(0, 0, 10, 0), seg(5, -5, 5, 5))
		if !ok || got != (Coords{X: 5, Y: 0}) {
			t.Errorf("expected (5,0), got %v ok=%v", got, ok)
		}
	})

	t.Run("result is floored", func(t *testing.T) {
		// Crossing at (2.5, 2.5).
		got, ok := Intersect(seg(0, 0, 5, 5), seg(0, 5, 5, 0))
		if !ok || got != (Coords{X: 2, Y: 2}) {
			t.Errorf("expected (2,2), got %v ok=%v", got, ok)
		}
	})

	t.Run("negative results floor downward", func(t *testing.T) {
		got, ok := Intersect(seg(-10, -0.5, 10, -0.5), seg(-0.5, -10, -0.5, 10))
		if !ok || got != (Coords{X: -1, Y: -1}) {
			t.Errorf("expected (-1,-1), got %v ok=%v", got, ok)
		}
	})

	t.Run("parallel offset", func(t *testing.T) {
		if got, ok := Intersect(seg(0, 0, 10, 0), seg(0, 3, 10, 3)); ok {
			t.Errorf("expected no intersection, got %v", got)
		}
	})

	t.Run("identical", func(t *testing.T) {
		if got, ok := Intersect(seg(0, 0, 10, 10), seg(0, 0, 10, 10)); ok {
			t.Errorf("expected no intersection, got %v", got)
		}
	})

	t.Run("outside the first segment", func(t *testing.T) {
		if got, ok := Intersect(seg(0, 0, 10, 0), seg(50, -5, 50, 5)); ok {
			t.Errorf("expected no intersection, got %v", got)
		}
	})

	t.Run("outside the second segment", func(t *testing.T) {
		if got, ok := Intersect(seg(0, 0, 100, 0), seg(50, 20, 50, 40)); ok {
			t.Errorf("expected no intersection, got %v", got)
		}
	})
}

func TestIntersectSymmetric(t *testing.T) {
	pairs := [][2]Segment{
		{seg(0, 0, 10, 0), seg(5, -5, 5, 5)},
		{seg(0, 0, 5, 5), seg(0, 5, 5, 0)},
		{seg(20, 100, 658, 851), seg(620, 100, 620, 900)},
		{seg(-3.3, 7.1, 44.9, -12.6), seg(1.7, -20, 13.2, 40.4)},
	}

	for _, p := range pairs {
		ab, okAB := Intersect(p[0], p[1])
		ba, okBA := Intersect(p[1], p[0])
		if !okAB || !okBA {
			t.Fatalf("expected %v and %v to cross", p[0], p[1])
		}
		if ab != ba {
			t.Errorf("expected symmetric results, got %v and %v", ab, ba)
		}
		if ab.X != math.Floor(ab.X) || ab.Y != math.Floor(ab.Y) {
			t.Errorf("expected whole coordinates, got %v", ab)
		}
	}
}
