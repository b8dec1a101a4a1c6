// Package geometry holds the pure 2-D functions the diagram is built on:
// circle and segment hit-tests and segment-segment intersection.
package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// DefaultLineTolerance is the distance within which a point counts as lying
// on a segment.
const DefaultLineTolerance = 5.0

// Coords is an immutable 2-D coordinate.
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NoIntersection is the coordinate reported by positions whose lines do not
// cross. It renders at a fixed point just off the diagram.
var NoIntersection = Coords{X: -1, Y: -1}

// Add returns c translated by o.
func (c Coords) Add(o Coords) Coords {
	return Coords{X: c.X + o.X, Y: c.Y + o.Y}
}

// Segment is a finite line segment.
type Segment struct {
	Start Coords `json:"start"`
	End   Coords `json:"end"`
}

// IsPointInCircle reports whether (px, py) lies inside or on the circle
// centered at (cx, cy) with radius r.
func IsPointInCircle(px, py, cx, cy, r float64) bool {
	return geom.Coord{X: px, Y: py}.DistanceFrom(geom.Coord{X: cx, Y: cy}) <= r
}

// IsPointOnLine reports whether (px, py) is within tolerance of the segment
// (x1, y1)-(x2, y2). The nearest point is clamped to the segment, so points
// beyond either end are measured against that end.
func IsPointOnLine(px, py, x1, y1, x2, y2, tolerance float64) bool {
	p := geom.Coord{X: px, Y: py}
	a := geom.Coord{X: x1, Y: y1}
	ab := geom.Coord{X: x2, Y: y2}.Minus(a)

	lengthSquared := ab.X*ab.X + ab.Y*ab.Y
	if lengthSquared == 0 {
		return p.DistanceFrom(a) <= tolerance
	}

	ap := p.Minus(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lengthSquared
	t = math.Max(0, math.Min(1, t))

	closest := a.Plus(ab.Times(t))
	return p.DistanceFrom(closest) <= tolerance
}

// Intersect solves for the crossing point of two segments. It reports false
// when the segments are parallel or coincident, or when the crossing of the
// infinite lines does not lie on both finite segments. The result is floored
// to whole units.
func Intersect(a, b Segment) (Coords, bool) {
	x1, y1, x2, y2 := a.Start.X, a.Start.Y, a.End.X, a.End.Y
	x3, y3, x4, y4 := b.Start.X, b.Start.Y, b.End.X, b.End.Y

	denominator := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denominator == 0 {
		return Coords{}, false
	}

	d1 := x1*y2 - y1*x2
	d2 := x3*y4 - y3*x4
	x := (d1*(x3-x4) - (x1-x2)*d2) / denominator
	y := (d1*(y3-y4) - (y1-y2)*d2) / denominator

	if !IsPointOnLine(x, y, x1, y1, x2, y2, DefaultLineTolerance) ||
		!IsPointOnLine(x, y, x3, y3, x4, y4, DefaultLineTolerance) {
		return Coords{}, false
	}

	return Coords{X: math.Floor(x), Y: math.Floor(y)}, true
}
