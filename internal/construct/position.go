package construct

import (
	"github.com/inamate/perspective/internal/geometry"
)

// Position produces the coordinates backing a Point.
//
// The set of implementations is closed: AbsolutePosition, RelativePosition,
// PointPosition and IntersectionPosition.
type Position interface {
	Coords(tick Tick) geometry.Coords
	MoveBy(dx, dy float64)
	isPosition()
}

// tickCache is a single-slot memo keyed by exact tick equality.
type tickCache struct {
	valid  bool
	tick   Tick
	coords geometry.Coords
}

func (c *tickCache) get(tick Tick, compute func(Tick) geometry.Coords) geometry.Coords {
	if !c.valid || c.tick != tick {
		c.coords = compute(tick)
		c.tick = tick
		c.valid = true
	}
	return c.coords
}

// AbsolutePosition is an anchor: two independently optional coordinates that
// dragging moves directly. An absent axis reads as 0 and is pinned, so
// MoveBy never displaces it.
type AbsolutePosition struct {
	x, y *float64
}

// NewAbsolute returns an anchor with both axes set.
func NewAbsolute(x, y float64) *AbsolutePosition {
	return &AbsolutePosition{x: &x, y: &y}
}

// NewAxes returns an anchor whose nil axes are pinned at 0.
func NewAxes(x, y *float64) *AbsolutePosition {
	p := &AbsolutePosition{}
	if x != nil {
		v := *x
		p.x = &v
	}
	if y != nil {
		v := *y
		p.y = &v
	}
	return p
}

func (p *AbsolutePosition) isPosition() {}

func (p *AbsolutePosition) Coords(Tick) geometry.Coords {
	var c geometry.Coords
	if p.x != nil {
		c.X = *p.x
	}
	if p.y != nil {
		c.Y = *p.y
	}
	return c
}

func (p *AbsolutePosition) MoveBy(dx, dy float64) {
	if p.x != nil {
		*p.x += dx
	}
	if p.y != nil {
		*p.y += dy
	}
}

// Pinned reports which axes are absent and therefore immovable.
func (p *AbsolutePosition) Pinned() (x, y bool) {
	return p.x == nil, p.y == nil
}

// RelativePosition derives its coordinates from a pure function of the tick.
// The function runs at most once per distinct tick.
type RelativePosition struct {
	calculate func(Tick) geometry.Coords
	cache     tickCache
}

func NewRelative(calculate func(Tick) geometry.Coords) *RelativePosition {
	return &RelativePosition{calculate: calculate}
}

func (p *RelativePosition) isPosition() {}

func (p *RelativePosition) Coords(tick Tick) geometry.Coords {
	return p.cache.get(tick, p.calculate)
}

// MoveBy is a no-op: derived positions move only when their sources do.
func (p *RelativePosition) MoveBy(float64, float64) {}

// PointPosition mirrors another point's current coordinates.
type PointPosition struct {
	point *Point
	cache tickCache
}

func (p *PointPosition) isPosition() {}

func (p *PointPosition) Coords(tick Tick) geometry.Coords {
	return p.cache.get(tick, p.point.Coords)
}

func (p *PointPosition) MoveBy(float64, float64) {}

// Point returns the referenced point.
func (p *PointPosition) Point() *Point {
	return p.point
}

// IntersectionPosition is the crossing point of two lines, recomputed from
// their live endpoints each tick. When the segments do not cross, Coords
// reports geometry.NoIntersection; Resolve exposes the outcome explicitly.
type IntersectionPosition struct {
	a, b     *Line
	cache    tickCache
	resolved bool
}

func (p *IntersectionPosition) isPosition() {}

func (p *IntersectionPosition) calculate(tick Tick) geometry.Coords {
	coords, ok := geometry.LineIntersection(p.a.Segment(tick), p.b.Segment(tick))
	p.resolved = ok
	if !ok {
		return geometry.NoIntersection
	}
	return coords
}

func (p *IntersectionPosition) Coords(tick Tick) geometry.Coords {
	return p.cache.get(tick, p.calculate)
}

// Resolve returns the intersection at tick and whether the lines cross.
func (p *IntersectionPosition) Resolve(tick Tick) (geometry.Coords, bool) {
	coords := p.Coords(tick)
	return coords, p.resolved
}

func (p *IntersectionPosition) MoveBy(float64, float64) {}

// Lines returns the two intersecting lines.
func (p *IntersectionPosition) Lines() (*Line, *Line) {
	return p.a, p.b
}
