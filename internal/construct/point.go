package construct

import (
	"github.com/inamate/perspective/internal/geometry"
)

const (
	// PointRadius is the drawn and hit-tested radius of a point.
	PointRadius = 10.0
	// LabelSize is the text size of point labels.
	LabelSize = 10.0

	labelColor   = "black"
	labelOffsetX = 20.0
	labelOffsetY = -20.0
)

// Point is a named, colored dot at a Position, optionally displaced by an
// offset anchor. When an offset is present, dragging moves the offset and
// leaves the base position (and anything else built on it) alone.
type Point struct {
	name     string
	position Position
	offset   *AbsolutePosition
	color    string

	cache tickCache
	last  geometry.Coords
	drawn bool
}

// NewPoint creates a point at position.
func NewPoint(name string, position Position, color string) *Point {
	return &Point{name: name, position: position, color: color}
}

// NewOffsetPoint creates a point at position displaced by offset.
func NewOffsetPoint(name string, position Position, color string, offset *AbsolutePosition) *Point {
	return &Point{name: name, position: position, color: color, offset: offset}
}

func (p *Point) Name() string  { return p.name }
func (p *Point) Color() string { return p.color }

// Base returns the position the point rests on.
func (p *Point) Base() Position { return p.position }

// Offset returns the offset anchor, or nil.
func (p *Point) Offset() *AbsolutePosition { return p.offset }

// Position returns a position that tracks this point.
func (p *Point) Position() *PointPosition {
	return &PointPosition{point: p}
}

func (p *Point) calculate(tick Tick) geometry.Coords {
	c := p.position.Coords(tick)
	if p.offset != nil {
		c = c.Add(p.offset.Coords(tick))
	}
	return c
}

// Coords returns the point's coordinates at tick.
func (p *Point) Coords(tick Tick) geometry.Coords {
	return p.cache.get(tick, p.calculate)
}

// LastDrawn returns the coordinates of the latest Draw and whether the point
// has been drawn at all.
func (p *Point) LastDrawn() (geometry.Coords, bool) {
	return p.last, p.drawn
}

func (p *Point) Draw(s Surface, tick Tick) {
	c := p.Coords(tick)
	p.last, p.drawn = c, true

	s.MoveTo(c.X, c.Y)
	s.SetFill(p.color)
	s.Circle(c.X, c.Y, PointRadius)

	s.SetFill(labelColor)
	s.Text(p.name, c.X+labelOffsetX, c.Y+labelOffsetY, LabelSize)
}

func (p *Point) IsTarget(x, y float64) bool {
	if !p.drawn {
		return false
	}
	return geometry.IsPointInCircle(x, y, p.last.X, p.last.Y, PointRadius)
}

func (p *Point) MoveBy(dx, dy float64) {
	if p.offset != nil {
		p.offset.MoveBy(dx, dy)
		return
	}
	p.position.MoveBy(dx, dy)
}

// PointBuilder creates points that follow another point at a fixed offset.
type PointBuilder struct {
	origin  *Point
	name    string
	color   string
	offsetX *float64
	offsetY *float64
}

// FromPoint starts a point that references origin.
func FromPoint(origin *Point) *PointBuilder {
	return &PointBuilder{origin: origin}
}

func (b *PointBuilder) Named(name string) *PointBuilder {
	b.name = name
	return b
}

func (b *PointBuilder) Color(color string) *PointBuilder {
	b.color = color
	return b
}

func (b *PointBuilder) OffsetX(distance float64) *PointBuilder {
	b.offsetX = &distance
	return b
}

func (b *PointBuilder) OffsetY(distance float64) *PointBuilder {
	b.offsetY = &distance
	return b
}

// Point builds the referencing point. Axes without an offset are pinned, so
// dragging the new point only slides it along the axes that were offset.
func (b *PointBuilder) Point() *Point {
	return NewOffsetPoint(b.name, b.origin.Position(), b.color, NewAxes(b.offsetX, b.offsetY))
}
