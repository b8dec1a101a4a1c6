package construct

import (
	"github.com/inamate/perspective/internal/geometry"
)

// Line is a segment between two points. The endpoints are shared with the
// rest of the diagram; a line references them, it does not own them.
type Line struct {
	name       string
	start, end *Point
	color      string

	lastStart, lastEnd geometry.Coords
	drawn              bool
}

func NewLine(name string, start, end *Point, color string) *Line {
	return &Line{name: name, start: start, end: end, color: color}
}

func (l *Line) Name() string  { return l.name }
func (l *Line) Color() string { return l.color }
func (l *Line) Start() *Point { return l.start }
func (l *Line) End() *Point   { return l.end }

// Segment returns the line's endpoints at tick.
func (l *Line) Segment(tick Tick) geometry.Segment {
	return geometry.Segment{Start: l.start.Coords(tick), End: l.end.Coords(tick)}
}

// LastDrawn returns the endpoints of the latest Draw and whether the line has
// been drawn at all.
func (l *Line) LastDrawn() (geometry.Segment, bool) {
	return geometry.Segment{Start: l.lastStart, End: l.lastEnd}, l.drawn
}

func (l *Line) Draw(s Surface, tick Tick) {
	seg := l.Segment(tick)
	l.lastStart, l.lastEnd, l.drawn = seg.Start, seg.End, true

	s.MoveTo(seg.Start.X, seg.Start.Y)
	s.SetStroke(l.color)
	s.Segment(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
}

func (l *Line) IsTarget(x, y float64) bool {
	if !l.drawn {
		return false
	}
	return geometry.IsPointOnLine(x, y,
		l.lastStart.X, l.lastStart.Y,
		l.lastEnd.X, l.lastEnd.Y,
		geometry.DefaultLineTolerance)
}

// MoveBy translates both endpoints by the same delta.
func (l *Line) MoveBy(dx, dy float64) {
	l.start.MoveBy(dx, dy)
	l.end.MoveBy(dx, dy)
}

// IntersectionTo returns the position where l crosses other. The lines are
// read when the position is evaluated, so it is safe to call before either
// line has usable endpoints.
func (l *Line) IntersectionTo(other *Line) *IntersectionPosition {
	return &IntersectionPosition{a: l, b: other}
}
