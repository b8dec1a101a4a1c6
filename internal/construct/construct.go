// Package construct implements the drawable diagram graph: positions that
// produce coordinates per tick, and the Point, Line and Group constructs built
// on them.
//
// Coordinates are evaluated lazily. A derived position reads the live state
// of the constructs it references each time a new tick is evaluated, and
// caches the result for the rest of that tick. Only AbsolutePosition holds
// mutable state, so every drag ends up moving one or more absolute anchors.
package construct

// Tick identifies one evaluation pass, normally one animation frame. Cached
// coordinates are reused only while the tick is unchanged.
type Tick uint64

// Surface is the paint target constructs draw onto.
type Surface interface {
	SetFill(color string)
	SetStroke(color string)
	MoveTo(x, y float64)
	// Circle fills a circle with the current fill color.
	Circle(x, y, r float64)
	// Segment strokes a line with the current stroke color.
	Segment(x1, y1, x2, y2 float64)
	// Text draws s with its baseline at (x, y) in the current fill color.
	Text(s string, x, y, size float64)
}

// Construct is a drawable, hit-testable, movable diagram entity.
type Construct interface {
	Name() string
	// Draw paints the construct as of tick and remembers where it was drawn.
	Draw(s Surface, tick Tick)
	// IsTarget reports whether (x, y) hits the construct as last drawn.
	IsTarget(x, y float64) bool
	MoveBy(dx, dy float64)
}

// Walk calls fn for c and, for groups, every member depth first in order.
func Walk(c Construct, fn func(Construct)) {
	fn(c)
	if g, ok := c.(*Group); ok {
		for _, m := range g.members {
			Walk(m, fn)
		}
	}
}
