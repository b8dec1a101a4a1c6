// Package interaction turns pointer events into hit-tests and drag deltas
// against the construct graph.
package interaction

import (
	"github.com/inamate/perspective/internal/construct"
)

// Targeter finds the construct under a pointer location.
type Targeter interface {
	TargetAt(x, y float64) construct.Construct
}

// Dragger tracks the pointer and the construct grabbed at press time. Each
// Move forwards exactly one MoveBy, so the graph always reflects the latest
// applied delta when the next frame is drawn.
type Dragger struct {
	targets  Targeter
	selected construct.Construct

	// previous pointer location, the origin of the next delta
	lastX, lastY float64
	// latest pointer location, shown in the status text
	x, y float64
}

func NewDragger(targets Targeter) *Dragger {
	return &Dragger{targets: targets}
}

// Press selects the construct under (x, y), if any.
func (d *Dragger) Press(x, y float64) {
	d.lastX, d.lastY = x, y
	d.selected = d.targets.TargetAt(x, y)
}

// Move records the pointer and drags the selection by the distance moved
// since the previous event.
func (d *Dragger) Move(x, y float64) {
	d.x, d.y = x, y
	dx, dy := x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	if d.selected != nil {
		d.selected.MoveBy(dx, dy)
	}
}

// Release drops the selection and resets the delta origin.
func (d *Dragger) Release() {
	d.selected = nil
	d.lastX, d.lastY = 0, 0
}

// Leave drops the selection when the pointer leaves the surface.
func (d *Dragger) Leave() {
	d.selected = nil
}

// Pointer returns the latest pointer location seen by Move.
func (d *Dragger) Pointer() (x, y float64) {
	return d.x, d.y
}

// Selected returns the construct being dragged, or nil.
func (d *Dragger) Selected() construct.Construct {
	return d.selected
}
