package engine

import (
	"github.com/inamate/perspective/internal/construct"
)

// Scene is the ordered list of top-level constructs shared by drawing and
// hit-testing. Constructs are drawn and hit-tested in the order they were
// added.
type Scene struct {
	Name   string
	Width  int
	Height int

	constructs []construct.Construct
	byName     map[string]construct.Construct
}

// NewScene creates an empty scene of the given size.
func NewScene(name string, width, height int) *Scene {
	return &Scene{
		Name:   name,
		Width:  width,
		Height: height,
		byName: make(map[string]construct.Construct),
	}
}

// Add appends top-level constructs.
func (s *Scene) Add(cs ...construct.Construct) {
	for _, c := range cs {
		s.constructs = append(s.constructs, c)
		construct.Walk(c, func(m construct.Construct) {
			if _, ok := s.byName[m.Name()]; !ok && m.Name() != "" {
				s.byName[m.Name()] = m
			}
		})
	}
}

// Constructs returns the top-level constructs in draw order.
func (s *Scene) Constructs() []construct.Construct {
	return s.constructs
}

// Find returns the first construct, at any depth, with the given name.
func (s *Scene) Find(name string) (construct.Construct, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Draw paints every construct at tick.
func (s *Scene) Draw(surface construct.Surface, tick construct.Tick) {
	for _, c := range s.constructs {
		c.Draw(surface, tick)
	}
}

// TargetAt returns the first top-level construct hit at (x, y), or nil.
func (s *Scene) TargetAt(x, y float64) construct.Construct {
	for _, c := range s.constructs {
		if c.IsTarget(x, y) {
			return c
		}
	}
	return nil
}

// Bounds returns the scene rectangle.
func (s *Scene) Bounds() Rect {
	return Rect{Width: float64(s.Width), Height: float64(s.Height)}
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains checks if a point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}
