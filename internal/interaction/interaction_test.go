package interaction

import (
	"testing"

	"github.com/inamate/perspective/internal/construct"
	"github.com/inamate/perspective/internal/geometry"
)

// list is a first-match Targeter over constructs in order.
type list []construct.Construct

func (l list) TargetAt(x, y float64) construct.Construct {
	for _, c := range l {
		if c.IsTarget(x, y) {
			return c
		}
	}
	return nil
}

type nopSurface struct{}

func (nopSurface) SetFill(string)                         {}
func (nopSurface) SetStroke(string)                       {}
func (nopSurface) MoveTo(float64, float64)                {}
func (nopSurface) Circle(float64, float64, float64)       {}
func (nopSurface) Segment(_, _, _, _ float64)             {}
func (nopSurface) Text(string, float64, float64, float64) {}

func TestDragger(t *testing.T) {
	p := construct.NewPoint("p", construct.NewAbsolute(100, 100), "red")
	p.Draw(nopSurface{}, 1)
	d := NewDragger(list{p})

	t.Run("press on target then move drags it", func(t *testing.T) {
		d.Press(102, 98)
		if d.Selected() != p {
			t.Fatal("expected the point to be selected")
		}
		d.Move(112, 98)
		d.Move(112, 108)
		if got := p.Coords(2); got != (geometry.Coords{X: 110, Y: 110}) {
			t.Errorf("expected (110,110), got %v", got)
		}
		if x, y := d.Pointer(); x != 112 || y != 108 {
			t.Errorf("expected pointer (112,108), got (%v,%v)", x, y)
		}
	})

	t.Run("release stops the drag", func(t *testing.T) {
		d.Release()
		if d.Selected() != nil {
			t.Error("expected no selection after release")
		}
		d.Move(300, 300)
		if got := p.Coords(3); got != (geometry.Coords{X: 110, Y: 110}) {
			t.Errorf("expected point to stay at (110,110), got %v", got)
		}
	})

	t.Run("press on empty space selects nothing", func(t *testing.T) {
		d.Press(500, 500)
		if d.Selected() != nil {
			t.Error("expected no selection")
		}
	})

	t.Run("leave stops the drag", func(t *testing.T) {
		p.Draw(nopSurface{}, 4)
		d.Press(110, 110)
		d.Leave()
		d.Move(200, 200)
		if got := p.Coords(5); got != (geometry.Coords{X: 110, Y: 110}) {
			t.Errorf("expected point to stay at (110,110), got %v", got)
		}
	})
}

func TestDraggerFirstMatchWins(t *testing.T) {
	a := construct.NewPoint("a", construct.NewAbsolute(50, 50), "")
	b := construct.NewPoint("b", construct.NewAbsolute(52, 50), "")
	a.Draw(nopSurface{}, 1)
	b.Draw(nopSurface{}, 1)

	d := NewDragger(list{a, b})
	d.Press(51, 50)
	if d.Selected() != a {
		t.Errorf("expected first constructed point, got %v", d.Selected())
	}
}
