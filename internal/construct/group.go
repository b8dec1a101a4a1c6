package construct

// Group fans draw, hit-test and move out to its members in order. It has no
// geometry of its own.
type Group struct {
	name    string
	members []Construct
}

func NewGroup(name string, members ...Construct) *Group {
	return &Group{name: name, members: members}
}

func (g *Group) Name() string { return g.name }

// Members returns the members in construction order.
func (g *Group) Members() []Construct { return g.members }

func (g *Group) Draw(s Surface, tick Tick) {
	for _, m := range g.members {
		m.Draw(s, tick)
	}
}

func (g *Group) IsTarget(x, y float64) bool {
	for _, m := range g.members {
		if m.IsTarget(x, y) {
			return true
		}
	}
	return false
}

// MoveBy moves every member independently. A point shared by two members is
// moved twice.
func (g *Group) MoveBy(dx, dy float64) {
	for _, m := range g.members {
		m.MoveBy(dx, dy)
	}
}
