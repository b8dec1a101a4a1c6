package document

import (
	"errors"
	"fmt"

	"github.com/inamate/perspective/internal/construct"
	"github.com/inamate/perspective/internal/engine"
)

const (
	DefaultWidth  = 1600
	DefaultHeight = 1000
	DefaultColor  = "black"
)

var (
	ErrUnknownFormat    = errors.New("unknown document format")
	ErrUnknownReference = errors.New("unknown reference")
	ErrMissingID        = errors.New("missing id")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrCycle            = errors.New("reference cycle")
	ErrInvalidPoint     = errors.New("invalid point definition")
)

// builder resolves definitions on demand so they may appear in any order.
type builder struct {
	points map[string]PointDef
	lines  map[string]LineDef
	groups map[string]GroupDef

	builtPoints map[string]*construct.Point
	builtLines  map[string]*construct.Line
	builtGroups map[string]*construct.Group

	// IDs on the current resolution path
	visiting map[string]bool
}

// Build compiles a document into a scene. Only entries listed in Draw are
// top-level; other definitions exist only as dependencies.
func Build(doc *Document) (*engine.Scene, error) {
	b := &builder{
		points:      make(map[string]PointDef),
		lines:       make(map[string]LineDef),
		groups:      make(map[string]GroupDef),
		builtPoints: make(map[string]*construct.Point),
		builtLines:  make(map[string]*construct.Line),
		builtGroups: make(map[string]*construct.Group),
		visiting:    make(map[string]bool),
	}
	if err := b.index(doc); err != nil {
		return nil, err
	}

	width, height := doc.Width, doc.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	scene := engine.NewScene(doc.Name, width, height)

	for _, id := range doc.Draw {
		c, err := b.construct(id)
		if err != nil {
			return nil, fmt.Errorf("draw %q: %w", id, err)
		}
		scene.Add(c)
	}

	// Undrawn definitions still have to resolve.
	for _, p := range doc.Points {
		if _, err := b.point(p.ID); err != nil {
			return nil, err
		}
	}
	for _, l := range doc.Lines {
		if _, err := b.line(l.ID); err != nil {
			return nil, err
		}
	}
	for _, g := range doc.Groups {
		if _, err := b.group(g.ID); err != nil {
			return nil, err
		}
	}

	return scene, nil
}

// NewSceneFactory returns a function that builds a fresh scene from doc on
// every call. doc must not change afterwards.
func NewSceneFactory(doc *Document) func() (*engine.Scene, error) {
	return func() (*engine.Scene, error) {
		return Build(doc)
	}
}

// Validate reports whether doc builds.
func Validate(doc *Document) error {
	_, err := Build(doc)
	return err
}

func (b *builder) index(doc *Document) error {
	seen := make(map[string]bool)
	claim := func(id string) error {
		if id == "" {
			return ErrMissingID
		}
		if seen[id] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = true
		return nil
	}

	for _, p := range doc.Points {
		if err := claim(p.ID); err != nil {
			return err
		}
		b.points[p.ID] = p
	}
	for _, l := range doc.Lines {
		if err := claim(l.ID); err != nil {
			return err
		}
		b.lines[l.ID] = l
	}
	for _, g := range doc.Groups {
		if err := claim(g.ID); err != nil {
			return err
		}
		b.groups[g.ID] = g
	}
	return nil
}

func (b *builder) enter(id string) error {
	if b.visiting[id] {
		return fmt.Errorf("%w at %q", ErrCycle, id)
	}
	b.visiting[id] = true
	return nil
}

func (b *builder) leave(id string) {
	delete(b.visiting, id)
}

func (b *builder) construct(id string) (construct.Construct, error) {
	if _, ok := b.points[id]; ok {
		return b.point(id)
	}
	if _, ok := b.lines[id]; ok {
		return b.line(id)
	}
	if _, ok := b.groups[id]; ok {
		return b.group(id)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReference, id)
}

func (b *builder) point(id string) (*construct.Point, error) {
	if p, ok := b.builtPoints[id]; ok {
		return p, nil
	}
	def, ok := b.points[id]
	if !ok {
		return nil, fmt.Errorf("%w: point %q", ErrUnknownReference, id)
	}
	if err := b.enter(id); err != nil {
		return nil, err
	}
	defer b.leave(id)

	name := displayName(def.ID, def.Name)
	color := def.Color
	if color == "" {
		color = DefaultColor
	}

	var p *construct.Point
	switch def.Kind() {
	case PointAbsolute:
		p = construct.NewPoint(name, construct.NewAxes(def.X, def.Y), color)

	case PointReference:
		origin, err := b.point(def.From)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", id, err)
		}
		p = construct.NewOffsetPoint(name, origin.Position(), color, construct.NewAxes(def.OffsetX, def.OffsetY))

	case PointIntersection:
		if len(def.Intersect) != 2 {
			return nil, fmt.Errorf("%w: point %q intersects %d lines, want 2", ErrInvalidPoint, id, len(def.Intersect))
		}
		first, err := b.line(def.Intersect[0])
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", id, err)
		}
		second, err := b.line(def.Intersect[1])
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", id, err)
		}
		p = construct.NewPoint(name, first.IntersectionTo(second), color)

	default:
		return nil, fmt.Errorf("%w: point %q mixes absolute, reference and intersection fields", ErrInvalidPoint, id)
	}

	b.builtPoints[id] = p
	return p, nil
}

func (b *builder) line(id string) (*construct.Line, error) {
	if l, ok := b.builtLines[id]; ok {
		return l, nil
	}
	def, ok := b.lines[id]
	if !ok {
		return nil, fmt.Errorf("%w: line %q", ErrUnknownReference, id)
	}
	if err := b.enter(id); err != nil {
		return nil, err
	}
	defer b.leave(id)

	start, err := b.point(def.Start)
	if err != nil {
		return nil, fmt.Errorf("line %q start: %w", id, err)
	}
	end, err := b.point(def.End)
	if err != nil {
		return nil, fmt.Errorf("line %q end: %w", id, err)
	}

	color := def.Color
	if color == "" {
		color = DefaultColor
	}
	l := construct.NewLine(displayName(def.ID, def.Name), start, end, color)
	b.builtLines[id] = l
	return l, nil
}

func (b *builder) group(id string) (*construct.Group, error) {
	if g, ok := b.builtGroups[id]; ok {
		return g, nil
	}
	def, ok := b.groups[id]
	if !ok {
		return nil, fmt.Errorf("%w: group %q", ErrUnknownReference, id)
	}
	if err := b.enter(id); err != nil {
		return nil, err
	}
	defer b.leave(id)

	members := make([]construct.Construct, 0, len(def.Members))
	for _, m := range def.Members {
		c, err := b.construct(m)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", id, err)
		}
		members = append(members, c)
	}

	g := construct.NewGroup(displayName(def.ID, def.Name), members...)
	b.builtGroups[id] = g
	return g, nil
}
