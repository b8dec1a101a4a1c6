// Package document describes a diagram as data and builds it into a scene.
package document

// Document is a diagram definition: the points and lines it is made of,
// optional groups, and the order in which top-level entries are drawn.
type Document struct {
	Name   string     `json:"name" yaml:"name" toml:"name"`
	Width  int        `json:"width" yaml:"width" toml:"width"`
	Height int        `json:"height" yaml:"height" toml:"height"`
	Points []PointDef `json:"points" yaml:"points" toml:"points"`
	Lines  []LineDef  `json:"lines" yaml:"lines" toml:"lines"`
	Groups []GroupDef `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
	// Draw lists point, line and group IDs in draw and hit-test order.
	Draw []string `json:"draw" yaml:"draw" toml:"draw"`
}

// PointKind is how a point gets its position.
type PointKind string

const (
	PointAbsolute     PointKind = "absolute"
	PointReference    PointKind = "reference"
	PointIntersection PointKind = "intersection"
)

// PointDef defines a point. Exactly one of three forms is used:
//   - absolute: X and/or Y; a missing axis reads 0 and cannot be dragged
//   - reference: From names another point, OffsetX/OffsetY displace it
//   - intersection: Intersect names two lines
type PointDef struct {
	ID        string   `json:"id" yaml:"id" toml:"id"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Color     string   `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	From      string   `json:"from,omitempty" yaml:"from,omitempty" toml:"from,omitempty"`
	OffsetX   *float64 `json:"offsetX,omitempty" yaml:"offsetX,omitempty" toml:"offsetX,omitempty"`
	OffsetY   *float64 `json:"offsetY,omitempty" yaml:"offsetY,omitempty" toml:"offsetY,omitempty"`
	Intersect []string `json:"intersect,omitempty" yaml:"intersect,omitempty" toml:"intersect,omitempty"`
}

// Kind classifies the definition. It returns "" when the fields mix forms.
func (p PointDef) Kind() PointKind {
	absolute := p.X != nil || p.Y != nil
	reference := p.From != "" || p.OffsetX != nil || p.OffsetY != nil
	intersection := len(p.Intersect) > 0

	switch {
	case absolute && !reference && !intersection:
		return PointAbsolute
	case reference && !absolute && !intersection && p.From != "":
		return PointReference
	case intersection && !absolute && !reference:
		return PointIntersection
	}
	return ""
}

// LineDef defines a line between two points.
type LineDef struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Start string `json:"start" yaml:"start" toml:"start"`
	End   string `json:"end" yaml:"end" toml:"end"`
}

// GroupDef gathers points, lines and other groups into one draggable unit.
type GroupDef struct {
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Members []string `json:"members" yaml:"members" toml:"members"`
}

func displayName(id, name string) string {
	if name != "" {
		return name
	}
	return id
}

// Float returns a pointer to v, for filling optional coordinates.
func Float(v float64) *float64 {
	return &v
}
