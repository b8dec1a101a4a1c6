// Package raster paints scenes into images with gogpu/gg.
package raster

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/inamate/perspective/internal/engine"
)

// LineWidth matches the browser canvas default.
const LineWidth = 1.0

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func loadFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// ParseColor resolves a CSS color name or hex string. Unknown names yield
// black.
func ParseColor(s string) color.Color {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		return gg.Hex(s).Color()
	}
	if c, ok := colornames.Map[s]; ok {
		return c
	}
	return color.Black
}

// Canvas implements engine.Canvas on a gg context. The first Clear sizes
// the image; later clears repaint it white.
type Canvas struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face

	fill   color.Color
	stroke color.Color
}

var _ engine.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas with the embedded Go font loaded.
func NewCanvas() (*Canvas, error) {
	source, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Canvas{
		source: source,
		faces:  make(map[float64]text.Face),
		fill:   color.Black,
		stroke: color.Black,
	}, nil
}

func (c *Canvas) Clear(width, height float64) {
	w, h := int(width), int(height)
	if c.dc == nil || c.dc.Width() != w || c.dc.Height() != h {
		if c.dc != nil {
			_ = c.dc.Close()
		}
		c.dc = gg.NewContext(w, h)
	}
	c.dc.ClearWithColor(gg.White)
	c.dc.SetLineWidth(LineWidth)
}

func (c *Canvas) SetFill(s string)   { c.fill = ParseColor(s) }
func (c *Canvas) SetStroke(s string) { c.stroke = ParseColor(s) }

// MoveTo only starts a new path on a browser canvas; every primitive here
// draws its own path.
func (c *Canvas) MoveTo(float64, float64) {}

func (c *Canvas) Circle(x, y, radius float64) {
	if c.dc == nil {
		return
	}
	c.dc.SetColor(c.fill)
	c.dc.DrawCircle(x, y, radius)
	_ = c.dc.Fill()
}

func (c *Canvas) Segment(x1, y1, x2, y2 float64) {
	if c.dc == nil {
		return
	}
	c.dc.SetColor(c.stroke)
	c.dc.DrawLine(x1, y1, x2, y2)
	_ = c.dc.Stroke()
}

func (c *Canvas) Text(s string, x, y, size float64) {
	if c.dc == nil {
		return
	}
	face, ok := c.faces[size]
	if !ok {
		face = c.source.Face(size)
		c.faces[size] = face
	}
	c.dc.SetFont(face)
	c.dc.SetColor(c.fill)
	c.dc.DrawString(s, x, y)
}

// EncodePNG writes the current image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.dc == nil {
		return fmt.Errorf("encode png: nothing drawn")
	}
	return c.dc.EncodePNG(w)
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	if c.dc == nil {
		return nil
	}
	err := c.dc.Close()
	c.dc = nil
	return err
}

// RenderPNG draws the engine's current frame and writes it as PNG.
func RenderPNG(e *engine.Engine, w io.Writer) error {
	canvas, err := NewCanvas()
	if err != nil {
		return err
	}
	defer canvas.Close()

	e.RenderTo(canvas)
	return canvas.EncodePNG(w)
}
