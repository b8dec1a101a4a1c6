package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/inamate/perspective/internal/construct"
	"github.com/inamate/perspective/internal/engine"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{R: 255, A: 255}},
		{"Orange", color.RGBA{R: 255, G: 165, A: 255}},
		{"#00ff00", color.RGBA{G: 255, A: 255}},
		{"not-a-color", color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := color.RGBAModel.Convert(ParseColor(tt.in)).(color.RGBA)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRenderPNG(t *testing.T) {
	scene := engine.NewScene("dot", 100, 80)
	scene.Add(construct.NewPoint("p", construct.NewAbsolute(40, 40), "red"))
	e := engine.NewEngine(scene)
	e.Advance()

	var buf bytes.Buffer
	if err := RenderPNG(e, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("expected 100x80 image, got %v", b)
	}

	r, g, b, _ := img.At(40, 40).RGBA()
	if r < 0xf000 || g > 0x1000 || b > 0x1000 {
		t.Errorf("expected red at the point center, got %v %v %v", r, g, b)
	}
	r, g, b, _ = img.At(95, 75).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("expected white background, got %v %v %v", r, g, b)
	}
}

func TestCanvasEncodeBeforeClear(t *testing.T) {
	c, err := NewCanvas()
	if err != nil {
		t.Fatalf("new canvas: %v", err)
	}
	// Drawing without a surface is a no-op.
	c.Circle(1, 1, 1)
	c.Text("x", 1, 1, 10)
	if err := c.EncodePNG(&bytes.Buffer{}); err == nil {
		t.Error("expected error encoding an empty canvas")
	}
	if err := c.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
