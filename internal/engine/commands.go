package engine

import (
	"encoding/json"

	"github.com/inamate/perspective/internal/construct"
)

// Draw command operations.
const (
	OpClear   = "clear"
	OpFill    = "fill"
	OpStroke  = "stroke"
	OpMoveTo  = "moveTo"
	OpCircle  = "circle"
	OpSegment = "segment"
	OpText    = "text"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op     string  `json:"op"`               // Operation, one of the Op constants
	Color  string  `json:"color,omitempty"`  // Fill or stroke color
	X      float64 `json:"x,omitempty"`      // Position for moveTo, circle, text
	Y      float64 `json:"y,omitempty"`      //
	X2     float64 `json:"x2,omitempty"`     // Segment end
	Y2     float64 `json:"y2,omitempty"`     //
	Radius float64 `json:"r,omitempty"`      // Circle radius
	Text   string  `json:"text,omitempty"`   // Text content
	Size   float64 `json:"size,omitempty"`   // Text size
	Width  float64 `json:"width,omitempty"`  // Clear extent
	Height float64 `json:"height,omitempty"` //
}

// Canvas is a surface that can also be cleared between frames.
type Canvas interface {
	construct.Surface
	Clear(width, height float64)
}

// Recorder is a Canvas that buffers draw commands in painter's order.
type Recorder struct {
	commands []DrawCommand
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(cmd DrawCommand) {
	r.commands = append(r.commands, cmd)
}

func (r *Recorder) SetFill(color string)   { r.add(DrawCommand{Op: OpFill, Color: color}) }
func (r *Recorder) SetStroke(color string) { r.add(DrawCommand{Op: OpStroke, Color: color}) }
func (r *Recorder) MoveTo(x, y float64)    { r.add(DrawCommand{Op: OpMoveTo, X: x, Y: y}) }

func (r *Recorder) Circle(x, y, radius float64) {
	r.add(DrawCommand{Op: OpCircle, X: x, Y: y, Radius: radius})
}

func (r *Recorder) Segment(x1, y1, x2, y2 float64) {
	r.add(DrawCommand{Op: OpSegment, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) Text(s string, x, y, size float64) {
	r.add(DrawCommand{Op: OpText, Text: s, X: x, Y: y, Size: size})
}

func (r *Recorder) Clear(width, height float64) {
	r.add(DrawCommand{Op: OpClear, Width: width, Height: height})
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []DrawCommand {
	return r.commands
}

// Reset discards recorded commands, keeping the buffer.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
