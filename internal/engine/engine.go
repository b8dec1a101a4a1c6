package engine

import (
	"encoding/json"
	"strconv"

	"github.com/inamate/perspective/internal/construct"
	"github.com/inamate/perspective/internal/interaction"
)

const (
	statusX    = 10.0
	statusY    = 50.0
	statusSize = 12.0
	statusFill = "black"
)

// Engine drives one diagram: it owns the scene, the tick counter and the
// drag state. It is not safe for concurrent use; hosts call it from a single
// goroutine, one frame at a time.
type Engine struct {
	scene    *Scene
	tick     construct.Tick
	dragger  *interaction.Dragger
	recorder *Recorder
}

// NewEngine creates an engine for scene.
func NewEngine(scene *Scene) *Engine {
	e := &Engine{recorder: NewRecorder()}
	e.SetScene(scene)
	return e
}

// --- Commands (frontend → backend) ---

// SetScene replaces the scene and drops any drag in progress.
func (e *Engine) SetScene(scene *Scene) {
	e.scene = scene
	e.dragger = interaction.NewDragger(scene)
}

// PointerDown grabs the construct under the pointer.
func (e *Engine) PointerDown(x, y float64) {
	e.dragger.Press(x, y)
}

// PointerMove drags the grabbed construct, if any.
func (e *Engine) PointerMove(x, y float64) {
	e.dragger.Move(x, y)
}

// PointerUp releases the grabbed construct.
func (e *Engine) PointerUp() {
	e.dragger.Release()
}

// PointerLeave releases the grabbed construct when the pointer leaves the canvas.
func (e *Engine) PointerLeave() {
	e.dragger.Leave()
}

// Advance moves to the next tick so derived coordinates are re-evaluated.
func (e *Engine) Advance() construct.Tick {
	e.tick++
	return e.tick
}

// Tick advances the tick and returns the frame's draw commands as JSON.
// This is called once per animation frame from the frontend.
func (e *Engine) Tick() string {
	e.Advance()
	return e.Render()
}

// --- Queries (frontend ← backend) ---

// RenderTo draws the current tick onto canvas: clear, every construct in
// order, then the pointer status line.
func (e *Engine) RenderTo(canvas Canvas) {
	canvas.Clear(float64(e.scene.Width), float64(e.scene.Height))
	e.scene.Draw(canvas, e.tick)

	x, y := e.dragger.Pointer()
	canvas.SetFill(statusFill)
	canvas.Text(formatCoord(x)+", "+formatCoord(y), statusX, statusY, statusSize)
}

// Frame draws the current tick and returns the recorded commands. The slice
// is reused by the next call.
func (e *Engine) Frame() []DrawCommand {
	e.recorder.Reset()
	e.RenderTo(e.recorder)
	return e.recorder.Commands()
}

// Render draws the current tick and returns draw commands as JSON.
func (e *Engine) Render() string {
	result, _ := DrawCommandsToJSON(e.Frame())
	return result
}

// HitTest returns the name of the first construct hit at (x, y), or "".
func (e *Engine) HitTest(x, y float64) string {
	if c := e.scene.TargetAt(x, y); c != nil {
		return c.Name()
	}
	return ""
}

// PointCoords is a point's last drawn location.
type PointCoords struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Drawn bool    `json:"drawn"`
}

// Coordinates lists every point in the scene, including group members, in
// draw order. A point reachable through more than one group is listed once.
func (e *Engine) Coordinates() []PointCoords {
	var result []PointCoords
	seen := make(map[*construct.Point]bool)
	for _, c := range e.scene.Constructs() {
		construct.Walk(c, func(m construct.Construct) {
			p, ok := m.(*construct.Point)
			if !ok || seen[p] {
				return
			}
			seen[p] = true
			coords, drawn := p.LastDrawn()
			result = append(result, PointCoords{Name: p.Name(), X: coords.X, Y: coords.Y, Drawn: drawn})
		})
	}
	return result
}

// GetPlaybackState returns the current tick and pointer state as JSON.
func (e *Engine) GetPlaybackState() string {
	x, y := e.dragger.Pointer()
	selected := ""
	if c := e.dragger.Selected(); c != nil {
		selected = c.Name()
	}
	data, _ := json.Marshal(map[string]interface{}{
		"tick":     e.tick,
		"pointerX": x,
		"pointerY": y,
		"dragging": selected,
	})
	return string(data)
}

// GetFrame returns the current tick.
func (e *Engine) GetFrame() construct.Tick {
	return e.tick
}

// Scene returns the scene being drawn.
func (e *Engine) Scene() *Scene {
	return e.scene
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
