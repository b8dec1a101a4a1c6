//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/perspective/internal/document"
	"github.com/inamate/perspective/internal/engine"
)

var eng *engine.Engine

func main() {
	scene, err := document.Build(document.NewPerspectiveDocument())
	if err != nil {
		panic(err)
	}
	eng = engine.NewEngine(scene)

	// Create the engine API object
	perspectiveEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	perspectiveEngine.Set("loadDocument", js.FuncOf(loadDocument))
	perspectiveEngine.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	perspectiveEngine.Set("pointerDown", js.FuncOf(pointerDown))
	perspectiveEngine.Set("pointerMove", js.FuncOf(pointerMove))
	perspectiveEngine.Set("pointerUp", js.FuncOf(pointerUp))
	perspectiveEngine.Set("pointerLeave", js.FuncOf(pointerLeave))
	perspectiveEngine.Set("tick", js.FuncOf(tick))

	// --- Queries (frontend ← backend) ---
	perspectiveEngine.Set("render", js.FuncOf(render))
	perspectiveEngine.Set("hitTest", js.FuncOf(hitTest))
	perspectiveEngine.Set("getPlaybackState", js.FuncOf(getPlaybackState))
	perspectiveEngine.Set("getCoordinates", js.FuncOf(getCoordinates))
	perspectiveEngine.Set("getFrame", js.FuncOf(getFrame))

	// Register on global scope
	js.Global().Set("perspectiveEngine", perspectiveEngine)

	// Signal that WASM is ready
	js.Global().Set("perspectiveWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

// loadDocument(text, format?) replaces the scene. format defaults to json.
func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document"})
	}

	format := document.FormatJSON
	if len(args) > 1 && args[1].Type() == js.TypeString {
		format = document.Format(args[1].String())
	}

	doc, err := document.Decode([]byte(args[0].String()), format)
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	scene, err := document.Build(doc)
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	eng.SetScene(scene)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	scene, err := document.Build(document.NewPerspectiveDocument())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	eng.SetScene(scene)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.PointerDown(args[0].Float(), args[1].Float())
	return nil
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.PointerMove(args[0].Float(), args[1].Float())
	return nil
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	eng.PointerUp()
	return nil
}

func pointerLeave(this js.Value, args []js.Value) interface{} {
	eng.PointerLeave()
	return nil
}

func tick(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Tick())
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	x := args[0].Float()
	y := args[1].Float()
	return js.ValueOf(eng.HitTest(x, y))
}

func getPlaybackState(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetPlaybackState())
}

func getCoordinates(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(eng.Coordinates())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

func getFrame(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(float64(eng.GetFrame()))
}
