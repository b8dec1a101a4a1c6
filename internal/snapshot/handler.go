// Package snapshot serves still PNG renders of the diagram.
package snapshot

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/inamate/perspective/internal/engine"
	"github.com/inamate/perspective/internal/raster"
	"github.com/inamate/perspective/internal/typeid"
)

const (
	maxTicks     = 10000
	maxDimension = 8192
)

type Handler struct {
	newScene func() (*engine.Scene, error)
}

func NewHandler(newScene func() (*engine.Scene, error)) *Handler {
	return &Handler{newScene: newScene}
}

// ServePNG renders a fresh scene after ?tick=N frames (default 1).
// ?width= and ?height= override the scene size.
func (h *Handler) ServePNG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ticks, err := intParam(q.Get("tick"), 1, maxTicks)
	if err != nil {
		http.Error(w, "invalid tick: "+err.Error(), http.StatusBadRequest)
		return
	}
	width, err := intParam(q.Get("width"), 0, maxDimension)
	if err != nil {
		http.Error(w, "invalid width: "+err.Error(), http.StatusBadRequest)
		return
	}
	height, err := intParam(q.Get("height"), 0, maxDimension)
	if err != nil {
		http.Error(w, "invalid height: "+err.Error(), http.StatusBadRequest)
		return
	}

	scene, err := h.newScene()
	if err != nil {
		slog.Error("build scene", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if width > 0 {
		scene.Width = width
	}
	if height > 0 {
		scene.Height = height
	}

	e := engine.NewEngine(scene)
	for range ticks {
		e.Advance()
	}

	var buf bytes.Buffer
	if err := raster.RenderPNG(e, &buf); err != nil {
		slog.Error("render snapshot", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	id := typeid.NewSnapshotID()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.png"`, id))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())

	slog.Info("snapshot rendered", "id", id, "tick", ticks, "width", scene.Width, "height", scene.Height, "size", buf.Len())
}

// intParam parses an optional positive integer, returning def when s is
// empty.
func intParam(s string, def, limit int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > limit {
		return 0, fmt.Errorf("must be between 1 and %d", limit)
	}
	return v, nil
}
