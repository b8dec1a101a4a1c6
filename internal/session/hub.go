package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/inamate/perspective/internal/engine"
	"github.com/inamate/perspective/internal/typeid"
)

// SceneFactory builds a fresh scene for a new session. Sessions never share
// constructs.
type SceneFactory func() (*engine.Scene, error)

type Hub struct {
	mu         sync.RWMutex
	sessions   map[string]*Session // session ID -> session
	register   chan *Session
	unregister chan *Session
	done       chan struct{}

	newScene       SceneFactory
	fps            int
	originPatterns []string
}

func NewHub(newScene SceneFactory, fps int, originPatterns []string) *Hub {
	return &Hub{
		sessions:       make(map[string]*Session),
		register:       make(chan *Session),
		unregister:     make(chan *Session),
		done:           make(chan struct{}),
		newScene:       newScene,
		fps:            fps,
		originPatterns: originPatterns,
	}
}

// Run tracks sessions until ctx ends, then closes every open connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case s := <-h.register:
			h.mu.Lock()
			h.sessions[s.ID] = s
			h.mu.Unlock()
			slog.Info("session started", "session", s.ID, "client", s.ClientID)

		case s := <-h.unregister:
			h.mu.Lock()
			delete(h.sessions, s.ID)
			h.mu.Unlock()
			slog.Info("session ended", "session", s.ID, "client", s.ClientID)

		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, s := range h.sessions {
		s.conn.Close(websocket.StatusGoingAway, "server shutting down")
		delete(h.sessions, id)
	}
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) Register(s *Session) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// ServeHTTP upgrades the request and runs a session until the client goes
// away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	scene, err := h.newScene()
	if err != nil {
		slog.Error("build scene", "error", err)
		http.Error(w, "scene unavailable", http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	s := newSession(h, conn, scene, h.fps, typeid.NewSessionID(), uuid.New().String())
	if !h.Register(s) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		s.hub.Unregister(s)
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	go s.WritePump(ctx)
	go s.Run(ctx)
	s.ReadPump(ctx)
}
