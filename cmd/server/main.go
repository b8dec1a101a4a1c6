package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/inamate/perspective/internal/config"
	"github.com/inamate/perspective/internal/document"
	"github.com/inamate/perspective/internal/geometry"
	mw "github.com/inamate/perspective/internal/middleware"
	"github.com/inamate/perspective/internal/session"
	"github.com/inamate/perspective/internal/snapshot"
	"github.com/inamate/perspective/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	geometry.SetDefaultCacheCapacity(cfg.IntersectionCacheSize)

	doc, err := loadDocument(cfg)
	if err != nil {
		slog.Error("load diagram", "error", err, "path", cfg.DiagramPath)
		os.Exit(1)
	}
	newScene := document.NewSceneFactory(doc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	origins := mw.SplitOrigins(cfg.AllowedOrigins)
	hub := session.NewHub(newScene, cfg.FPS, mw.OriginPatterns(origins))
	go hub.Run(ctx)

	snapshotHandler := snapshot.NewHandler(newScene)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(origins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","sessions":` + strconv.Itoa(hub.Count()) + `}`))
	}).Methods("GET")

	r.HandleFunc("/snapshot.png", snapshotHandler.ServePNG).Methods("GET", "OPTIONS")

	// WebSocket endpoint
	r.Handle("/ws", hub)

	r.PathPrefix("/").Handler(web.Handler()).Methods("GET")

	addr := ":" + strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Close live sessions first; Shutdown does not touch hijacked connections.
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "scene", doc.Name, "fps", cfg.FPS)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// loadDocument reads DIAGRAM_PATH, or falls back to the built-in
// perspective diagram, and checks that it builds.
func loadDocument(cfg *config.Config) (*document.Document, error) {
	doc := document.NewPerspectiveDocument()
	if cfg.DiagramPath != "" {
		var err error
		doc, err = document.Load(cfg.DiagramPath)
		if err != nil {
			return nil, err
		}
	}
	if doc.Width <= 0 {
		doc.Width = cfg.SceneWidth
	}
	if doc.Height <= 0 {
		doc.Height = cfg.SceneHeight
	}
	if err := document.Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
