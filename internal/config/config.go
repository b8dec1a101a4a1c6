package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port                  int    `envconfig:"PORT" default:"8080"`
	FPS                   int    `envconfig:"FPS" default:"30"`
	DiagramPath           string `envconfig:"DIAGRAM_PATH"`
	AllowedOrigins        string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel              string `envconfig:"LOG_LEVEL" default:"info"`
	IntersectionCacheSize int    `envconfig:"INTERSECTION_CACHE_SIZE" default:"256"`
	SceneWidth            int    `envconfig:"SCENE_WIDTH" default:"1600"`
	SceneHeight           int    `envconfig:"SCENE_HEIGHT" default:"1000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.FPS <= 0 || cfg.FPS > 120 {
		return nil, fmt.Errorf("FPS must be between 1 and 120, got %d", cfg.FPS)
	}
	if cfg.IntersectionCacheSize <= 0 {
		return nil, fmt.Errorf("INTERSECTION_CACHE_SIZE must be positive, got %d", cfg.IntersectionCacheSize)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
