package app

import (
	"context"
	"time"
)

type Application struct {
	Config  Config
	Logger  *Logger
	Gen     Generator
	Store   *Store
	Storage StateStore
}

func NewApplication(ctx context.Context, cfg Config, mockMode bool) (*Application, error) {
	logger := NewLogger(DefaultLogWriter(cfg.StorageRoot))

	var gen Generator
	if mockMode {
		gen = NewMockGenerator()
	} else {
		g, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, logger, time.Duration(cfg.RequestTimeoutSec)*time.Second)
		if err != nil {
			return nil, err
		}
		gen = g
	}

	storage := NewFileStateStore(cfg.StorageRoot)
	store := NewStore(storage, gen, logger)
	if cfg.Location != nil {
		store.SetLocation(cfg.Location)
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Gen:     gen,
		Store:   store,
		Storage: storage,
	}, nil
}

// Theme returns the persisted theme preference, falling back to the
// configured default when nothing is stored yet.
func (a *Application) Theme() string {
	theme, err := a.Storage.LoadTheme()
	if err != nil {
		a.Logger.Error("failed to load theme", map[string]interface{}{"error": err.Error()})
	}
	if theme == "" {
		theme = a.Config.Theme
	}
	return theme
}

func (a *Application) SetTheme(theme string) {
	if err := a.Storage.SaveTheme(theme); err != nil {
		a.Logger.Error("failed to persist theme", map[string]interface{}{"error": err.Error()})
	}
}
