package root

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"afish/internal/catalog"
	"afish/internal/config"
	"afish/internal/engine"
	"afish/internal/storage"
)

// loadConfig reads the config file and applies the persistent flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagSave != "" {
		cfg.SavePath = flagSave
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}
	if flagLogLevel != "" {
		if _, err := config.ParseLevel(flagLogLevel); err != nil {
			return nil, err
		}
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// openLogger builds the slog text logger. Logs go to stderr unless a file is
// configured; the returned func closes that file.
func openLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	var out io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	path := cfg.SavePath
	if path == "" {
		p, err := storage.DefaultSavePath(cfg.Store)
		if err != nil {
			return nil, err
		}
		path = p
	}
	return storage.OpenStore(ctx, cfg.Store, path)
}

// openService loads config, catalog and the saved tank, checked in to now.
func openService(ctx context.Context) (*engine.Service, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	slog.SetDefault(logger)

	cat, err := catalog.Load(cfg.Catalog.Species, cfg.Catalog.Personalities)
	if err != nil {
		closeLog()
		return nil, nil, nil, err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		closeLog()
		return nil, nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
		closeLog()
	}

	svc := engine.NewService(engine.Options{
		Catalog: cat,
		Store:   store,
		Tank: engine.TankConfig{
			Width:   cfg.Tank.Width,
			Height:  cfg.Tank.Height,
			MaxFish: cfg.Tank.MaxFish,
		},
		Logger: logger,
	})
	if err := svc.Open(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return svc, cfg, cleanup, nil
}
