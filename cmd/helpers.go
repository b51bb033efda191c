package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ziadkadry99/study-tracker/internal/catalog"
	"github.com/ziadkadry99/study-tracker/internal/config"
	"github.com/ziadkadry99/study-tracker/internal/db"
	"github.com/ziadkadry99/study-tracker/internal/state"
	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

// app holds what every command needs: config, catalog and saved state.
type app struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	db      *db.DB
	kv      *db.KV
	store   *state.Store
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `studytracker init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openApp loads the config and catalog and opens the state database.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog...)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if len(cfg.Categories) > 0 {
		if cat, err = cat.Reorder(cfg.Categories); err != nil {
			return nil, fmt.Errorf("applying category order: %w", err)
		}
	}

	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	kv := db.NewKV(database)
	store := state.NewStore(kv)
	if verbose {
		store.SetLogger(log.New(os.Stderr, "", log.LstdFlags))
	}

	return &app{cfg: cfg, catalog: cat, db: database, kv: kv, store: store}, nil
}

func (a *app) Close() error { return a.db.Close() }

// newTracker builds a tracker rendering into display. Either argument may be nil.
func (a *app) newTracker(ctx context.Context, display tracker.Display, notifier tracker.Notifier) (*tracker.Tracker, error) {
	return tracker.New(ctx, a.catalog, a.store, display, notifier, tracker.Options{
		DefaultView:      a.cfg.DefaultView,
		SearchCategories: a.cfg.Search.Categories,
		MinQueryLength:   a.cfg.Search.MinQueryLength,
	})
}
