package main

import (
	"context"
	"os"

	"github.com/osse101/FishingOverhaul_Go/internal/actordata"
	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/bootstrap"
	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/content"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/fishing"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// engine is an offline fishing service backed by an in-memory actor store
type engine struct {
	fishing  config.Fishing
	registry *registry.Registry
	service  *fishing.Service
	// reloadErr is set when a content source failed to load
	reloadErr error
}

// newEngine loads the tuning file and content the server would, plus an
// optional extra content directory.
func newEngine(ctx context.Context, cfg *config.Config, seed int64, extraDir string) (*engine, error) {
	tuning, err := bootstrap.LoadFishingConfig(cfg)
	if err != nil {
		return nil, err
	}

	sources, err := bootstrap.ContentSources(cfg)
	if err != nil {
		return nil, err
	}
	if extraDir != "" {
		if _, err := os.Stat(extraDir); err != nil {
			return nil, err
		}
		sources = append(sources, content.NewDirSource(extraDir))
	}

	history := fishing.NewHistory(actordata.NewMemory(), cfg.ModID)
	preds := availability.NewPredicateRegistry()
	availability.RegisterBuiltins(preds, history, tuning.Fish.RecatchFrequency)

	e := &engine{fishing: tuning, registry: registry.New(availability.NewModel(preds), event.Discard{})}
	e.reloadErr = e.registry.Reload(ctx, sources...)
	e.service = fishing.NewService(e.registry, history, event.Discard{}, utils.NewSeededRandom(seed), tuning,
		fishing.WithLocationResolver(e.registry))
	return e, nil
}
