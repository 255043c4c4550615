package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/content"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
	"github.com/osse101/FishingOverhaul_Go/internal/validation"
)

// ContentSources lists the sources the registry loads, in merge order: the
// bundled game content first, then the content packs under cfg.ContentDir.
func ContentSources(cfg *config.Config) ([]content.Source, error) {
	def, err := content.NewDefaultSource()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedDefaultContent, err)
	}
	sources := []content.Source{def}

	if cfg.ContentDir != "" {
		if _, err := os.Stat(cfg.ContentDir); errors.Is(err, fs.ErrNotExist) {
			logger.Warn(LogMsgContentDirMissing, LogFieldDir, cfg.ContentDir)
		} else {
			sources = append(sources, content.NewDirSource(cfg.ContentDir))
		}
	}
	return sources, nil
}

// LoadContent fills the registry from sources. A failing source is logged and
// the rest stay loaded.
func LoadContent(ctx context.Context, reg *registry.Registry, sources ...content.Source) {
	log := logger.FromContext(ctx)
	if err := reg.Reload(ctx, sources...); err != nil {
		log.Warn(LogMsgContentPartialLoad, LogFieldError, err)
	}

	snap := reg.Current(ctx)
	log.Info(LogMsgContentLoaded,
		LogFieldSources, snap.Sources,
		LogFieldFish, len(snap.Fish),
		LogFieldTrash, len(snap.Trash),
		LogFieldTreasure, len(snap.Treasure),
		LogFieldEffects, len(snap.Effects),
		LogFieldSkipped, snap.Skipped)
}

// LoadFishingConfig reads the tuning file, schema-checked. A missing file gives
// the defaults.
func LoadFishingConfig(cfg *config.Config) (config.Fishing, error) {
	fishing, err := config.LoadFishing(cfg.FishingConfigPath, validation.NewSchemaValidator())
	if err != nil {
		return config.Fishing{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadFishing, err)
	}
	logger.Info(LogMsgFishingConfigLoaded, LogFieldPath, cfg.FishingConfigPath)
	return fishing, nil
}
