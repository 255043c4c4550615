package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/actordata"
	"github.com/osse101/FishingOverhaul_Go/internal/config"
)

const storeTimeout = 30 * time.Second

// openStore opens the configured actor store. Opening a SQL store applies
// its pending migrations.
func openStore(ctx context.Context) (*config.Config, actordata.Backend, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	store, err := actordata.Open(ctx, cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	return cfg, store, nil
}

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply pending actor store migrations"
}

func (c *MigrateCommand) Run(ctx context.Context, _ []string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	PrintHeader("Migrating actor store")
	cfg, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.StoreDriver == config.StoreDriverMemory {
		PrintWarning("The memory store has no migrations")
		return nil
	}
	PrintSuccess("%s store is up to date", cfg.StoreDriver)
	return nil
}

type CheckStoreCommand struct{}

func (c *CheckStoreCommand) Name() string {
	return "check-store"
}

func (c *CheckStoreCommand) Description() string {
	return "Check that the actor store is reachable"
}

func (c *CheckStoreCommand) Run(ctx context.Context, _ []string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	PrintHeader("Checking actor store")
	cfg, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	start := time.Now()
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	PrintSuccess("%s store is ready (ping: %v)", cfg.StoreDriver, time.Since(start).Round(time.Millisecond))
	return nil
}

type ClearActorCommand struct{}

func (c *ClearActorCommand) Name() string {
	return "clear-actor"
}

func (c *ClearActorCommand) Description() string {
	return "Delete an actor's streak and catch history"
}

func (c *ClearActorCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	force := fs.Bool("force", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: clear-actor [-force] <actor-id>")
	}
	actorID := fs.Arg(0)

	if !*force && !confirm(fmt.Sprintf("Delete all fishing data for %q?", actorID)) {
		PrintInfo("Cancelled")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	_, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.Clear(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", actorID, err)
	}
	PrintSuccess("Removed %d records for %s", removed, actorID)
	return nil
}
