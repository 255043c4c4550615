package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/actordata"
	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/fishing"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
	"github.com/osse101/FishingOverhaul_Go/internal/scheduler"
	"github.com/osse101/FishingOverhaul_Go/internal/server"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
	"github.com/osse101/FishingOverhaul_Go/internal/worker"
)

// App is the wired application
type App struct {
	Config    *config.Config
	Fishing   config.Fishing
	Store     actordata.Backend
	Bus       event.Bus
	Publisher *event.ResilientPublisher
	History   *fishing.History
	Registry  *registry.Registry
	Service   *fishing.Service
	Server    *server.Server
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// Build wires every component from cfg: the event system, the actor store,
// the availability model, the entry registry with its content, the fishing
// service, the HTTP server and the content reload schedule. On error anything
// already opened is closed.
func Build(ctx context.Context, cfg *config.Config) (app *App, err error) {
	app = &App{Config: cfg}
	defer func() {
		if err != nil {
			app.Shutdown(ctx)
			app = nil
		}
	}()

	app.Fishing, err = LoadFishingConfig(cfg)
	if err != nil {
		return app, err
	}

	app.Bus, app.Publisher, err = InitializeEventSystem(cfg)
	if err != nil {
		return app, fmt.Errorf("%s: %w", ErrMsgFailedEventSystem, err)
	}
	RegisterEventHandlers(app.Bus)

	app.Store, err = actordata.Open(ctx, cfg)
	if err != nil {
		return app, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	app.History = fishing.NewHistory(app.Store, cfg.ModID)
	preds := availability.NewPredicateRegistry()
	availability.RegisterBuiltins(preds, app.History, app.Fishing.Fish.RecatchFrequency)

	sources, err := ContentSources(cfg)
	if err != nil {
		return app, err
	}
	app.Registry = registry.New(availability.NewModel(preds), app.Publisher)
	LoadContent(ctx, app.Registry, sources...)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.FromContext(ctx).Info(LogMsgRandomSeed, LogFieldSeed, seed)

	app.Service = fishing.NewService(app.Registry, app.History, app.Publisher, utils.NewSeededRandom(seed), app.Fishing,
		fishing.WithLocationResolver(app.Registry))
	app.Server = server.NewServer(cfg.Addr(), cfg.AdminAPIKey, cfg.TrustedProxies, server.Deps{
		Store:    app.Store,
		Registry: app.Registry,
		Fishing:  app.Service,
	})

	if cfg.ContentReloadInterval > 0 {
		app.Pool = worker.NewPool(ReloadWorkers, ReloadQueueSize)
		app.Pool.Start(ctx)
		app.Scheduler = scheduler.New(app.Pool)
		app.Scheduler.Schedule(cfg.ContentReloadInterval, NewContentReloadJob(app.Registry, cfg.ContentDir))
		logger.FromContext(ctx).Info(LogMsgContentWatchEnabled, LogFieldDir, cfg.ContentDir, LogFieldInterval, cfg.ContentReloadInterval)
	}
	return app, nil
}

// Shutdown stops whatever Build managed to start
func (a *App) Shutdown(ctx context.Context) {
	var components ShutdownComponents
	if a.Server != nil {
		components.Server = a.Server
	}
	if a.Scheduler != nil {
		components.Scheduler = a.Scheduler
	}
	if a.Pool != nil {
		components.WorkerPool = a.Pool
	}
	if a.Publisher != nil {
		components.ResilientPublisher = a.Publisher
	}
	if a.Store != nil {
		components.Store = a.Store
	}
	GracefulShutdown(ctx, components)
}
