package bootstrap

import (
	"context"

	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

type stopper interface {
	Stop(ctx context.Context) error
}

type ticker interface {
	Stop()
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

type closer interface {
	Close() error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server             stopper
	Scheduler          ticker
	WorkerPool         stopper
	ResilientPublisher shutdowner
	Store              closer
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no more content reloads)
// 3. Event publisher (flush pending events)
// 4. Actor store (after nothing can write to it)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		logger.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, LogFieldError, err)
		}
	}

	if components.Scheduler != nil || components.WorkerPool != nil {
		logger.Info(LogMsgStoppingBackgroundJobs)
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		if err := components.WorkerPool.Stop(ctx); err != nil {
			logger.Error(LogMsgWorkerPoolStopFailed, LogFieldError, err)
		}
	}

	if components.ResilientPublisher != nil {
		logger.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, LogFieldError, err)
		}
	}

	if components.Store != nil {
		logger.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			logger.Error(LogMsgStoreCloseFailed, LogFieldError, err)
		}
	}

	logger.Info(LogMsgServerStopped)
}
