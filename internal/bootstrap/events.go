package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and the resilient publisher in
// front of it. Zero retry settings fall back to defaults and the dead-letter
// directory is created if missing.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = event.RetryMaxAttempts
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	logger.Info(LogMsgEventSystemInitialized,
		LogFieldMaxRetries, maxRetries,
		LogFieldRetryDelay, retryDelay,
		LogFieldDeadLetterPath, deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// RegisterEventHandlers subscribes the event consumers to the bus
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	logger.Info(LogMsgMetricsCollectorRegistered)
}
