package metrics

import (
	"context"

	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// EventMetricsCollector subscribes to fishing events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every fishing event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.FishCaught,
		event.TrashCaught,
		event.FishLost,
		event.TreasureOpened,
		event.TrashFallback,
		event.PresentationFailed,
		event.RegistryReloaded,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.FishCaught:
		var p event.CatchPayloadV1
		if p, err = event.DecodePayload[event.CatchPayloadV1](evt.Payload); err == nil {
			Catches.WithLabelValues(KindFish, p.ItemKey).Inc()
			CatchQuality.Observe(float64(p.Quality))
			if p.Perfect {
				PerfectCatches.Inc()
			}
		}

	case event.TrashCaught:
		var p event.CatchPayloadV1
		if p, err = event.DecodePayload[event.CatchPayloadV1](evt.Payload); err == nil {
			Catches.WithLabelValues(KindTrash, p.ItemKey).Inc()
		}

	case event.FishLost:
		var p event.FishLostPayloadV1
		if p, err = event.DecodePayload[event.FishLostPayloadV1](evt.Payload); err == nil {
			FishLost.WithLabelValues(p.FishKey).Inc()
		}

	case event.TreasureOpened:
		var p event.TreasureOpenedPayloadV1
		if p, err = event.DecodePayload[event.TreasureOpenedPayloadV1](evt.Payload); err == nil {
			TreasureOpened.Inc()
			for _, item := range p.Items {
				TreasureItems.WithLabelValues(item).Inc()
			}
		}

	case event.TrashFallback:
		var p event.FallbackPayloadV1
		if p, err = event.DecodePayload[event.FallbackPayloadV1](evt.Payload); err == nil {
			TrashFallbacks.WithLabelValues(p.Reason).Inc()
		}

	case event.PresentationFailed:
		PresentationFailures.Inc()

	case event.RegistryReloaded:
		var p event.RegistryReloadedPayloadV1
		if p, err = event.DecodePayload[event.RegistryReloadedPayloadV1](evt.Payload); err == nil {
			RegistryEntries.WithLabelValues(KindFish).Set(float64(p.Fish))
			RegistryEntries.WithLabelValues(KindTrash).Set(float64(p.Trash))
			RegistryEntries.WithLabelValues(KindTreasure).Set(float64(p.Treasure))
			RegistryEntries.WithLabelValues(KindEffect).Set(float64(p.Effects))
			RegistryEntries.WithLabelValues(KindTraits).Set(float64(p.Traits))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
