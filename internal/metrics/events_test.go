package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingOverhaul_Go/internal/event"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	switch {
	case out.Counter != nil:
		return out.Counter.GetValue()
	case out.Gauge != nil:
		return out.Gauge.GetValue()
	}
	return 0
}

func TestEventMetricsCollector_Catches(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	item := "StardewValley:Object/test-collector-fish"
	before := value(t, Catches.WithLabelValues(KindFish, item))
	perfectBefore := value(t, PerfectCatches)

	require.NoError(t, bus.Publish(ctx, event.Event{
		Type:    event.FishCaught,
		Payload: event.CatchPayloadV1{ItemKey: item, Quality: 2, Perfect: true},
	}))

	assert.Equal(t, before+1, value(t, Catches.WithLabelValues(KindFish, item)))
	assert.Equal(t, perfectBefore+1, value(t, PerfectCatches))
}

func TestEventMetricsCollector_Fallbacks(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := value(t, TrashFallbacks.WithLabelValues(event.ReasonNoCatch))
	require.NoError(t, bus.Publish(context.Background(), event.Event{
		Type:    event.TrashFallback,
		Payload: map[string]interface{}{"reason": event.ReasonNoCatch},
	}))

	assert.Equal(t, before+1, value(t, TrashFallbacks.WithLabelValues(event.ReasonNoCatch)))
}

func TestEventMetricsCollector_RegistryGauges(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	require.NoError(t, bus.Publish(context.Background(), event.NewRegistryReloadedEvent(event.RegistryReloadedPayloadV1{
		Fish: 12, Trash: 4, Treasure: 7,
	})))

	assert.Equal(t, 12.0, value(t, RegistryEntries.WithLabelValues(KindFish)))
	assert.Equal(t, 7.0, value(t, RegistryEntries.WithLabelValues(KindTreasure)))
}

func TestEventMetricsCollector_BadPayloadIsNotAnError(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := value(t, EventHandlerErrors.WithLabelValues(string(event.FishLost)))
	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.FishLost, Payload: "not a payload"}))
	assert.Equal(t, before+1, value(t, EventHandlerErrors.WithLabelValues(string(event.FishLost))))
}
