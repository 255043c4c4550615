package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Fishing event types
const (
	FishCaught         Type = domain.EventTypeFishCaught
	TrashCaught        Type = domain.EventTypeTrashCaught
	FishLost           Type = domain.EventTypeFishLost
	TreasureOpened     Type = domain.EventTypeTreasureOpened
	TrashFallback      Type = domain.EventTypeTrashFallback
	PresentationFailed Type = domain.EventTypePresentationFailed
	RegistryReloaded   Type = domain.EventTypeRegistryReloaded
)

// CatchPayloadV1 is the typed payload for fish and trash catch events
type CatchPayloadV1 struct {
	AttemptID string  `json:"attempt_id"`
	ActorID   string  `json:"actor_id"`
	ItemKey   string  `json:"item_key"`
	Quality   int     `json:"quality"`
	Size      int     `json:"size,omitempty"`
	Perfect   bool    `json:"perfect"`
	Treasure  string  `json:"treasure"`
	Legendary bool    `json:"legendary,omitempty"`
	FromPond  bool    `json:"from_pond,omitempty"`
	Streak    int     `json:"streak"`
	Chance    float64 `json:"chance,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// FishLostPayloadV1 is the typed payload for lost fish events
type FishLostPayloadV1 struct {
	AttemptID  string `json:"attempt_id"`
	ActorID    string `json:"actor_id"`
	FishKey    string `json:"fish_key"`
	StreakLost int    `json:"streak_lost"`
	Timestamp  int64  `json:"timestamp"`
}

// TreasureOpenedPayloadV1 is the typed payload for treasure chest events
type TreasureOpenedPayloadV1 struct {
	AttemptID string   `json:"attempt_id"`
	ActorID   string   `json:"actor_id"`
	Items     []string `json:"items"`
	Timestamp int64    `json:"timestamp"`
}

// FallbackPayloadV1 is the typed payload for trash fallback and presentation failure events
type FallbackPayloadV1 struct {
	AttemptID string `json:"attempt_id"`
	ActorID   string `json:"actor_id"`
	Location  string `json:"location"`
	ItemKey   string `json:"item_key,omitempty"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// RegistryReloadedPayloadV1 is the typed payload for registry reload events
type RegistryReloadedPayloadV1 struct {
	Sources    []string `json:"sources"`
	Fish       int      `json:"fish"`
	Trash      int      `json:"trash"`
	Treasure   int      `json:"treasure"`
	Effects    int      `json:"effects"`
	Traits     int      `json:"traits"`
	Skipped    int      `json:"skipped"`
	DurationMs int64    `json:"duration_ms"`
}

func newEvent(t Type, payload interface{}, attemptID string) Event {
	var md Metadata
	if attemptID != "" {
		md = map[string]interface{}{MetadataKeyAttemptID: attemptID}
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: md,
	}
}

// NewFishCaughtEvent creates a fish caught event
func NewFishCaughtEvent(c domain.FishCatch, streak int, chance float64) Event {
	fc := c.Context
	return newEvent(FishCaught, CatchPayloadV1{
		AttemptID: fc.AttemptID,
		ActorID:   fc.Actor.ID,
		ItemKey:   c.Entry.FishKey.String(),
		Quality:   c.Quality,
		Size:      c.Size,
		Perfect:   c.State.Perfect,
		Treasure:  c.State.Treasure.String(),
		Legendary: c.IsLegendary,
		FromPond:  c.FromPond,
		Streak:    streak,
		Chance:    chance,
		Timestamp: time.Now().Unix(),
	}, fc.AttemptID)
}

// NewTrashCaughtEvent creates a trash caught event
func NewTrashCaughtEvent(c domain.TrashCatch) Event {
	fc := c.Context
	return newEvent(TrashCaught, CatchPayloadV1{
		AttemptID: fc.AttemptID,
		ActorID:   fc.Actor.ID,
		ItemKey:   c.Entry.ItemKey.String(),
		Quality:   c.Item.Quality,
		Treasure:  domain.TreasureNone.String(),
		FromPond:  c.FromPond,
		Timestamp: time.Now().Unix(),
	}, fc.AttemptID)
}

// NewFishLostEvent creates a lost fish event
func NewFishLostEvent(fc domain.FishingContext, fish domain.NamespacedKey, streakLost int) Event {
	return newEvent(FishLost, FishLostPayloadV1{
		AttemptID:  fc.AttemptID,
		ActorID:    fc.Actor.ID,
		FishKey:    fish.String(),
		StreakLost: streakLost,
		Timestamp:  time.Now().Unix(),
	}, fc.AttemptID)
}

// NewTreasureOpenedEvent creates a treasure opened event
func NewTreasureOpenedEvent(fc domain.FishingContext, items []domain.Item) Event {
	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, item.Key.String())
	}
	return newEvent(TreasureOpened, TreasureOpenedPayloadV1{
		AttemptID: fc.AttemptID,
		ActorID:   fc.Actor.ID,
		Items:     keys,
		Timestamp: time.Now().Unix(),
	}, fc.AttemptID)
}

// NewTrashFallbackEvent creates an event for a catch that fell back to the generic trash item
func NewTrashFallbackEvent(fc domain.FishingContext, reason string) Event {
	return newEvent(TrashFallback, FallbackPayloadV1{
		AttemptID: fc.AttemptID,
		ActorID:   fc.Actor.ID,
		Location:  fc.Location,
		ItemKey:   domain.QualifiedObjectGenericTrash,
		Reason:    reason,
		Timestamp: time.Now().Unix(),
	}, fc.AttemptID)
}

// NewPresentationFailedEvent creates an event for a minigame that could not be started
func NewPresentationFailedEvent(fc domain.FishingContext, item domain.NamespacedKey) Event {
	return newEvent(PresentationFailed, FallbackPayloadV1{
		AttemptID: fc.AttemptID,
		ActorID:   fc.Actor.ID,
		Location:  fc.Location,
		ItemKey:   item.String(),
		Reason:    ReasonPresenterDeclined,
		Timestamp: time.Now().Unix(),
	}, fc.AttemptID)
}

// NewRegistryReloadedEvent creates a registry reload event
func NewRegistryReloadedEvent(payload RegistryReloadedPayloadV1) Event {
	return newEvent(RegistryReloaded, payload, "")
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously, in subscription order
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorsFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Discard is a Bus that drops every event
type Discard struct{}

func (Discard) Publish(context.Context, Event) error { return nil }
func (Discard) Subscribe(Type, Handler)              {}
