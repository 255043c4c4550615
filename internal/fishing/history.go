package fishing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// StateStore is per-actor string storage
type StateStore interface {
	Get(ctx context.Context, actorID, key string) (string, bool, error)
	Set(ctx context.Context, actorID, key, value string) error
}

// History keeps an actor's fishing state: the perfect-catch streak and the
// date each item was last caught. All values are stored under the mod id.
type History struct {
	store  StateStore
	prefix string
}

// NewHistory creates a history over store
func NewHistory(store StateStore, modID string) *History {
	return &History{store: store, prefix: modID + stateKeyPrefix}
}

// StreakKey is the store key of the perfect-catch streak
func (h *History) StreakKey() string {
	return h.prefix + stateStreak
}

func (h *History) caughtKey(key domain.NamespacedKey) string {
	return h.prefix + stateCaught + key.Normalize().String()
}

// Streak returns the actor's perfect-catch streak. A missing or unparseable value is zero.
func (h *History) Streak(ctx context.Context, actorID string) (int, error) {
	raw, ok, err := h.store.Get(ctx, actorID, h.StreakKey())
	if err != nil {
		return 0, fmt.Errorf(ErrMsgStoreRead, domain.ErrStoreUnavailable, h.StreakKey(), err)
	}
	if !ok {
		return 0, nil
	}
	streak, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgStreakParse, LogFieldActor, actorID, LogFieldValue, raw)
		return 0, nil
	}
	return streak, nil
}

// SetStreak stores the actor's perfect-catch streak
func (h *History) SetStreak(ctx context.Context, actorID string, streak int) error {
	if err := h.store.Set(ctx, actorID, h.StreakKey(), strconv.Itoa(streak)); err != nil {
		return fmt.Errorf(ErrMsgStoreWrite, domain.ErrStoreUnavailable, h.StreakKey(), err)
	}
	return nil
}

// RecordCatch stores the date an item was caught
func (h *History) RecordCatch(ctx context.Context, actorID string, key domain.NamespacedKey, date gametime.Date) error {
	k := h.caughtKey(key)
	if err := h.store.Set(ctx, actorID, k, strconv.Itoa(date.TotalDays())); err != nil {
		return fmt.Errorf(ErrMsgStoreWrite, domain.ErrStoreUnavailable, k, err)
	}
	return nil
}

// LastCaught returns the date an item was last caught
func (h *History) LastCaught(ctx context.Context, actorID string, key domain.NamespacedKey) (gametime.Date, bool, error) {
	k := h.caughtKey(key)
	raw, ok, err := h.store.Get(ctx, actorID, k)
	if err != nil {
		return gametime.Date{}, false, fmt.Errorf(ErrMsgStoreRead, domain.ErrStoreUnavailable, k, err)
	}
	if !ok {
		return gametime.Date{}, false, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgHistoryParse, LogFieldActor, actorID, LogFieldKey, k, LogFieldValue, raw)
		return gametime.Date{}, false, nil
	}
	return gametime.FromTotalDays(days), true, nil
}
