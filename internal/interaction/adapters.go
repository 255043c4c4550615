package interaction

import (
	"context"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Handle identifies a running minigame
type Handle string

// Presenter starts the reeling minigame. It returns false when the minigame
// could not be created; the attempt is then abandoned.
type Presenter interface {
	StartMinigame(ctx context.Context, fc domain.FishingContext, item domain.Item, sizePercent float64, hasTreasure bool, tackle []domain.NamespacedKey) (Handle, bool)
}

// ItemFactory creates item instances from keys
type ItemFactory interface {
	Create(ctx context.Context, key domain.NamespacedKey, quantity int) (domain.Item, error)
}

// Inventory is the actor's inventory
type Inventory interface {
	HasRoomFor(ctx context.Context, actorID string, item domain.Item) bool
}
