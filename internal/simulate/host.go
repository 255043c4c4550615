package simulate

import (
	"context"
	"fmt"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/interaction"
)

// presenter starts every minigame it is asked for
type presenter struct {
	started int
}

func (p *presenter) StartMinigame(_ context.Context, _ domain.FishingContext, _ domain.Item, _ float64, _ bool, _ []domain.NamespacedKey) (interaction.Handle, bool) {
	p.started++
	return interaction.Handle(fmt.Sprintf("minigame-%d", p.started)), true
}

// itemFactory creates a plain item for any key
type itemFactory struct{}

func (itemFactory) Create(_ context.Context, key domain.NamespacedKey, quantity int) (domain.Item, error) {
	if key.IsZero() {
		return domain.Item{}, domain.ErrItemNotFound
	}
	return domain.Item{Key: key, Name: key.String(), Stack: quantity}, nil
}

// inventory holds distinct item kinds up to a slot limit; zero slots is unlimited
type inventory struct {
	slots int
	held  map[string]int
}

func newInventory(slots int) *inventory {
	return &inventory{slots: slots, held: map[string]int{}}
}

func (inv *inventory) HasRoomFor(_ context.Context, _ string, item domain.Item) bool {
	if inv.slots <= 0 {
		return true
	}
	if _, ok := inv.held[item.Key.QualifiedID()]; ok {
		return true
	}
	return len(inv.held) < inv.slots
}

func (inv *inventory) add(item domain.Item) {
	inv.held[item.Key.QualifiedID()] += item.Stack
}
