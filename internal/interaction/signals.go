package interaction

import (
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Observation is what the host sees of the actor's rod on a tick
type Observation struct {
	// ToolID identifies the rod instance; empty when the actor holds no rod
	ToolID        string
	InUse         bool
	BobberInWater bool
	// Context is the host's view of the cast, completed by the fishing service
	Context domain.FishingContext
}

// Signal is a discrete host event. The set of signals is closed.
type Signal interface {
	signal()
}

// Nibble is a fish biting. PondFish is set when the bobber is in a fish pond
// with a fish ready; FavoriteBait when the rod's bait is the hooked fish's favorite.
type Nibble struct {
	PondFish     domain.NamespacedKey
	FavoriteBait bool
}

// MinigameStateChanged reports progress of the running minigame
type MinigameStateChanged struct {
	Perfect  bool
	Treasure domain.TreasureState
}

// MinigameFinished ends the minigame. Caught is false when the fish got away.
type MinigameFinished struct {
	Caught         bool
	Perfect        bool
	TreasureCaught bool
}

// PullComplete is the catch animation finishing
type PullComplete struct{}

// Confirm is the player dismissing the held catch
type Confirm struct{}

// PresentationDone is the treasure chest presentation finishing
type PresentationDone struct{}

func (Nibble) signal()               {}
func (MinigameStateChanged) signal() {}
func (MinigameFinished) signal()     {}
func (PullComplete) signal()         {}
func (Confirm) signal()              {}
func (PresentationDone) signal()     {}
