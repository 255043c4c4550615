package interaction

import (
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Kind names a state
type Kind string

const (
	KindStart           Kind = "start"
	KindWaitingForBite  Kind = "waiting_for_bite"
	KindCaught          Kind = "caught"
	KindHolding         Kind = "holding"
	KindOpeningTreasure Kind = "opening_treasure"
)

// State is the interaction state of one actor. The set of states is closed.
type State interface {
	Kind() Kind
	state()
}

// Start is the idle state: the rod is not in the water
type Start struct{}

// WaitingForBite holds the context captured when the bobber landed. Minigame
// is set once a fish is hooked and the minigame is running.
type WaitingForBite struct {
	Context  domain.FishingContext
	Minigame *Minigame
}

// Caught is a landed item being pulled out of the water
type Caught struct {
	Context domain.FishingContext
	Result  domain.CatchResult
}

// Holding is the actor showing off the catch until they confirm
type Holding struct {
	Context domain.FishingContext
	Result  domain.CatchResult
}

// OpeningTreasure is the treasure chest being presented
type OpeningTreasure struct {
	Context domain.FishingContext
	Loot    []domain.Item
}

func (Start) Kind() Kind           { return KindStart }
func (WaitingForBite) Kind() Kind  { return KindWaitingForBite }
func (Caught) Kind() Kind          { return KindCaught }
func (Holding) Kind() Kind         { return KindHolding }
func (OpeningTreasure) Kind() Kind { return KindOpeningTreasure }

func (Start) state()           {}
func (WaitingForBite) state()  {}
func (Caught) state()          {}
func (Holding) state()         {}
func (OpeningTreasure) state() {}

// Minigame is a hooked fish while the reeling minigame runs
type Minigame struct {
	Handle        Handle
	Entry         domain.FishEntry
	Item          domain.Item
	Traits        domain.FishTraits
	Legendary     bool
	SizePercent   float64
	HasTreasure   bool
	InitialStreak int
	FishChance    float64
}

// Step is the outcome of a tick or signal: the new state and what the host should do
type Step struct {
	State   State
	Effects []Effect
}
