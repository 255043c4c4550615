package interaction

import (
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Effect is something the host must do after a step. The set of effects is closed.
type Effect interface {
	effect()
}

// ResetTool returns the rod and actor animation flags to neutral
type ResetTool struct{}

// ShowMessage shows a global message. Streak is the streak the message refers to.
type ShowMessage struct {
	Key    string
	Streak int
}

// GainExperience awards skill experience
type GainExperience struct {
	Skill  string
	Amount int
}

// PlaySound plays a sound at the actor's location
type PlaySound struct {
	Name string
}

// PullFromWater animates the caught item out of the water. The host signals
// PullComplete when it lands.
type PullFromWater struct {
	Item domain.Item
}

// RecordCatch updates the actor's collection and size records
type RecordCatch struct {
	Item     domain.Item
	Size     int
	FromPond bool
}

// AddToInventory gives an item to the actor
type AddToInventory struct {
	Item domain.Item
}

// OpenCollectionMenu shows items the actor could not carry
type OpenCollectionMenu struct {
	Items []domain.Item
}

// OpenTreasure presents a treasure chest. The host signals PresentationDone
// when the chest has opened.
type OpenTreasure struct {
	Items []domain.Item
}

// CustomEvent raises a content-defined event
type CustomEvent struct {
	Name string
}

// SetFlag sets a content-defined flag on the actor
type SetFlag struct {
	Name string
}

func (ResetTool) effect()          {}
func (ShowMessage) effect()        {}
func (GainExperience) effect()     {}
func (PlaySound) effect()          {}
func (PullFromWater) effect()      {}
func (RecordCatch) effect()        {}
func (AddToInventory) effect()     {}
func (OpenCollectionMenu) effect() {}
func (OpenTreasure) effect()       {}
func (CustomEvent) effect()        {}
func (SetFlag) effect()            {}

// catchActions turns an entry's catch actions into effects
func catchActions(actions *domain.CatchActions) []Effect {
	if actions == nil {
		return nil
	}
	out := make([]Effect, 0, len(actions.CustomEvents)+len(actions.SetFlags))
	for _, name := range actions.CustomEvents {
		out = append(out, CustomEvent{Name: name})
	}
	for _, name := range actions.SetFlags {
		out = append(out, SetFlag{Name: name})
	}
	return out
}
