package domain

// Item is a concrete item instance created by the host
type Item struct {
	Key      NamespacedKey `json:"key"`
	Name     string        `json:"name,omitempty"`
	Stack    int           `json:"stack"`
	Quality  int           `json:"quality"`
	Category string        `json:"category,omitempty"`
}

// TreasureState is the treasure outcome of a fish catch
type TreasureState int

const (
	TreasureNone TreasureState = iota
	TreasureNotCaught
	TreasureCaught
)

func (t TreasureState) String() string {
	switch t {
	case TreasureNotCaught:
		return "not_caught"
	case TreasureCaught:
		return "caught"
	default:
		return "none"
	}
}

// CatchState is how the minigame ended
type CatchState struct {
	Perfect  bool
	Treasure TreasureState
}

// CatchResult is either a FishCatch or a TrashCatch
type CatchResult interface {
	catchResult()
	CatchContext() FishingContext
	CaughtItem() Item
	IsFromPond() bool
}

// FishCatch is a landed fish
type FishCatch struct {
	Context     FishingContext
	Entry       FishEntry
	Item        Item
	Size        int
	IsLegendary bool
	Quality     int
	Difficulty  int
	State       CatchState
	FromPond    bool
	Quantity    int
}

// TrashCatch is a landed non-fish item
type TrashCatch struct {
	Context  FishingContext
	Entry    TrashEntry
	Item     Item
	FromPond bool
}

func (FishCatch) catchResult()  {}
func (TrashCatch) catchResult() {}

func (c FishCatch) CatchContext() FishingContext  { return c.Context }
func (c TrashCatch) CatchContext() FishingContext { return c.Context }

func (c FishCatch) CaughtItem() Item  { return c.Item }
func (c TrashCatch) CaughtItem() Item { return c.Item }

func (c FishCatch) IsFromPond() bool  { return c.FromPond }
func (c TrashCatch) IsFromPond() bool { return c.FromPond }

// PossibleCatch is the entry chosen when a fish bites: a PossibleFish or a PossibleTrash
type PossibleCatch interface {
	possibleCatch()
}

// PossibleFish is a fish entry chosen for the bite
type PossibleFish struct{ Entry FishEntry }

// PossibleTrash is a trash entry chosen for the bite
type PossibleTrash struct{ Entry TrashEntry }

func (PossibleFish) possibleCatch()  {}
func (PossibleTrash) possibleCatch() {}
