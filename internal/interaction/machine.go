package interaction

import (
	"context"
	"fmt"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/fishing"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/treasure"
)

// Machine drives one actor's fishing interaction across host ticks. It is not
// safe for concurrent use; the host calls it from its update loop.
type Machine struct {
	actorID   string
	fishing   *fishing.Service
	presenter Presenter
	items     ItemFactory
	inventory Inventory

	state State
	tool  string
}

// NewMachine creates an idle machine for an actor
func NewMachine(actorID string, svc *fishing.Service, presenter Presenter, items ItemFactory, inventory Inventory) *Machine {
	return &Machine{
		actorID:   actorID,
		fishing:   svc,
		presenter: presenter,
		items:     items,
		inventory: inventory,
		state:     Start{},
	}
}

// ActorID returns the actor the machine belongs to
func (m *Machine) ActorID() string { return m.actorID }

// State returns the current state
func (m *Machine) State() State { return m.state }

func (m *Machine) step(s State, effects ...Effect) Step {
	m.state = s
	return Step{State: s, Effects: effects}
}

// Tick advances the machine with the host's view of the rod. A missing rod, a
// rod no longer in use or a different rod instance resets to Start.
func (m *Machine) Tick(ctx context.Context, obs Observation) Step {
	if obs.ToolID == "" || !obs.InUse || (m.tool != "" && obs.ToolID != m.tool) {
		return m.reset(ctx, obs.ToolID)
	}
	m.tool = obs.ToolID

	if _, idle := m.state.(Start); idle && obs.BobberInWater {
		fc := obs.Context
		if fc.Actor.ID == "" {
			fc.Actor.ID = m.actorID
		}
		fc = m.fishing.NewContext(ctx, fc)
		logger.FromContext(ctx).Debug(LogMsgWaitingForBite, LogFieldActor, m.actorID)
		return m.step(WaitingForBite{Context: fc})
	}
	return m.step(m.state)
}

func (m *Machine) reset(ctx context.Context, toolID string) Step {
	m.tool = toolID
	if _, idle := m.state.(Start); idle {
		return m.step(m.state)
	}
	logger.FromContext(ctx).Info(LogMsgToolReset, LogFieldActor, m.actorID, LogFieldState, m.state.Kind())
	return m.step(Start{}, ResetTool{})
}

// Signal advances the machine with a host event. Signals that do not apply to
// the current state are ignored.
func (m *Machine) Signal(ctx context.Context, sig Signal) Step {
	switch s := sig.(type) {
	case Nibble:
		if w, ok := m.state.(WaitingForBite); ok && w.Minigame == nil {
			return m.bite(ctx, w, s)
		}
	case MinigameStateChanged:
		if w, ok := m.state.(WaitingForBite); ok && w.Minigame != nil {
			return m.minigameChanged(w, s)
		}
	case MinigameFinished:
		if w, ok := m.state.(WaitingForBite); ok && w.Minigame != nil {
			return m.finish(ctx, w.Context, w.Minigame, s)
		}
	case PullComplete:
		if c, ok := m.state.(Caught); ok {
			return m.landed(c)
		}
	case Confirm:
		if h, ok := m.state.(Holding); ok {
			return m.confirm(ctx, h)
		}
	case PresentationDone:
		if o, ok := m.state.(OpeningTreasure); ok {
			return m.step(Start{}, GainExperience{Skill: SkillLuck, Amount: fishing.TreasureChestExperience(o.Context.WaterDepth)})
		}
	}

	logger.FromContext(ctx).Debug(LogMsgSignalIgnored,
		LogFieldActor, m.actorID,
		LogFieldState, m.state.Kind(),
		LogFieldSignal, fmt.Sprintf("%T", sig))
	return m.step(m.state)
}

// bite resolves what took the bait. Fish start the minigame; trash is caught at once.
func (m *Machine) bite(ctx context.Context, w WaitingForBite, n Nibble) Step {
	log := logger.FromContext(ctx)
	fc := w.Context

	if !n.PondFish.IsZero() {
		item, err := m.items.Create(ctx, n.PondFish, 1)
		if err == nil {
			return m.catchItem(ctx, domain.FishCatch{
				Context:  fc,
				Entry:    domain.FishEntry{FishKey: n.PondFish, Availability: domain.NewFishAvailability(0)},
				Item:     item,
				Size:     -1,
				FromPond: true,
				Quantity: 1,
			}, m.streak(ctx), 0)
		}
		log.Warn(LogMsgPondItemFailed, LogFieldItem, n.PondFish.String(), LogFieldError, err)
	}

	fishChance := m.fishing.FishChance(ctx, fc)
	var trash domain.TrashEntry
	switch p := m.fishing.PossibleCatch(ctx, fc).(type) {
	case domain.PossibleFish:
		item, err := m.items.Create(ctx, p.Entry.FishKey, 1)
		if err == nil {
			return m.hook(ctx, fc, p.Entry, item, n.FavoriteBait, fishChance)
		}
		log.Warn(LogMsgItemCreateFailed, LogFieldItem, p.Entry.FishKey.String(), LogFieldError, err)
		trash = m.fishing.PossibleTrash(ctx, fc).Entry
	case domain.PossibleTrash:
		trash = p.Entry
	default:
		trash = fishing.DefaultTrash()
	}

	item, err := m.items.Create(ctx, trash.ItemKey, 1)
	if err != nil {
		log.Warn(LogMsgItemCreateFailed, LogFieldItem, trash.ItemKey.String(), LogFieldError, err)
		m.fishing.Publish(ctx, event.NewTrashFallbackEvent(fc, event.ReasonItemCreateFailed))
		item = m.genericTrash(ctx)
	}

	// Trash breaks the perfect-catch streak
	m.setStreak(ctx, 0)
	return m.catchItem(ctx, domain.TrashCatch{Context: fc, Entry: trash, Item: item, FromPond: fc.FromPond}, 0, fishChance)
}

// hook rolls the size and treasure of a hooked fish and starts the minigame
func (m *Machine) hook(ctx context.Context, fc domain.FishingContext, entry domain.FishEntry, item domain.Item, favoriteBait bool, fishChance float64) Step {
	rng := m.fishing.Random()
	traits, _ := m.fishing.Traits(ctx, entry.FishKey)

	size := fishing.SizePercent(fc.WaterDepth, fc.Actor.FishingLevel, favoriteBait, rng)
	hasTreasure := fishing.HasTreasure(fc, m.fishing.TreasureChance(ctx, fc), rng)
	game := &Minigame{
		Entry:         entry,
		Item:          item,
		Traits:        traits,
		Legendary:     traits.IsLegendary,
		SizePercent:   size,
		HasTreasure:   hasTreasure,
		InitialStreak: m.streak(ctx),
		FishChance:    fishChance,
	}

	cfg := m.fishing.Config().Interaction
	if cfg.InstantCatch {
		return m.finish(ctx, fc, game, MinigameFinished{
			Caught:         true,
			Perfect:        true,
			TreasureCaught: hasTreasure && cfg.InstantCatchTreasure,
		}, PlaySound{Name: SoundFishHit})
	}

	handle, ok := m.presenter.StartMinigame(ctx, fc, item, size, hasTreasure, fc.Tackle)
	if !ok {
		logger.FromContext(ctx).Error(LogMsgMinigameFailed, LogFieldActor, m.actorID, LogFieldItem, entry.FishKey.String())
		m.fishing.Publish(ctx, event.NewPresentationFailedEvent(fc, entry.FishKey))
		return m.step(Start{}, ShowMessage{Key: MessageMinigameFailed}, ResetTool{})
	}
	game.Handle = handle
	return m.step(WaitingForBite{Context: fc, Minigame: game}, PlaySound{Name: SoundFishHit})
}

func (m *Machine) minigameChanged(w WaitingForBite, s MinigameStateChanged) Step {
	streak := w.Minigame.InitialStreak
	if !s.Perfect && s.Treasure == domain.TreasureNotCaught && m.fishing.QualityIncrease(streak) > 0 {
		return m.step(w, ShowMessage{Key: MessageStreakWarning, Streak: streak})
	}
	return m.step(w)
}

// finish applies the minigame outcome to the streak and the fish's quality
func (m *Machine) finish(ctx context.Context, fc domain.FishingContext, game *Minigame, result MinigameFinished, effects ...Effect) Step {
	streak := game.InitialStreak
	bonus := m.fishing.QualityIncrease(streak)

	if !result.Caught {
		if bonus > 0 {
			effects = append(effects, ShowMessage{Key: MessageStreakLost, Streak: streak})
		}
		m.setStreak(ctx, 0)
		m.fishing.Publish(ctx, event.NewFishLostEvent(fc, game.Entry.FishKey, streak))
		logger.FromContext(ctx).Info(LogMsgFishLost, LogFieldActor, m.actorID, LogFieldItem, game.Entry.FishKey.String(), LogFieldStreak, streak)
		return m.step(Start{}, append(effects, ResetTool{})...)
	}

	state := domain.CatchState{Perfect: result.Perfect, Treasure: domain.TreasureNone}
	if game.HasTreasure {
		state.Treasure = domain.TreasureNotCaught
		if result.TreasureCaught {
			state.Treasure = domain.TreasureCaught
		}
	}

	quality := fishing.BaseQuality(game.SizePercent)
	switch {
	case state.Perfect:
		streak++
		m.setStreak(ctx, streak)
		quality += m.fishing.QualityIncrease(streak) + 1
	case state.Treasure == domain.TreasureCaught:
		if bonus > 0 {
			effects = append(effects, ShowMessage{Key: MessageStreakRestored, Streak: streak})
		}
		quality += bonus
	default:
		if bonus > 0 {
			effects = append(effects, ShowMessage{Key: MessageStreakLost, Streak: streak})
		}
		streak = 0
		m.setStreak(ctx, 0)
	}
	quality = fishing.ClampQuality(quality)

	item := game.Item
	item.Quality = quality
	item.Stack = 1
	return m.catchItem(ctx, domain.FishCatch{
		Context:     fc,
		Entry:       game.Entry,
		Item:        item,
		Size:        fishing.FishSize(game.Traits, game.SizePercent),
		IsLegendary: game.Legendary,
		Quality:     quality,
		Difficulty:  game.Traits.Difficulty(),
		State:       state,
		FromPond:    fc.FromPond,
		Quantity:    1,
	}, streak, game.FishChance, effects...)
}

// catchItem lands a result: experience, catch history, events and the pull animation
func (m *Machine) catchItem(ctx context.Context, result domain.CatchResult, streak int, chance float64, effects ...Effect) Step {
	fc := result.CatchContext()
	item := result.CaughtItem()

	switch c := result.(type) {
	case domain.FishCatch:
		if !fc.IsFestival && !c.FromPond {
			xp := fishing.Experience(c.Quality, c.Difficulty, c.State.Treasure == domain.TreasureCaught, c.State.Perfect,
				c.IsLegendary, m.fishing.Config().Interaction.LegendaryExperienceMultiplier)
			effects = append(effects, GainExperience{Skill: SkillFishing, Amount: xp})
		}
		m.record(ctx, fc, c.Entry.FishKey)
		m.fishing.Publish(ctx, event.NewFishCaughtEvent(c, streak, chance))
		effects = append(effects, catchActions(c.Entry.OnCatch)...)
		logger.FromContext(ctx).Info(LogMsgCaught,
			LogFieldActor, m.actorID,
			LogFieldItem, c.Entry.FishKey.String(),
			LogFieldQuality, c.Quality,
			LogFieldPerfect, c.State.Perfect,
			LogFieldTreasure, c.State.Treasure.String())
	case domain.TrashCatch:
		m.record(ctx, fc, c.Entry.ItemKey)
		m.fishing.Publish(ctx, event.NewTrashCaughtEvent(c))
		effects = append(effects, catchActions(c.Entry.OnCatch)...)
		logger.FromContext(ctx).Info(LogMsgCaught, LogFieldActor, m.actorID, LogFieldItem, c.Entry.ItemKey.String())
	}

	effects = append(effects, PullFromWater{Item: item}, PlaySound{Name: SoundPullItem})
	return m.step(Caught{Context: fc, Result: result}, effects...)
}

// landed moves a pulled catch into the actor's hands
func (m *Machine) landed(c Caught) Step {
	var effects []Effect
	switch r := c.Result.(type) {
	case domain.FishCatch:
		effects = append(effects, RecordCatch{Item: r.Item, Size: r.Size, FromPond: r.FromPond})
		if r.IsLegendary {
			effects = append(effects, ShowMessage{Key: MessageLegendaryCaught})
		}
	case domain.TrashCatch:
		effects = append(effects, RecordCatch{Item: r.Item, FromPond: r.FromPond})
	}
	return m.step(Holding(c), effects...)
}

// confirm delivers the held item, opening the treasure chest if one was caught
func (m *Machine) confirm(ctx context.Context, h Holding) Step {
	fc := h.Context
	item := h.Result.CaughtItem()
	effects := []Effect{PlaySound{Name: SoundCoin}}

	fish, isFish := h.Result.(domain.FishCatch)
	if !isFish || fish.State.Treasure != domain.TreasureCaught {
		switch {
		case fc.IsFestival:
		case m.inventory.HasRoomFor(ctx, m.actorID, item):
			effects = append(effects, AddToInventory{Item: item})
		default:
			effects = append(effects, OpenCollectionMenu{Items: []domain.Item{item}})
		}
		return m.step(Start{}, effects...)
	}

	loot, actions := m.loot(ctx, fish)
	effects = append(effects, actions...)
	if m.inventory.HasRoomFor(ctx, m.actorID, item) {
		effects = append(effects, AddToInventory{Item: item})
	} else {
		loot = append(loot, item)
	}

	m.fishing.Publish(ctx, event.NewTreasureOpenedEvent(fc, loot))
	logger.FromContext(ctx).Info(LogMsgTreasureOpened, LogFieldActor, m.actorID, LogFieldCount, len(loot))
	effects = append(effects, PlaySound{Name: SoundOpenChest}, OpenTreasure{Items: loot})
	return m.step(OpeningTreasure{Context: fc, Loot: loot}, effects...)
}

// loot rolls and creates the chest contents. Items that cannot be created are skipped.
func (m *Machine) loot(ctx context.Context, c domain.FishCatch) ([]domain.Item, []Effect) {
	entries := m.fishing.PossibleTreasure(ctx, c)
	items := make([]domain.Item, 0, len(entries))
	var effects []Effect
	for _, entry := range entries {
		effects = append(effects, catchActions(entry.OnCatch)...)
		reward := treasure.Quantity(entry, m.fishing.Random())
		item, err := m.items.Create(ctx, reward.Item, reward.Quantity)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgLootCreateFailed, LogFieldItem, reward.Item.String(), LogFieldError, err)
			continue
		}
		items = append(items, item)
	}
	return items, effects
}

// genericTrash creates the item used when nothing else could be
func (m *Machine) genericTrash(ctx context.Context) domain.Item {
	key := domain.MustParseKey(domain.QualifiedObjectGenericTrash)
	item, err := m.items.Create(ctx, key, 1)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgGenericTrashFailed, LogFieldError, err)
		return domain.Item{Key: key, Stack: 1}
	}
	return item
}

func (m *Machine) streak(ctx context.Context) int {
	streak, err := m.fishing.Streak(ctx, m.actorID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgStreakFailed, LogFieldActor, m.actorID, LogFieldError, err)
	}
	return streak
}

func (m *Machine) setStreak(ctx context.Context, streak int) {
	if err := m.fishing.SetStreak(ctx, m.actorID, streak); err != nil {
		logger.FromContext(ctx).Warn(LogMsgStreakFailed, LogFieldActor, m.actorID, LogFieldError, err)
	}
}

func (m *Machine) record(ctx context.Context, fc domain.FishingContext, key domain.NamespacedKey) {
	if err := m.fishing.RecordCatch(ctx, m.actorID, key, fc.Date); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecordFailed, LogFieldActor, m.actorID, LogFieldItem, key.String(), LogFieldError, err)
	}
}
