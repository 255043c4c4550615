package fishing

import (
	"context"

	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
	"github.com/osse101/FishingOverhaul_Go/internal/treasure"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// Service answers what a cast can produce: chances, the possible catch and
// treasure, traits and the actor's streak.
type Service struct {
	*History

	registry  *registry.Registry
	bus       event.Bus
	rng       utils.Random
	cfg       config.Fishing
	hooks     *Hooks
	locations chances.LocationResolver
}

// Option configures a Service
type Option func(*Service)

// WithLocationResolver resolves location synonyms for new contexts and
// enables map location overrides
func WithLocationResolver(resolver chances.LocationResolver) Option {
	return func(s *Service) {
		s.locations = resolver
		s.hooks.ContextCreated.Add(chances.StageMapOverride, chances.MapOverride(resolver, s.rng))
	}
}

// WithHooks lets the caller add stages after the standard ones
func WithHooks(fn func(*Hooks)) Option {
	return func(s *Service) { fn(s.hooks) }
}

// NewService creates a service with the standard overrides installed: magic
// bait, curiosity lure and content effects. Targeted bait is applied after all hooks.
func NewService(reg *registry.Registry, history *History, bus event.Bus, rng utils.Random, cfg config.Fishing, opts ...Option) *Service {
	if bus == nil {
		bus = event.Discard{}
	}
	s := &Service{
		History:  history,
		registry: reg,
		bus:      bus,
		rng:      rng,
		cfg:      cfg,
		hooks:    NewHooks(),
	}

	s.hooks.ContextCreated.Add(chances.StageMagicBait, chances.MagicBait())
	s.hooks.FishPrepared.Add(chances.StageCuriosityLure, chances.CuriosityLure[registry.Fish]())
	for _, target := range effectTargets {
		s.hooks.chancePipeline(target).Add(chances.StageEffects, s.effectStage(target))
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the gameplay configuration
func (s *Service) Config() config.Fishing { return s.cfg }

// Random returns the shared randomness source
func (s *Service) Random() utils.Random { return s.rng }

// Bus returns the event bus
func (s *Service) Bus() event.Bus { return s.bus }

// NewContext finishes a host-provided context for a new cast: it assigns an
// attempt id, resolves the location list and runs the ContextCreated hooks.
func (s *Service) NewContext(ctx context.Context, fc domain.FishingContext) domain.FishingContext {
	fc = fc.Clone()
	if fc.AttemptID == "" {
		fc.AttemptID = logger.GenerateRequestID()
	}
	if len(fc.Locations) == 0 && fc.Location != "" {
		if s.locations != nil {
			fc.Locations = s.locations.LocationNames(ctx, fc.Location)
		}
		if len(fc.Locations) == 0 {
			fc.Locations = []string{fc.Location}
		}
	}
	fc = s.hooks.ContextCreated.Run(ctx, fc, fc)
	logger.FromContext(ctx).Debug(LogMsgContextCreated, LogFieldActor, fc.Actor.ID, LogFieldLocation, fc.Location)
	return fc
}

func (s *Service) prepare(ctx context.Context, fc domain.FishingContext) domain.FishingContext {
	return s.hooks.BeforePrepare.Run(ctx, fc, fc)
}

// FishChances weighs the available fish of the highest tier, runs the
// FishPrepared hooks and finally applies targeted bait.
func (s *Service) FishChances(ctx context.Context, fc domain.FishingContext) []chances.Weighted[registry.Fish] {
	fc = s.prepare(ctx, fc)
	ws := chances.WeightedEntries(ctx, s.registry.FishEntries(ctx), fc)
	ws = s.hooks.FishPrepared.Run(ctx, fc, ws)
	return chances.TargetedBaitWeights[registry.Fish](s.cfg.Fish.TargetedBaitMultiplier)(ctx, fc, ws)
}

// TrashChances weighs the available trash of the highest tier
func (s *Service) TrashChances(ctx context.Context, fc domain.FishingContext) []chances.Weighted[registry.Trash] {
	fc = s.prepare(ctx, fc)
	ws := chances.WeightedEntries(ctx, s.registry.TrashEntries(ctx), fc)
	return s.hooks.TrashPrepared.Run(ctx, fc, ws)
}

// TreasureChances weighs the available treasure of the highest tier
func (s *Service) TreasureChances(ctx context.Context, fc domain.FishingContext) []chances.Weighted[registry.Treasure] {
	fc = s.prepare(ctx, fc)
	ws := chances.WeightedEntries(ctx, s.registry.TreasureEntries(ctx), fc)
	ws = s.hooks.TreasurePrepared.Run(ctx, fc, ws)
	logger.FromContext(ctx).Debug(LogMsgTreasureCandidate, LogFieldCount, len(ws))
	return ws
}

// streak reads the streak for a calculation; store errors count as no streak
func (s *Service) streak(ctx context.Context, actorID string) int {
	streak, err := s.Streak(ctx, actorID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgStreakRead, LogFieldActor, actorID, LogFieldError, err)
	}
	return streak
}

// FishChance is the chance that a bite is a fish rather than trash
func (s *Service) FishChance(ctx context.Context, fc domain.FishingContext) float64 {
	curve := s.cfg.Fish.Chance
	chance := curve.Unclamped(fc.Actor, s.streak(ctx, fc.Actor.ID))
	chance = s.hooks.FishChanceCalculated.Run(ctx, fc, chance)
	if !fc.BaitTarget.IsZero() {
		chance = chances.TargetedBaitChance(fc, chances.WeightedEntries(ctx, s.registry.FishEntries(ctx), s.prepare(ctx, fc)), chance)
	}
	return s.clamp(ctx, fc, chance, curve, s.hooks.MinFishChance, s.hooks.MaxFishChance)
}

// TreasureChance is the chance that a caught fish comes with a treasure chest
func (s *Service) TreasureChance(ctx context.Context, fc domain.FishingContext) float64 {
	curve := s.cfg.Treasure.Chance
	chance := curve.Unclamped(fc.Actor, s.streak(ctx, fc.Actor.ID))
	chance = s.hooks.TreasureChanceCalculated.Run(ctx, fc, chance)
	return s.clamp(ctx, fc, chance, curve, s.hooks.MinTreasureChance, s.hooks.MaxTreasureChance)
}

func (s *Service) clamp(ctx context.Context, fc domain.FishingContext, v float64, curve chances.Curve, minHook, maxHook *chances.Pipeline[float64]) float64 {
	lo := minHook.Run(ctx, fc, curve.MinChance)
	hi := maxHook.Run(ctx, fc, curve.MaxChance)
	return chances.Clamp(v, lo, hi)
}

// PossibleCatch chooses what bites. Fish weights are scaled to the fish
// chance and share one draw with a "nothing" slot; on nothing, trash is drawn.
// When no trash is available either, the generic trash item is used.
func (s *Service) PossibleCatch(ctx context.Context, fc domain.FishingContext) domain.PossibleCatch {
	log := logger.FromContext(ctx)

	fishChance := s.FishChance(ctx, fc)
	fish := chances.NormalizeTo(s.FishChances(ctx, fc), fishChance)

	options := make([]chances.Weighted[domain.PossibleCatch], 0, len(fish)+1)
	for _, f := range fish {
		options = append(options, chances.Weighted[domain.PossibleCatch]{Value: domain.PossibleFish{Entry: f.Value.Entry}, Weight: f.Weight})
	}
	options = append(options, chances.Weighted[domain.PossibleCatch]{Weight: 1 - fishChance})

	if chosen, ok := chances.Choose(options, s.rng); ok && chosen.Value != nil {
		log.Debug(LogMsgCatchChosen, LogFieldKind, kindFish, LogFieldChance, fishChance)
		return chosen.Value
	}

	log.Debug(LogMsgCatchChosen, LogFieldKind, kindTrash, LogFieldChance, fishChance)
	return s.PossibleTrash(ctx, fc)
}

// PossibleTrash draws from the available trash. When none is available the
// generic trash item is used and a fallback event is published.
func (s *Service) PossibleTrash(ctx context.Context, fc domain.FishingContext) domain.PossibleTrash {
	if trash, ok := chances.Choose(s.TrashChances(ctx, fc), s.rng); ok {
		return domain.PossibleTrash{Entry: trash.Value.Entry}
	}

	logger.FromContext(ctx).Warn(LogMsgNoTrash, LogFieldLocation, fc.Location)
	s.publish(ctx, event.NewTrashFallbackEvent(fc, event.ReasonNoCatch))
	return domain.PossibleTrash{Entry: DefaultTrash()}
}

// DefaultTrash is the entry used when nothing else could be caught
func DefaultTrash() domain.TrashEntry {
	return domain.TrashEntry{
		ItemKey:      domain.MustParseKey(domain.QualifiedObjectGenericTrash),
		Availability: domain.NewAvailability(0),
	}
}

// PossibleTreasure rolls the contents of the chest that came with a catch
func (s *Service) PossibleTreasure(ctx context.Context, c domain.FishCatch) []domain.TreasureEntry {
	fc := c.Context
	cfg := s.cfg.Treasure

	possible := s.TreasureChances(ctx, fc)
	loot := make([]chances.Weighted[domain.TreasureEntry], len(possible))
	for i, w := range possible {
		loot[i] = chances.Weighted[domain.TreasureEntry]{Value: w.Value.Entry, Weight: w.Weight}
	}

	additional := cfg.AdditionalLootChance.Clamp(cfg.AdditionalLootChance.Unclamped(fc.Actor, s.streak(ctx, fc.Actor.ID)))
	return treasure.Roll(ctx, loot, treasure.Options{
		MaxItems:             cfg.MaxTreasureQuantity,
		AllowDuplicates:      cfg.AllowDuplicateLoot,
		InvertOnPerfect:      cfg.InvertChancesOnPerfectCatch,
		Perfect:              c.State.Perfect,
		AdditionalLootChance: additional,
	}, s.rng)
}

// Traits returns a fish's traits with the global dart frequency factor applied
func (s *Service) Traits(ctx context.Context, key domain.NamespacedKey) (domain.FishTraits, bool) {
	traits, ok := s.registry.Traits(ctx, key)
	if !ok {
		return domain.FishTraits{}, false
	}
	traits.DartFrequency = int(s.cfg.Fish.GlobalDartFrequencyFactor * float64(traits.DartFrequency))
	return traits, true
}

// IsLegendary reports whether a fish is legendary
func (s *Service) IsLegendary(ctx context.Context, key domain.NamespacedKey) bool {
	traits, ok := s.Traits(ctx, key)
	return ok && traits.IsLegendary
}

// QualityIncrease is the quality bonus a streak earns
func (s *Service) QualityIncrease(streak int) int {
	return s.cfg.Fish.QualityIncrease(streak)
}

// effectStage applies every active content effect aimed at target, in registry order
func (s *Service) effectStage(target domain.EffectTarget) chances.StageFunc[float64] {
	return func(ctx context.Context, fc domain.FishingContext, v float64) float64 {
		for _, e := range s.registry.Effects(ctx) {
			if e.Entry.Target == target && e.IsActive(ctx, fc) {
				v = e.Entry.Apply(v)
			}
		}
		return v
	}
}

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, LogFieldKind, evt.Type, LogFieldError, err)
	}
}

// Publish sends an event on the service's bus, logging failures
func (s *Service) Publish(ctx context.Context, evt event.Event) {
	s.publish(ctx, evt)
}
