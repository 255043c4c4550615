package registry

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/content"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/metrics"
)

// Fish is a fish entry with its availability compiled
type Fish struct {
	Entry domain.FishEntry
	Eval  *availability.Evaluator
}

// Trash is a trash entry with its availability compiled
type Trash struct {
	Entry domain.TrashEntry
	Eval  *availability.Evaluator
}

// Treasure is a treasure entry with its availability compiled
type Treasure struct {
	Entry domain.TreasureEntry
	Eval  *availability.Evaluator
}

// Effect is an effect entry with its availability compiled
type Effect struct {
	Entry domain.FishingEffectEntry
	Eval  *availability.Evaluator
}

// Snapshot is one immutable build of the registry
type Snapshot struct {
	Fish     []Fish
	Trash    []Trash
	Treasure []Treasure
	Effects  []Effect
	Sources  []string
	Skipped  int
	LoadedAt time.Time

	traits    map[domain.NamespacedKey]domain.FishTraits
	locations map[string]domain.LocationInfo
}

// Traits looks up the trait record of a fish
func (s *Snapshot) Traits(key domain.NamespacedKey) (domain.FishTraits, bool) {
	t, ok := s.traits[key.Normalize()]
	return t, ok
}

// TraitCount is the number of fish with trait records
func (s *Snapshot) TraitCount() int {
	return len(s.traits)
}

var empty = &Snapshot{
	traits:    map[domain.NamespacedKey]domain.FishTraits{},
	locations: map[string]domain.LocationInfo{},
}

// Registry holds every fish, trash, treasure and effect entry contributed by
// content sources. Reads are lock free; a reload builds a new snapshot and
// swaps it in.
type Registry struct {
	model    *availability.Model
	bus      event.Bus
	validate *validator.Validate

	mu      sync.Mutex
	sources []content.Source

	snapshot        atomic.Pointer[Snapshot]
	reloadRequested atomic.Bool
}

// New creates an empty registry. Call Reload to populate it.
func New(model *availability.Model, bus event.Bus) *Registry {
	if bus == nil {
		bus = event.Discard{}
	}
	r := &Registry{
		model:    model,
		bus:      bus,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	r.snapshot.Store(empty)
	return r
}

// Reload rebuilds the registry from sources, in order, replacing the sources
// used by later requested reloads. A source that fails contributes nothing;
// the rest still load and the error is returned after the swap.
func (r *Registry) Reload(ctx context.Context, sources ...content.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sources = slices.Clone(sources)
	r.reloadRequested.Store(false)
	return r.rebuild(ctx)
}

// RequestReload marks the registry stale. The reload runs at the next access.
func (r *Registry) RequestReload() {
	r.reloadRequested.Store(true)
}

// ReloadIfRequested runs a requested reload with the last set of sources
func (r *Registry) ReloadIfRequested(ctx context.Context) error {
	if !r.reloadRequested.Load() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.reloadRequested.CompareAndSwap(true, false) {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgDeferredReload)
	return r.rebuild(ctx)
}

// Current returns the current snapshot, first running any requested reload
func (r *Registry) Current(ctx context.Context) *Snapshot {
	if err := r.ReloadIfRequested(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgDeferredFailed, LogFieldError, err)
	}
	return r.snapshot.Load()
}

// FishEntries returns every fish entry
func (r *Registry) FishEntries(ctx context.Context) []Fish { return r.Current(ctx).Fish }

// TrashEntries returns every trash entry
func (r *Registry) TrashEntries(ctx context.Context) []Trash { return r.Current(ctx).Trash }

// TreasureEntries returns every treasure entry
func (r *Registry) TreasureEntries(ctx context.Context) []Treasure { return r.Current(ctx).Treasure }

// Effects returns every effect entry
func (r *Registry) Effects(ctx context.Context) []Effect { return r.Current(ctx).Effects }

// Traits looks up the trait record of a fish
func (r *Registry) Traits(ctx context.Context, key domain.NamespacedKey) (domain.FishTraits, bool) {
	return r.Current(ctx).Traits(key)
}

func (r *Registry) rebuild(ctx context.Context) error {
	log := logger.FromContext(ctx)
	start := time.Now()
	log.Debug(LogMsgReloadStarted, LogFieldCount, len(r.sources))

	b := builder{
		ctx:      ctx,
		model:    r.model,
		validate: r.validate,
		snap: &Snapshot{
			traits:    make(map[domain.NamespacedKey]domain.FishTraits),
			locations: make(map[string]domain.LocationInfo),
			LoadedAt:  start,
		},
	}

	var errs []error
	for _, src := range r.sources {
		b.source = src.Name()
		b.snap.Sources = append(b.snap.Sources, src.Name())

		c, err := src.Reload(ctx)
		if err != nil {
			log.Error(LogMsgSourceFailed, LogFieldSource, src.Name(), LogFieldError, err)
			errs = append(errs, fmt.Errorf(ErrMsgSourceFailed, domain.ErrSourceFailed, src.Name(), err))
			continue
		}
		b.add(c)
	}

	snap := b.snap
	r.snapshot.Store(snap)

	result := metrics.ResultSuccess
	if len(errs) > 0 {
		result = metrics.ResultFailure
	}
	metrics.RegistryReloads.WithLabelValues(result).Inc()

	elapsed := time.Since(start)
	log.Info(LogMsgReloadCompleted,
		LogFieldFish, len(snap.Fish),
		LogFieldTrash, len(snap.Trash),
		LogFieldTreasure, len(snap.Treasure),
		LogFieldEffects, len(snap.Effects),
		LogFieldTraits, len(snap.traits),
		LogFieldSkipped, snap.Skipped,
		LogFieldDuration, elapsed.Milliseconds())

	evt := event.NewRegistryReloadedEvent(event.RegistryReloadedPayloadV1{
		Sources:    slices.Clone(snap.Sources),
		Fish:       len(snap.Fish),
		Trash:      len(snap.Trash),
		Treasure:   len(snap.Treasure),
		Effects:    len(snap.Effects),
		Traits:     len(snap.traits),
		Skipped:    snap.Skipped,
		DurationMs: elapsed.Milliseconds(),
	})
	if err := r.bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgPublishFailed, LogFieldError, err)
	}

	return errors.Join(errs...)
}

// builder accumulates one reload
type builder struct {
	ctx      context.Context
	model    *availability.Model
	validate *validator.Validate
	source   string
	snap     *Snapshot
}

func (b *builder) add(c domain.FishingContent) {
	// Later sources replace whole trait records. Within one source, keys that
	// normalize alike resolve in key order.
	keys := slices.SortedFunc(maps.Keys(c.SetFishTraits), func(a, b domain.NamespacedKey) int {
		return cmp.Compare(a.String(), b.String())
	})
	for _, key := range keys {
		traits := c.SetFishTraits[key]
		if b.ok(metrics.KindTraits, key.String(), traits) {
			b.snap.traits[key.Normalize()] = traits
		}
	}
	for name, info := range c.SetLocations {
		if b.ok(metrics.KindLocation, name, info) {
			b.snap.locations[name] = info
		}
	}
	for _, e := range c.AddFish {
		if b.ok(metrics.KindFish, e.FishKey.String(), e) {
			b.snap.Fish = append(b.snap.Fish, Fish{Entry: e, Eval: b.compile(e.FishKey.String(), e.Availability.AvailabilityInfo)})
		}
	}
	for _, e := range c.AddTrash {
		if b.ok(metrics.KindTrash, e.ItemKey.String(), e) {
			b.snap.Trash = append(b.snap.Trash, Trash{Entry: e, Eval: b.compile(e.ItemKey.String(), e.Availability)})
		}
	}
	for _, e := range c.AddTreasure {
		e = e.WithQuantityDefaults()
		if b.ok(metrics.KindTreasure, e.Identity(), e) {
			b.snap.Treasure = append(b.snap.Treasure, Treasure{Entry: e, Eval: b.compile(e.Identity(), e.Availability)})
		}
	}
	for _, e := range c.AddEffects {
		if b.ok(metrics.KindEffect, string(e.Target), e) {
			b.snap.Effects = append(b.snap.Effects, Effect{Entry: e, Eval: b.compile(string(e.Target), e.Availability)})
		}
	}
}

// ok validates a record, recording a skip when it fails
func (b *builder) ok(kind, key string, record interface{}) bool {
	if err := b.validate.Struct(record); err != nil {
		logger.FromContext(b.ctx).Warn(LogMsgRecordInvalid,
			LogFieldSource, b.source,
			LogFieldKind, kind,
			LogFieldKey, key,
			LogFieldError, err)
		metrics.RegistrySkippedRecords.WithLabelValues(b.source, kind).Inc()
		b.snap.Skipped++
		return false
	}
	return true
}

// compile keeps entries with unknown conditions; their evaluator never passes
func (b *builder) compile(key string, info domain.AvailabilityInfo) *availability.Evaluator {
	eval, err := b.model.Compile(b.ctx, info)
	if err != nil {
		logger.FromContext(b.ctx).Warn(LogMsgPredicateInvalid,
			LogFieldSource, b.source,
			LogFieldKey, key,
			LogFieldError, err)
	}
	return eval
}

// IsAvailable reports whether the fish can be caught in fc
func (f Fish) IsAvailable(ctx context.Context, fc domain.FishingContext) bool {
	return f.Eval.IsAvailable(ctx, fc)
}

// Weight is the base chance scaled for the water depth
func (f Fish) Weight(fc domain.FishingContext) float64 {
	return f.Entry.Availability.Chance(fc.WaterDepth)
}

func (f Fish) Tier() int                 { return f.Entry.Availability.PriorityTier }
func (f Fish) Key() domain.NamespacedKey { return f.Entry.FishKey }

// IsAvailable reports whether the trash can be caught in fc
func (t Trash) IsAvailable(ctx context.Context, fc domain.FishingContext) bool {
	return t.Eval.IsAvailable(ctx, fc)
}

func (t Trash) Weight(domain.FishingContext) float64 { return t.Entry.Availability.BaseChance }
func (t Trash) Tier() int                            { return t.Entry.Availability.PriorityTier }
func (t Trash) Key() domain.NamespacedKey            { return t.Entry.ItemKey }

// IsAvailable reports whether the treasure can be looted in fc
func (t Treasure) IsAvailable(ctx context.Context, fc domain.FishingContext) bool {
	return t.Eval.IsAvailable(ctx, fc)
}

func (t Treasure) Weight(domain.FishingContext) float64 { return t.Entry.Availability.BaseChance }
func (t Treasure) Tier() int                            { return t.Entry.Availability.PriorityTier }

// IsActive reports whether the effect applies in fc
func (e Effect) IsActive(ctx context.Context, fc domain.FishingContext) bool {
	return e.Eval.IsAvailable(ctx, fc)
}
