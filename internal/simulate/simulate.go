// Package simulate drives the fishing interaction through many casts with a
// scripted host and tallies what an actor would have caught.
package simulate

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/fishing"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/interaction"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// Options controls a simulation run. The rates are the scripted player's odds
// of landing a hooked fish, of a perfect catch and of grabbing the treasure.
type Options struct {
	ActorID        string        `validate:"required,max=100"`
	Casts          int           `validate:"gte=1,lte=1000000"`
	CastsPerDay    int           `validate:"gte=0"`
	CatchRate      float64       `validate:"gte=0,lte=1"`
	PerfectRate    float64       `validate:"gte=0,lte=1"`
	TreasureRate   float64       `validate:"gte=0,lte=1"`
	InventorySlots int           `validate:"gte=0"`
	Seed           int64         `validate:"-"`
	StartDate      gametime.Date `validate:"-"`
	// Context is the cast every attempt starts from
	Context domain.FishingContext `validate:"-"`
}

// DefaultOptions returns options for a short run in the town river
func DefaultOptions() Options {
	return Options{
		ActorID:      DefaultActorID,
		Casts:        DefaultCasts,
		CastsPerDay:  DefaultCastsPerDay,
		CatchRate:    DefaultCatchRate,
		PerfectRate:  DefaultPerfectRate,
		TreasureRate: DefaultCatchRate,
		Context: domain.FishingContext{
			Location:   "Town",
			Time:       1200,
			Seasons:    domain.SeasonSpring,
			Weathers:   domain.WeatherSunny,
			WaterTypes: domain.WaterRiver,
			WaterDepth: 5,
		},
	}
}

var validate = validator.New()

type runner struct {
	opts     Options
	svc      *fishing.Service
	rng      utils.Random
	machine  *interaction.Machine
	inv      *inventory
	calendar *Calendar
	report   *Report
}

// Run casts opts.Casts times. The service draws the catches; rng drives the
// scripted player. On cancellation or a stuck cast the partial report is
// returned with the error.
func Run(ctx context.Context, svc *fishing.Service, rng utils.Random, opts Options) (*Report, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidOptions, ErrInvalidOptions, err)
	}

	inv := newInventory(opts.InventorySlots)
	calendar := NewCalendar(opts.StartDate, opts.CastsPerDay)
	r := &runner{
		opts:     opts,
		svc:      svc,
		rng:      rng,
		machine:  interaction.NewMachine(opts.ActorID, svc, &presenter{}, itemFactory{}, inv),
		inv:      inv,
		calendar: calendar,
		report:   newReport(opts.ActorID, opts.Seed, calendar.Today()),
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSimulationStarted, LogFieldActor, opts.ActorID, LogFieldCasts, opts.Casts)

	for n := range opts.Casts {
		if err := ctx.Err(); err != nil {
			return r.stop(ctx, err)
		}
		if err := r.cast(ctx, n); err != nil {
			return r.stop(ctx, err)
		}
	}

	r.report.FinalStreak = r.streak(ctx)
	r.report.Complete(r.calendar.Today())
	log.Info(LogMsgSimulationFinished,
		LogFieldActor, opts.ActorID,
		LogFieldCasts, r.report.Casts,
		LogFieldFish, r.report.FishCaught,
		LogFieldTrash, r.report.TrashCaught,
		LogFieldLost, r.report.FishLost,
		LogFieldTreasure, r.report.TreasureOpened,
		LogFieldDuration, r.report.DurationMS)
	return r.report, nil
}

func (r *runner) stop(ctx context.Context, err error) (*Report, error) {
	r.report.SetError(err)
	r.report.Complete(r.calendar.Today())
	logger.FromContext(ctx).Warn(LogMsgSimulationStopped, LogFieldActor, r.opts.ActorID, LogFieldCasts, r.report.Casts, LogFieldError, err)
	return r.report, err
}

// cast runs one attempt from bobber landing until the machine is idle again
func (r *runner) cast(ctx context.Context, n int) error {
	fc := r.opts.Context.Clone()
	fc.Actor.ID = r.opts.ActorID
	fc.Date = r.calendar.Today()

	step := r.machine.Tick(ctx, interaction.Observation{
		ToolID:        SimulatedRodID,
		InUse:         true,
		BobberInWater: true,
		Context:       fc,
	})
	r.apply(step)

	for range maxSignalsPerCast {
		if _, idle := step.State.(interaction.Start); idle {
			r.report.Casts++
			if streak := r.streak(ctx); streak > r.report.MaxStreak {
				r.report.MaxStreak = streak
			}
			if r.calendar.Cast() {
				logger.FromContext(ctx).Debug(LogMsgDayAdvanced, LogFieldDate, r.calendar.Today().String())
			}
			return nil
		}
		step = r.machine.Signal(ctx, r.respond(step.State))
		r.apply(step)
	}
	return fmt.Errorf(ErrMsgCastStuck, ErrCastStuck, n, step.State.Kind())
}

// respond is the scripted host's answer to a state
func (r *runner) respond(state interaction.State) interaction.Signal {
	switch s := state.(type) {
	case interaction.WaitingForBite:
		if s.Minigame == nil {
			return interaction.Nibble{}
		}
		if r.rng.Float64() >= r.opts.CatchRate {
			r.report.FishLost++
			return interaction.MinigameFinished{}
		}
		return interaction.MinigameFinished{
			Caught:         true,
			Perfect:        r.rng.Float64() < r.opts.PerfectRate,
			TreasureCaught: s.Minigame.HasTreasure && r.rng.Float64() < r.opts.TreasureRate,
		}
	case interaction.Caught:
		return interaction.PullComplete{}
	case interaction.Holding:
		return interaction.Confirm{}
	case interaction.OpeningTreasure:
		return interaction.PresentationDone{}
	}
	return interaction.Confirm{}
}

// apply tallies a step's landed catch and effects
func (r *runner) apply(step interaction.Step) {
	if c, ok := step.State.(interaction.Caught); ok {
		r.tally(c.Result)
	}
	for _, effect := range step.Effects {
		switch e := effect.(type) {
		case interaction.GainExperience:
			r.report.Experience[e.Skill] += e.Amount
		case interaction.AddToInventory:
			r.inv.add(e.Item)
			r.collect(e.Item)
		case interaction.OpenCollectionMenu:
			r.report.Overflowed += len(e.Items)
			for _, item := range e.Items {
				r.collect(item)
			}
		case interaction.OpenTreasure:
			r.report.TreasureOpened++
			for _, item := range e.Items {
				r.collect(item)
			}
		case interaction.ShowMessage:
			r.report.Messages[e.Key]++
		}
	}
}

func (r *runner) tally(result domain.CatchResult) {
	switch c := result.(type) {
	case domain.FishCatch:
		if c.FromPond {
			r.report.PondCaught++
			return
		}
		r.report.FishCaught++
		if c.State.Perfect {
			r.report.Perfect++
		}
		if c.IsLegendary {
			r.report.Legendary++
		}
	case domain.TrashCatch:
		r.report.TrashCaught++
	}
}

func (r *runner) collect(item domain.Item) {
	r.report.Items[item.Key.QualifiedID()] += item.Stack
}

func (r *runner) streak(ctx context.Context) int {
	streak, _ := r.svc.Streak(ctx, r.opts.ActorID)
	return streak
}
