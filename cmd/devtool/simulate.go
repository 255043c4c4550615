package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/interaction"
	"github.com/osse101/FishingOverhaul_Go/internal/simulate"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

const topItems = 10

type SimulateCommand struct{}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Fish many casts offline and summarize the catches"
}

// simulateFlags are the parsed command line of the simulate command
type simulateFlags struct {
	opts     simulate.Options
	contents string
	out      string
	season   string
	weather  string
	water    string
}

func parseSimulateFlags(args []string) (simulateFlags, error) {
	f := simulateFlags{opts: simulate.DefaultOptions()}
	o := &f.opts

	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.IntVar(&o.Casts, "casts", o.Casts, "number of casts")
	fs.IntVar(&o.CastsPerDay, "casts-per-day", o.CastsPerDay, "casts before the calendar advances a day")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed; zero picks one from the clock")
	fs.Float64Var(&o.CatchRate, "catch-rate", o.CatchRate, "chance the player lands a hooked fish")
	fs.Float64Var(&o.PerfectRate, "perfect-rate", o.PerfectRate, "chance a landed fish is perfect")
	fs.Float64Var(&o.TreasureRate, "treasure-rate", o.TreasureRate, "chance the player grabs a treasure chest")
	fs.IntVar(&o.InventorySlots, "slots", 0, "inventory slots; zero is unlimited")
	fs.StringVar(&o.ActorID, "actor", o.ActorID, "actor id")
	fs.StringVar(&o.Context.Location, "location", o.Context.Location, "location name")
	fs.IntVar(&o.Context.Time, "time", o.Context.Time, "time of day (600-2600)")
	fs.IntVar(&o.Context.WaterDepth, "depth", o.Context.WaterDepth, "water depth (0-10)")
	fs.IntVar(&o.Context.Actor.FishingLevel, "level", 0, "fishing level")
	fs.IntVar(&o.Context.Actor.LuckLevel, "luck", 0, "luck level")
	fs.IntVar(&o.Context.Actor.FishCaughtCount, "caught", 10, "fish caught before the run")
	fs.StringVar(&f.season, "season", "spring", "season")
	fs.StringVar(&f.weather, "weather", "sunny", "weather")
	fs.StringVar(&f.water, "water", "river", "water type")
	fs.StringVar(&f.contents, "dir", "", "extra content directory")
	fs.StringVar(&f.out, "out", "", "write the JSON report to this path")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	var err error
	if o.Context.Seasons, err = domain.ParseSeasons(f.season); err != nil {
		return f, err
	}
	if o.Context.Weathers, err = domain.ParseWeathers(f.weather); err != nil {
		return f, err
	}
	if o.Context.WaterTypes, err = domain.ParseWaterTypes(f.water); err != nil {
		return f, err
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return f, nil
}

func (c *SimulateCommand) Run(ctx context.Context, args []string) error {
	f, err := parseSimulateFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	e, err := newEngine(ctx, cfg, f.opts.Seed, f.contents)
	if err != nil {
		return err
	}
	if e.reloadErr != nil {
		PrintWarning("Some content failed to load: %v", e.reloadErr)
	}

	PrintHeader(fmt.Sprintf("Simulating %d casts at %s (seed %d)", f.opts.Casts, f.opts.Context.Location, f.opts.Seed))
	// The player draws from its own source, separate from the catch rolls
	report, err := simulate.Run(ctx, e.service, utils.NewSeededRandom(f.opts.Seed+1), f.opts)
	if report != nil {
		printReport(report)
		if f.out != "" {
			if saveErr := report.Save(f.out); saveErr != nil {
				return saveErr
			}
			PrintSuccess("Report written to %s", f.out)
		}
	}
	return err
}

func printReport(r *simulate.Report) {
	PrintRow("Casts", r.Casts)
	PrintRow("Fish", fmt.Sprintf("%d (%.1f%%)", r.FishCaught, r.FishRate()*100))
	PrintRow("Trash", fmt.Sprintf("%d (%.1f%%)", r.TrashCaught, r.TrashRate()*100))
	PrintRow("Lost", r.FishLost)
	PrintRow("Perfect", r.Perfect)
	PrintRow("Legendary", r.Legendary)
	PrintRow("Treasure chests", r.TreasureOpened)
	PrintRow("Max streak", r.MaxStreak)
	PrintRow("Fishing XP", r.Experience[interaction.SkillFishing])
	PrintRow("Luck XP", r.Experience[interaction.SkillLuck])
	PrintRow("Days", fmt.Sprintf("%s to %s", r.StartDate, r.EndDate))

	keys := make([]string, 0, len(r.Items))
	for k := range r.Items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if r.Items[keys[i]] != r.Items[keys[j]] {
			return r.Items[keys[i]] > r.Items[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > topItems {
		keys = keys[:topItems]
	}
	PrintInfo("Top items: %s", strings.Join(formatCounts(keys, r.Items), ", "))
	if r.Error != "" {
		PrintWarning("Stopped early: %s", r.Error)
	}
}

func formatCounts(keys []string, counts map[string]int) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("%s x%d", k, counts[k])
	}
	return out
}
