package treasure

import (
	"context"
	"slices"

	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// Options controls a single chest roll
type Options struct {
	// MaxItems caps the number of rewards; zero uses DefaultMaxItems
	MaxItems int
	// AllowDuplicates lets entries that allow duplicates be drawn more than once
	AllowDuplicates bool
	// InvertOnPerfect flips the distribution after a perfect catch so rare loot becomes common
	InvertOnPerfect bool
	Perfect         bool
	// AdditionalLootChance multiplies the continuation chance after every reward
	AdditionalLootChance float64
}

// Reward is one stack of items taken out of a chest
type Reward struct {
	Entry    domain.TreasureEntry
	Item     domain.NamespacedKey
	Quantity int
}

// Roll picks the entries in a chest. The first reward is guaranteed when
// anything is available; each further reward is kept with a chance that is
// multiplied by AdditionalLootChance every time. Every loop iteration draws the
// continuation roll and then the entry, in that order.
func Roll(ctx context.Context, possible []chances.Weighted[domain.TreasureEntry], opts Options, rng utils.Random) []domain.TreasureEntry {
	log := logger.FromContext(ctx)

	maxItems := opts.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	loot := slices.Clone(possible)
	if opts.InvertOnPerfect && opts.Perfect {
		loot = chances.Map(chances.Normalize(loot), func(w chances.Weighted[domain.TreasureEntry]) float64 {
			return 1 - w.Weight
		})
	}
	if len(loot) == 0 {
		log.Debug(LogMsgNoCandidates)
		return nil
	}

	var rewards []domain.TreasureEntry
	chance := 1.0
	for len(loot) > 0 && len(rewards) < maxItems && rng.Float64() <= chance {
		idx, ok := chances.ChooseIndex(loot, rng)
		if !ok {
			log.Debug(LogMsgZeroWeightAll, LogFieldCandidates, len(loot))
			break
		}
		entry := loot[idx].Value
		rewards = append(rewards, entry)

		if !opts.AllowDuplicates || !entry.AllowDuplicates {
			// additive sources can register the same chest entry more than once
			id := entry.Identity()
			loot = slices.DeleteFunc(loot, func(w chances.Weighted[domain.TreasureEntry]) bool {
				return w.Value.Identity() == id
			})
		}
		chance *= opts.AdditionalLootChance
	}

	log.Debug(LogMsgLootRolled, LogFieldRewards, len(rewards), LogFieldPerfect, opts.Perfect)
	return rewards
}

// Quantity picks one of the entry's items and a stack size in [MinQuantity, MaxQuantity]
func Quantity(entry domain.TreasureEntry, rng utils.Random) Reward {
	entry = entry.WithQuantityDefaults()
	reward := Reward{Entry: entry, Quantity: entry.MinQuantity}
	if len(entry.ItemKeys) > 0 {
		reward.Item = entry.ItemKeys[rng.IntN(len(entry.ItemKeys))]
	}
	if entry.MaxQuantity > entry.MinQuantity {
		reward.Quantity = utils.RandomInt(rng, entry.MinQuantity, entry.MaxQuantity+1)
	}
	return reward
}

// Resolve rolls a chest and sizes every reward
func Resolve(ctx context.Context, possible []chances.Weighted[domain.TreasureEntry], opts Options, rng utils.Random) []Reward {
	entries := Roll(ctx, possible, opts, rng)
	rewards := make([]Reward, len(entries))
	for i, e := range entries {
		rewards[i] = Quantity(e, rng)
	}
	return rewards
}
