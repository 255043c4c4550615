package chances

import (
	"context"
	"sort"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// Weighted pairs a value with a non-negative weight
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Entry is a registry entry the calculator can weigh
type Entry interface {
	IsAvailable(ctx context.Context, fc domain.FishingContext) bool
	Weight(fc domain.FishingContext) float64
	Tier() int
}

// WeightedEntries weighs every available entry and keeps only the highest
// priority tier that has at least one member. Lower tiers are dropped, not blended.
func WeightedEntries[E Entry](ctx context.Context, entries []E, fc domain.FishingContext) []Weighted[E] {
	var (
		out  []Weighted[E]
		best int
	)
	for _, e := range entries {
		if !e.IsAvailable(ctx, fc) {
			continue
		}
		tier := e.Tier()
		switch {
		case len(out) == 0 || tier > best:
			best = tier
			out = out[:0]
		case tier < best:
			continue
		}
		w := e.Weight(fc)
		if w < 0 {
			logger.FromContext(ctx).Debug(LogMsgNegativeWeight, LogFieldValue, w)
			w = 0
		}
		out = append(out, Weighted[E]{Value: e, Weight: w})
	}
	return out
}

// Total sums the weights, treating negative weights as zero
func Total[T any](ws []Weighted[T]) float64 {
	var total float64
	for _, w := range ws {
		total += max(0, w.Weight)
	}
	return total
}

// Normalize scales weights so they sum to 1. A set with no positive weight normalizes to empty.
func Normalize[T any](ws []Weighted[T]) []Weighted[T] {
	return NormalizeTo(ws, 1)
}

// NormalizeTo scales weights so they sum to total
func NormalizeTo[T any](ws []Weighted[T], total float64) []Weighted[T] {
	sum := Total(ws)
	if sum <= 0 {
		return nil
	}
	out := make([]Weighted[T], len(ws))
	for i, w := range ws {
		out[i] = Weighted[T]{Value: w.Value, Weight: max(0, w.Weight) / sum * total}
	}
	return out
}

// Map rewrites every weight with fn; results below zero become zero
func Map[T any](ws []Weighted[T], fn func(Weighted[T]) float64) []Weighted[T] {
	out := make([]Weighted[T], len(ws))
	for i, w := range ws {
		out[i] = Weighted[T]{Value: w.Value, Weight: max(0, fn(w))}
	}
	return out
}

// Choose draws one value by cumulative weight, consuming exactly one random
// number. It returns false without drawing when nothing has positive weight.
func Choose[T any](ws []Weighted[T], r utils.Random) (Weighted[T], bool) {
	idx, ok := ChooseIndex(ws, r)
	if !ok {
		return Weighted[T]{}, false
	}
	return ws[idx], true
}

// ChooseIndex is Choose returning the position of the drawn value
func ChooseIndex[T any](ws []Weighted[T], r utils.Random) (int, bool) {
	cumulative := make([]float64, len(ws))
	var total float64
	for i, w := range ws {
		total += max(0, w.Weight)
		cumulative[i] = total
	}
	if total <= 0 {
		return 0, false
	}

	roll := r.Float64() * total
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > roll })
	if idx == len(cumulative) {
		// Rounding pushed the roll past the end; take the last positive weight
		idx = len(cumulative) - 1
		for ws[idx].Weight <= 0 {
			idx--
		}
	}
	return idx, true
}

// Values strips the weights
func Values[T any](ws []Weighted[T]) []T {
	out := make([]T, len(ws))
	for i, w := range ws {
		out[i] = w.Value
	}
	return out
}
