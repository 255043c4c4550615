package chances

import (
	"fmt"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// Breakpoint adds Bonus once the streak reaches Streak
type Breakpoint struct {
	Streak int     `json:"streak" validate:"gte=0"`
	Bonus  float64 `json:"bonus"`
}

// Curve maps an actor and their perfect-catch streak to a chance
type Curve struct {
	BaseChance         float64      `json:"baseChance"`
	StreakChance       float64      `json:"streakChance"`
	FishingLevelChance float64      `json:"fishingLevelChance"`
	DailyLuckChance    float64      `json:"dailyLuckChance"`
	LuckLevelChance    float64      `json:"luckLevelChance"`
	MinChance          float64      `json:"minChance" validate:"gte=0,lte=1"`
	MaxChance          float64      `json:"maxChance" validate:"gte=0,lte=1"`
	Breakpoints        []Breakpoint `json:"breakpoints,omitempty" validate:"dive"`
}

// DefaultFishCurve is the chance that a bite is a fish rather than trash
func DefaultFishCurve() Curve {
	return Curve{
		BaseChance:         0.5,
		StreakChance:       0.005,
		FishingLevelChance: 0.025,
		DailyLuckChance:    1,
		LuckLevelChance:    0.01,
		MinChance:          0,
		MaxChance:          1,
	}
}

// DefaultTreasureCurve is the chance that a fish comes with a treasure chest
func DefaultTreasureCurve() Curve {
	return Curve{
		BaseChance:      0.15,
		StreakChance:    0.005,
		DailyLuckChance: 0.5,
		LuckLevelChance: 0.005,
		MinChance:       0,
		MaxChance:       0.5,
	}
}

// DefaultAdditionalLootCurve is the chance of each extra item in a chest
func DefaultAdditionalLootCurve() Curve {
	return Curve{
		BaseChance:      0.5,
		StreakChance:    0.005,
		DailyLuckChance: 0.5,
		LuckLevelChance: 0.005,
		MinChance:       0,
		MaxChance:       0.9,
	}
}

// Validate checks that the streak term and the breakpoints never decrease,
// so the curve stays monotonic in the streak
func (c Curve) Validate() error {
	if c.StreakChance < 0 {
		return fmt.Errorf(ErrMsgNegativeStreakChance, domain.ErrInvalidCurve, c.StreakChance)
	}
	for i := 1; i < len(c.Breakpoints); i++ {
		prev, cur := c.Breakpoints[i-1], c.Breakpoints[i]
		if cur.Streak < prev.Streak || cur.Bonus < prev.Bonus {
			return fmt.Errorf(ErrMsgBreakpointOrder, domain.ErrInvalidCurve, i, cur.Streak)
		}
	}
	return nil
}

// Unclamped is the raw chance before overrides and clamping
func (c Curve) Unclamped(actor domain.ActorInfo, streak int) float64 {
	return c.BaseChance +
		c.StreakChance*float64(streak) +
		c.FishingLevelChance*float64(actor.FishingLevel) +
		c.DailyLuckChance*actor.DailyLuck +
		c.LuckLevelChance*float64(actor.LuckLevel) +
		c.bonus(streak)
}

// bonus is the bonus of the highest breakpoint the streak has reached
func (c Curve) bonus(streak int) float64 {
	var b float64
	for _, bp := range c.Breakpoints {
		if bp.Streak <= streak {
			b = bp.Bonus
		}
	}
	return b
}

// Clamp bounds v by the curve's own limits
func (c Curve) Clamp(v float64) float64 {
	return Clamp(v, c.MinChance, c.MaxChance)
}

// Clamp bounds v to [lo, hi]. When overrides leave lo above hi, hi wins.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return hi
	}
	return utils.Clamp(v, lo, hi)
}
