package gametime

import (
	"fmt"
	"strconv"
	"strings"
)

// Calendar constants
const (
	DaysPerSeason  = 28
	SeasonsPerYear = 4
	DaysPerWeek    = 7
	DaysPerYear    = DaysPerSeason * SeasonsPerYear
)

// Season is the index of a season within a year
type Season int

const (
	Spring Season = iota
	Summer
	Fall
	Winter
)

// Date is a day on the in-game calendar. Year and Day are 1-based.
type Date struct {
	Year   int    `json:"year"`
	Season Season `json:"season"`
	Day    int    `json:"day"`
}

// TotalDays returns the number of days since the start of the game; the first day is 1.
func (d Date) TotalDays() int {
	return (d.Year-1)*DaysPerYear + int(d.Season)*DaysPerSeason + d.Day
}

// FromTotalDays is the inverse of TotalDays
func FromTotalDays(total int) Date {
	if total < 1 {
		return Date{Year: 1, Season: Spring, Day: 1}
	}
	zero := total - 1
	return Date{
		Year:   zero/DaysPerYear + 1,
		Season: Season(zero % DaysPerYear / DaysPerSeason),
		Day:    zero%DaysPerSeason + 1,
	}
}

func (d Date) week() int   { return (d.TotalDays() - 1) / DaysPerWeek }
func (d Date) season() int { return (d.TotalDays() - 1) / DaysPerSeason }

func (d Date) String() string {
	return fmt.Sprintf("Y%d-S%d-D%d", d.Year, d.Season, d.Day)
}

// FrequencyKind is how often a limited catch becomes available again
type FrequencyKind int

const (
	FrequencyNever FrequencyKind = iota
	FrequencyDaily
	FrequencyEveryNDays
	FrequencyWeekly
	FrequencySeasonal
	FrequencyYearly
)

// Frequency is a recheck frequency. Days is only used by FrequencyEveryNDays.
type Frequency struct {
	Kind FrequencyKind
	Days int
}

// Common frequencies
var (
	Never    = Frequency{Kind: FrequencyNever}
	Daily    = Frequency{Kind: FrequencyDaily}
	Weekly   = Frequency{Kind: FrequencyWeekly}
	Seasonal = Frequency{Kind: FrequencySeasonal}
	Yearly   = Frequency{Kind: FrequencyYearly}
)

// EveryNDays returns a frequency that allows a recatch once n full days have passed
func EveryNDays(n int) Frequency {
	return Frequency{Kind: FrequencyEveryNDays, Days: n}
}

// ParseFrequency parses "never", "daily", "weekly", "seasonal", "yearly" or "every:N"
func ParseFrequency(s string) (Frequency, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "never":
		return Never, nil
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "seasonal":
		return Seasonal, nil
	case "yearly":
		return Yearly, nil
	}

	if rest, ok := strings.CutPrefix(v, "every:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return Never, fmt.Errorf(ErrMsgInvalidFrequencyFormat, ErrInvalidFrequency, s)
		}
		return EveryNDays(n), nil
	}

	return Never, fmt.Errorf(ErrMsgInvalidFrequencyFormat, ErrInvalidFrequency, s)
}

// CanRecatch reports whether an item last caught on last may be caught again on now
func (f Frequency) CanRecatch(last, now Date) bool {
	switch f.Kind {
	case FrequencyDaily:
		return now.TotalDays() > last.TotalDays()
	case FrequencyEveryNDays:
		return now.TotalDays()-last.TotalDays() >= f.Days
	case FrequencyWeekly:
		return now.week() > last.week()
	case FrequencySeasonal:
		return now.season() > last.season()
	case FrequencyYearly:
		return now.Year > last.Year
	default:
		return false
	}
}

func (f Frequency) String() string {
	switch f.Kind {
	case FrequencyDaily:
		return "daily"
	case FrequencyEveryNDays:
		return "every:" + strconv.Itoa(f.Days)
	case FrequencyWeekly:
		return "weekly"
	case FrequencySeasonal:
		return "seasonal"
	case FrequencyYearly:
		return "yearly"
	default:
		return "never"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for config files
func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
