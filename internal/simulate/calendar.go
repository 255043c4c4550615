package simulate

import (
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
)

// Calendar is a simulated in-game calendar. It advances one day every
// castsPerDay casts so recatch frequencies see time passing.
type Calendar struct {
	current     gametime.Date
	castsPerDay int
	casts       int
}

// NewCalendar creates a calendar starting at the given date. A zero date starts
// on the first day of the game.
func NewCalendar(start gametime.Date, castsPerDay int) *Calendar {
	if start.Day == 0 {
		start = gametime.FromTotalDays(1)
	}
	if castsPerDay <= 0 {
		castsPerDay = DefaultCastsPerDay
	}
	return &Calendar{current: start, castsPerDay: castsPerDay}
}

// Today returns the simulated date
func (c *Calendar) Today() gametime.Date {
	return c.current
}

// Cast counts a cast and reports whether it rolled the calendar over
func (c *Calendar) Cast() bool {
	c.casts++
	if c.casts%c.castsPerDay != 0 {
		return false
	}
	c.Advance(1)
	return true
}

// Advance moves the calendar forward by the given number of days
func (c *Calendar) Advance(days int) {
	if days <= 0 {
		return
	}
	c.current = gametime.FromTotalDays(c.current.TotalDays() + days)
}
