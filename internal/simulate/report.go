package simulate

import (
	"fmt"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// Report summarizes a simulation run
type Report struct {
	ActorID        string         `json:"actor_id"`
	Seed           int64          `json:"seed"`
	Casts          int            `json:"casts"`
	FishCaught     int            `json:"fish_caught"`
	TrashCaught    int            `json:"trash_caught"`
	PondCaught     int            `json:"pond_caught"`
	FishLost       int            `json:"fish_lost"`
	Perfect        int            `json:"perfect"`
	Legendary      int            `json:"legendary"`
	TreasureOpened int            `json:"treasure_opened"`
	Overflowed     int            `json:"overflowed"`
	MaxStreak      int            `json:"max_streak"`
	FinalStreak    int            `json:"final_streak"`
	Experience     map[string]int `json:"experience"`
	Items          map[string]int `json:"items"`
	Messages       map[string]int `json:"messages,omitempty"`
	StartDate      gametime.Date  `json:"start_date"`
	EndDate        gametime.Date  `json:"end_date"`
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    time.Time      `json:"completed_at"`
	DurationMS     int64          `json:"duration_ms"`
	Error          string         `json:"error,omitempty"`
}

func newReport(actorID string, seed int64, start gametime.Date) *Report {
	return &Report{
		ActorID:    actorID,
		Seed:       seed,
		Experience: map[string]int{},
		Items:      map[string]int{},
		Messages:   map[string]int{},
		StartDate:  start,
		StartedAt:  time.Now(),
	}
}

// Complete stamps the end of the run
func (r *Report) Complete(end gametime.Date) {
	r.EndDate = end
	r.CompletedAt = time.Now()
	r.DurationMS = r.CompletedAt.Sub(r.StartedAt).Milliseconds()
}

// SetError records why the run stopped early
func (r *Report) SetError(err error) {
	r.Error = err.Error()
}

// FishRate is the share of casts that landed a fish
func (r *Report) FishRate() float64 {
	if r.Casts == 0 {
		return 0
	}
	return float64(r.FishCaught) / float64(r.Casts)
}

// TrashRate is the share of casts that landed trash
func (r *Report) TrashRate() float64 {
	if r.Casts == 0 {
		return 0
	}
	return float64(r.TrashCaught) / float64(r.Casts)
}

// Save writes the report as JSON
func (r *Report) Save(path string) error {
	if err := utils.SaveJSON(path, r); err != nil {
		return fmt.Errorf(ErrMsgSaveReport, path, err)
	}
	return nil
}
