package history

import (
	"time"

	"github.com/ArowuTest/luckygen/internal/generator"
)

// Status of the session snapshot.
type Status string

const (
	StatusPending  Status = "pending"
	StatusLoaded   Status = "loaded"
	StatusDegraded Status = "degraded"
)

// Snapshot is the historical data of one session. It is never modified
// after it is built.
type Snapshot struct {
	Frequencies generator.Frequencies `json:"frequencies"`
	LastDraw    []int                 `json:"last_draw"`
	Draws       int                   `json:"draws"`
	Skipped     int                   `json:"skipped"`
	Source      string                `json:"source"`
	Status      Status                `json:"status"`
	Warning     string                `json:"warning,omitempty"`
	LoadedAt    time.Time             `json:"loaded_at"`
}

// Build counts how often every number was drawn; the last draw is the final
// entry.
func Build(draws [][]int) Snapshot {
	freq := make(generator.Frequencies)
	for _, d := range draws {
		for _, n := range d {
			freq[n]++
		}
	}
	var last []int
	if len(draws) > 0 {
		last = append([]int(nil), draws[len(draws)-1]...)
	}
	return Snapshot{
		Frequencies: freq,
		LastDraw:    last,
		Draws:       len(draws),
		Status:      StatusLoaded,
	}
}

// History converts the snapshot into generator input.
func (s Snapshot) History() generator.History {
	return generator.History{Frequencies: s.Frequencies, LastDraw: s.LastDraw}
}

// Empty is the snapshot used before or instead of a successful load.
func Empty(status Status, warning string) Snapshot {
	return Snapshot{
		Frequencies: generator.Frequencies{},
		Status:      status,
		Warning:     warning,
	}
}
