package filters

import (
	"errors"
	"fmt"
)

// Filter names accepted in Config.Active.
const (
	NameSum       = "sum"
	NameParity    = "parity"
	NamePrimes    = "primes"
	NameQuadrants = "quadrants"
	NameRows      = "rows"
	NameRun       = "run"
	NameEndings   = "endings"
	NameLastDraw  = "last_draw"
)

// AllNames lists every filter in evaluation order.
var AllNames = []string{
	NameSum, NameParity, NamePrimes, NameQuadrants,
	NameRows, NameRun, NameEndings, NameLastDraw,
}

var ErrUnknownFilter = errors.New("filters: unknown filter")

// ParityPair is an accepted (evens, odds) split.
type ParityPair struct {
	Evens int `json:"evens"`
	Odds  int `json:"odds"`
}

// Config holds the thresholds of every filter. The values are empirical and
// meant to be recalibrated, not derived.
type Config struct {
	SumMin             int          `json:"sum_min"`
	SumMax             int          `json:"sum_max"`
	ParityPairs        []ParityPair `json:"parity_pairs"`
	PrimeMin           int          `json:"prime_min"`
	PrimeMax           int          `json:"prime_max"`
	MinQuadrants       int          `json:"min_quadrants"`
	MaxPerQuadrant     int          `json:"max_per_quadrant"`
	MaxPerRow          int          `json:"max_per_row"`
	RunWindow          int          `json:"run_window"`
	MinDistinctEndings int          `json:"min_distinct_endings"`
	MaxLastDrawOverlap int          `json:"max_last_draw_overlap"`

	// Active is the ordered list of filters a bank evaluates.
	Active []string `json:"active"`
}

// DefaultConfig returns the thresholds tuned for the 6-of-60 game.
func DefaultConfig() Config {
	return Config{
		SumMin: 135,
		SumMax: 210,
		ParityPairs: []ParityPair{
			{Evens: 3, Odds: 3},
			{Evens: 2, Odds: 4},
			{Evens: 4, Odds: 2},
		},
		PrimeMin:           1,
		PrimeMax:           3,
		MinQuadrants:       3,
		MaxPerQuadrant:     3,
		MaxPerRow:          2,
		RunWindow:          2,
		MinDistinctEndings: 4,
		MaxLastDrawOverlap: 2,
		Active:             append([]string(nil), AllNames...),
	}
}

// Validate checks that the ranges are coherent and every active name exists.
func (c Config) Validate() error {
	if c.SumMin > c.SumMax {
		return fmt.Errorf("filters: sum range %d..%d is empty", c.SumMin, c.SumMax)
	}
	if c.PrimeMin > c.PrimeMax {
		return fmt.Errorf("filters: prime range %d..%d is empty", c.PrimeMin, c.PrimeMax)
	}
	for _, name := range c.Active {
		if !knownName(name) {
			return fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}
	}
	return nil
}

func knownName(name string) bool {
	for _, n := range AllNames {
		if n == name {
			return true
		}
	}
	return false
}
