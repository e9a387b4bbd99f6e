// Package generator produces six-number games that pass the filter bank,
// using bounded rejection sampling with a deterministic fallback.
package generator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ArowuTest/luckygen/internal/filters"
	"github.com/ArowuTest/luckygen/internal/rng"
)

var ErrInsufficientPool = errors.New("generator: pool holds fewer than 6 numbers")

// Provenance tells whether a game met every filter or came from the fallback.
type Provenance string

const (
	ProvenanceStatistical Provenance = "statistical"
	ProvenanceFallback    Provenance = "fallback"
)

// Result is one generated game.
type Result struct {
	Numbers    []int      `json:"numbers"`
	Provenance Provenance `json:"provenance"`
	Attempts   int        `json:"attempts"`
	Stats      Stats      `json:"stats"`
}

// Generator is safe for concurrent use when its Source is.
type Generator struct {
	settings Settings
	src      rng.Source
	log      logrus.FieldLogger
}

func New(settings Settings, src rng.Source, log logrus.FieldLogger) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidSettings)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Generator{settings: settings, src: src, log: log}, nil
}

func (g *Generator) Settings() Settings {
	return g.settings
}

// Game draws one combination from pool. It only fails when pool holds fewer
// than six distinct valid numbers; otherwise it always returns a game,
// falling back to the least-frequent numbers once MaxAttempts candidates
// have been rejected.
func (g *Generator) Game(pool []int, hist History) (Result, error) {
	bank, err := filters.NewBank(g.settings.Filters, hist.LastDraw)
	if err != nil {
		return Result{}, err
	}
	return g.game(normalizePool(pool), bank, hist.Frequencies)
}

func (g *Generator) game(pool []int, bank filters.Bank, freq Frequencies) (Result, error) {
	if len(pool) < NumbersPerGame {
		return Result{}, fmt.Errorf("%w: %d available", ErrInsufficientPool, len(pool))
	}

	weighted := BuildWeightedPool(pool, freq, g.settings.FrequencyThreshold)

	for attempt := 1; attempt <= g.settings.MaxAttempts; attempt++ {
		candidate, err := rng.PickDistinct(g.src, weighted, pool, NumbersPerGame)
		if err != nil {
			// pool was checked above, so this is a sampler bug
			return Result{}, fmt.Errorf("generator: sampling failed: %w", err)
		}
		sort.Ints(candidate)
		if bank.Accept(candidate) {
			return Result{
				Numbers:    candidate,
				Provenance: ProvenanceStatistical,
				Attempts:   attempt,
				Stats:      ComputeStats(candidate),
			}, nil
		}
	}

	nums := leastFrequent(pool, freq, NumbersPerGame)
	g.log.WithFields(logrus.Fields{
		"attempts":  g.settings.MaxAttempts,
		"pool_size": len(pool),
		"numbers":   nums,
	}).Warn("no candidate passed the filters, using least-frequent fallback")

	return Result{
		Numbers:    nums,
		Provenance: ProvenanceFallback,
		Attempts:   g.settings.MaxAttempts,
		Stats:      ComputeStats(nums),
	}, nil
}
