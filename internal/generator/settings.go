package generator

import (
	"errors"
	"fmt"

	"github.com/ArowuTest/luckygen/internal/filters"
)

// NumbersPerGame is the size of every combination.
const NumbersPerGame = 6

// AttemptCeiling bounds MaxAttempts so a batch always finishes well under a
// second.
const AttemptCeiling = 10000

var ErrInvalidSettings = errors.New("generator: invalid settings")

// Settings configures a Generator. It is an immutable value; copy it to
// change anything.
type Settings struct {
	// MaxAttempts is how many candidates a game may reject before falling
	// back to the least-frequent numbers.
	MaxAttempts int `json:"max_attempts"`
	// FrequencyThreshold is the historical count above which a number gets
	// one extra entry in the sampling pool.
	FrequencyThreshold int `json:"frequency_threshold"`
	// BatchSize is the default number of games in a batch.
	BatchSize int `json:"batch_size"`
	// MaxBatchSize caps what callers may request.
	MaxBatchSize int `json:"max_batch_size"`
	// UniqueAcrossBatch removes each game's numbers from the pool before
	// the next game, so no number repeats inside a batch.
	UniqueAcrossBatch bool `json:"unique_across_batch"`

	Filters filters.Config `json:"filters"`
}

// DefaultSettings is the stock tuning: three unique games, 3000
// attempts and a bonus entry above 280 historical hits.
func DefaultSettings() Settings {
	return Settings{
		MaxAttempts:        3000,
		FrequencyThreshold: 280,
		BatchSize:          3,
		MaxBatchSize:       10,
		UniqueAcrossBatch:  true,
		Filters:            filters.DefaultConfig(),
	}
}

func (s Settings) Validate() error {
	if s.MaxAttempts < 1 || s.MaxAttempts > AttemptCeiling {
		return fmt.Errorf("%w: max attempts %d outside 1..%d", ErrInvalidSettings, s.MaxAttempts, AttemptCeiling)
	}
	if s.FrequencyThreshold < 0 {
		return fmt.Errorf("%w: negative frequency threshold", ErrInvalidSettings)
	}
	if s.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be at least 1", ErrInvalidSettings)
	}
	if s.MaxBatchSize < s.BatchSize {
		return fmt.Errorf("%w: max batch size %d below batch size %d", ErrInvalidSettings, s.MaxBatchSize, s.BatchSize)
	}
	if err := s.Filters.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
