package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ArowuTest/luckygen/internal/filters"
)

// Batch is a group of games generated together.
type Batch struct {
	Games     []Result `json:"games"`
	Requested int      `json:"requested"`
	Unique    bool     `json:"unique"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Partial reports whether the batch stopped before producing every game.
func (b Batch) Partial() bool {
	return len(b.Games) < b.Requested
}

// Numbers returns every number used by the batch, in game order.
func (b Batch) Numbers() []int {
	var all []int
	for _, g := range b.Games {
		all = append(all, g.Numbers...)
	}
	return all
}

// DefaultBatch generates BatchSize games under the configured policy.
func (g *Generator) DefaultBatch(hist History) (Batch, error) {
	return g.Batch(g.settings.BatchSize, g.settings.UniqueAcrossBatch, hist)
}

// Batch generates up to games combinations. With unique set, every game's
// numbers leave the pool before the next one is drawn, so no number appears
// twice in the batch; once fewer than six numbers remain the batch stops
// with a warning and returns what it has. Without unique, each game draws
// from the full ticket.
//
// Errors are only returned for a bad request or filter configuration.
func (g *Generator) Batch(games int, unique bool, hist History) (Batch, error) {
	if games < 1 || games > g.settings.MaxBatchSize {
		return Batch{}, fmt.Errorf("%w: batch of %d games outside 1..%d", ErrInvalidSettings, games, g.settings.MaxBatchSize)
	}
	bank, err := filters.NewBank(g.settings.Filters, hist.LastDraw)
	if err != nil {
		return Batch{}, err
	}

	batch := Batch{Requested: games, Unique: unique, Games: make([]Result, 0, games)}
	pool := FullPool()

	for i := 0; i < games; i++ {
		if len(pool) < NumbersPerGame {
			msg := fmt.Sprintf("only %d numbers left after %d games; batch stopped early", len(pool), i)
			batch.Warnings = append(batch.Warnings, msg)
			g.log.WithFields(logrus.Fields{
				"requested": games,
				"generated": i,
				"remaining": len(pool),
			}).Warn("insufficient pool for batch")
			break
		}

		res, err := g.game(pool, bank, hist.Frequencies)
		if err != nil {
			return batch, err
		}
		batch.Games = append(batch.Games, res)

		if unique {
			pool = without(pool, res.Numbers)
		}
	}
	return batch, nil
}
