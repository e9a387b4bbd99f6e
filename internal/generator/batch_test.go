package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchUniqueAcrossGames(t *testing.T) {
	g := newTestGenerator(t, DefaultSettings(), 77)

	for round := 0; round < 50; round++ {
		batch, err := g.DefaultBatch(History{})
		require.NoError(t, err)
		require.Len(t, batch.Games, 3)
		assert.False(t, batch.Partial())
		assert.Empty(t, batch.Warnings)
		assert.True(t, batch.Unique)

		seen := make(map[int]bool)
		for _, game := range batch.Games {
			assertGame(t, game.Numbers, FullPool())
			for _, n := range game.Numbers {
				seen[n] = true
			}
		}
		assert.Len(t, seen, 18)
	}
}

func TestBatchStopsWhenPoolRunsOut(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxBatchSize = 12
	settings.MaxAttempts = 500
	g := newTestGenerator(t, settings, 5)

	batch, err := g.Batch(11, true, History{})
	require.NoError(t, err)
	assert.Len(t, batch.Games, 10)
	assert.True(t, batch.Partial())
	require.Len(t, batch.Warnings, 1)
	assert.Contains(t, batch.Warnings[0], "after 10 games")

	all := batch.Numbers()
	assert.Len(t, all, 60)
	seen := make(map[int]bool)
	for _, n := range all {
		assert.False(t, seen[n], "%d repeated", n)
		seen[n] = true
	}
}

func TestBatchWithoutUniquenessUsesFullPool(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxBatchSize = 20
	g := newTestGenerator(t, settings, 9)

	batch, err := g.Batch(20, false, History{})
	require.NoError(t, err)
	assert.Len(t, batch.Games, 20)
	assert.False(t, batch.Unique)
	assert.Empty(t, batch.Warnings)

	// 120 numbers out of 60 must repeat somewhere
	seen := make(map[int]bool)
	for _, n := range batch.Numbers() {
		seen[n] = true
	}
	assert.Less(t, len(seen), 120)
}

func TestBatchRejectsBadSize(t *testing.T) {
	g := newTestGenerator(t, DefaultSettings(), 1)

	_, err := g.Batch(0, true, History{})
	assert.ErrorIs(t, err, ErrInvalidSettings)

	_, err = g.Batch(DefaultSettings().MaxBatchSize+1, true, History{})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestBatchAvoidsLastDraw(t *testing.T) {
	g := newTestGenerator(t, DefaultSettings(), 31)
	last := []int{5, 16, 27, 38, 49, 60}

	batch, err := g.DefaultBatch(History{LastDraw: last})
	require.NoError(t, err)
	for _, game := range batch.Games {
		if game.Provenance != ProvenanceStatistical {
			continue
		}
		shared := 0
		for _, n := range game.Numbers {
			for _, l := range last {
				if n == l {
					shared++
				}
			}
		}
		assert.LessOrEqual(t, shared, DefaultSettings().Filters.MaxLastDrawOverlap)
	}
}
