package generator

import (
	"sort"

	"github.com/ArowuTest/luckygen/internal/grid"
)

// Frequencies maps a ball number to how often it was drawn historically.
type Frequencies map[int]int

// History is the read-only historical input of a generation call. The zero
// value means no data: uniform sampling and no anti-repetition.
type History struct {
	Frequencies Frequencies
	LastDraw    []int
}

// FullPool returns every ball on the ticket.
func FullPool() []int {
	pool := make([]int, grid.MaxNumber)
	for i := range pool {
		pool[i] = i + 1
	}
	return pool
}

// BuildWeightedPool lists every pool number once and adds one extra entry
// for numbers drawn more than threshold times. It is a flat bonus, not a
// proportional weight.
func BuildWeightedPool(pool []int, freq Frequencies, threshold int) []int {
	weighted := make([]int, 0, len(pool))
	weighted = append(weighted, pool...)
	if len(freq) == 0 {
		return weighted
	}
	for _, n := range pool {
		if freq[n] > threshold {
			weighted = append(weighted, n)
		}
	}
	return weighted
}

// normalizePool drops duplicates and numbers off the ticket, ascending.
func normalizePool(pool []int) []int {
	seen := make(map[int]bool, len(pool))
	out := make([]int, 0, len(pool))
	for _, n := range pool {
		if !grid.Valid(n) || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func without(pool, used []int) []int {
	drop := make(map[int]bool, len(used))
	for _, n := range used {
		drop[n] = true
	}
	out := make([]int, 0, len(pool))
	for _, n := range pool {
		if !drop[n] {
			out = append(out, n)
		}
	}
	return out
}

// leastFrequent orders the pool by historical count, ties by number, and
// returns the first count numbers ascending.
func leastFrequent(pool []int, freq Frequencies, count int) []int {
	ordered := append([]int(nil), pool...)
	sort.SliceStable(ordered, func(i, j int) bool {
		fi, fj := freq[ordered[i]], freq[ordered[j]]
		if fi != fj {
			return fi < fj
		}
		return ordered[i] < ordered[j]
	})
	if count > len(ordered) {
		count = len(ordered)
	}
	picked := append([]int(nil), ordered[:count]...)
	sort.Ints(picked)
	return picked
}
