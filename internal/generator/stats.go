package generator

import "github.com/ArowuTest/luckygen/internal/filters"

// Stats summarizes a combination for display.
type Stats struct {
	Sum       int `json:"sum"`
	Evens     int `json:"evens"`
	Odds      int `json:"odds"`
	Primes    int `json:"primes"`
	Quadrants int `json:"quadrants"`
	Endings   int `json:"endings"`
}

func ComputeStats(nums []int) Stats {
	evens := filters.CountEvens(nums)
	return Stats{
		Sum:       filters.Sum(nums),
		Evens:     evens,
		Odds:      len(nums) - evens,
		Primes:    filters.CountPrimes(nums),
		Quadrants: filters.DistinctQuadrants(nums),
		Endings:   filters.DistinctEndings(nums),
	}
}

// Ball is one number of a game as the presentation layer shows it.
type Ball struct {
	Number    int  `json:"number"`
	Frequency int  `json:"frequency"`
	Drawn     bool `json:"drawn"`
}

// Annotate attaches the historical count to each number. Drawn is false for
// numbers that never came out.
func Annotate(nums []int, freq Frequencies) []Ball {
	balls := make([]Ball, len(nums))
	for i, n := range nums {
		c := freq[n]
		balls[i] = Ball{Number: n, Frequency: c, Drawn: c > 0}
	}
	return balls
}
