// Package filters holds the plausibility checks a candidate combination must
// pass. Each check is a pure function over the numbers; Bank combines the
// configured ones.
package filters

import (
	"sort"

	"github.com/ArowuTest/luckygen/internal/grid"
)

// primes below 60.
var primes = map[int]bool{
	2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true,
	19: true, 23: true, 29: true, 31: true, 37: true, 41: true, 43: true,
	47: true, 53: true, 59: true,
}

// IsPrime reports whether n is one of the primes below 60.
func IsPrime(n int) bool {
	return primes[n]
}

func Sum(nums []int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

func CountEvens(nums []int) int {
	evens := 0
	for _, n := range nums {
		if n%2 == 0 {
			evens++
		}
	}
	return evens
}

func CountPrimes(nums []int) int {
	count := 0
	for _, n := range nums {
		if primes[n] {
			count++
		}
	}
	return count
}

// QuadrantCounts returns how many numbers fall in each quadrant (index 1-4).
func QuadrantCounts(nums []int) [5]int {
	var counts [5]int
	for _, n := range nums {
		counts[grid.Quadrant(n)]++
	}
	return counts
}

// DistinctQuadrants counts the quadrants touched by nums.
func DistinctQuadrants(nums []int) int {
	touched := 0
	for _, c := range QuadrantCounts(nums) {
		if c > 0 {
			touched++
		}
	}
	return touched
}

// DistinctEndings counts distinct last decimal digits.
func DistinctEndings(nums []int) int {
	var seen [10]bool
	count := 0
	for _, n := range nums {
		d := n % 10
		if !seen[d] {
			seen[d] = true
			count++
		}
	}
	return count
}

// Overlap counts numbers present in both slices.
func Overlap(nums, other []int) int {
	if len(other) == 0 {
		return 0
	}
	set := make(map[int]bool, len(other))
	for _, n := range other {
		set[n] = true
	}
	shared := 0
	for _, n := range nums {
		if set[n] {
			shared++
		}
	}
	return shared
}

// SumInRange accepts when the sum lies in [lo, hi].
func SumInRange(nums []int, lo, hi int) bool {
	s := Sum(nums)
	return s >= lo && s <= hi
}

// ParityAccepted accepts when the even/odd split matches one of pairs.
func ParityAccepted(nums []int, pairs []ParityPair) bool {
	evens := CountEvens(nums)
	odds := len(nums) - evens
	for _, p := range pairs {
		if p.Evens == evens && p.Odds == odds {
			return true
		}
	}
	return false
}

// PrimeCountInRange accepts when the number of primes lies in [lo, hi].
func PrimeCountInRange(nums []int, lo, hi int) bool {
	c := CountPrimes(nums)
	return c >= lo && c <= hi
}

// QuadrantSpread accepts when at least minQuadrants quadrants are touched and
// none holds more than maxPerQuadrant numbers.
func QuadrantSpread(nums []int, minQuadrants, maxPerQuadrant int) bool {
	touched := 0
	for _, c := range QuadrantCounts(nums) {
		if c > maxPerQuadrant {
			return false
		}
		if c > 0 {
			touched++
		}
	}
	return touched >= minQuadrants
}

// RowSpread accepts when no ticket row holds more than maxPerRow numbers.
func RowSpread(nums []int, maxPerRow int) bool {
	var counts [grid.Rows + 1]int
	for _, n := range nums {
		r := grid.Row(n)
		counts[r]++
		if counts[r] > maxPerRow {
			return false
		}
	}
	return true
}

// NoRun rejects window+1 consecutive integers. With the sorted numbers, any
// stretch of window+1 elements whose max-min equals window is a run. A window
// below 1 disables the check.
func NoRun(nums []int, window int) bool {
	if window < 1 {
		return true
	}
	sorted := nums
	if !sort.IntsAreSorted(nums) {
		sorted = append([]int(nil), nums...)
		sort.Ints(sorted)
	}
	k := window + 1
	for i := 0; i+k <= len(sorted); i++ {
		if sorted[i+k-1]-sorted[i] == k-1 {
			return false
		}
	}
	return true
}

// DigitVariety accepts when there are at least minEndings distinct last digits.
func DigitVariety(nums []int, minEndings int) bool {
	return DistinctEndings(nums) >= minEndings
}

// LastDrawOverlap accepts when nums share at most maxShared numbers with
// last. Without a last draw it always accepts.
func LastDrawOverlap(nums, last []int, maxShared int) bool {
	if len(last) == 0 {
		return true
	}
	return Overlap(nums, last) <= maxShared
}
