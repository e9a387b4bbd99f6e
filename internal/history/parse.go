// Package history loads past draws and turns them into the frequency table
// and last-draw set the generator reads.
package history

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/grid"
)

var ErrMalformedHistory = errors.New("history: malformed draws document")

// ValidateDraw checks that nums is six distinct ticket numbers.
func ValidateDraw(nums []int) error {
	if len(nums) != generator.NumbersPerGame {
		return fmt.Errorf("history: draw has %d numbers, want %d", len(nums), generator.NumbersPerGame)
	}
	seen := make(map[int]bool, len(nums))
	for _, n := range nums {
		if !grid.Valid(n) {
			return fmt.Errorf("history: number %d outside 1..%d", n, grid.MaxNumber)
		}
		if seen[n] {
			return fmt.Errorf("history: number %d repeated", n)
		}
		seen[n] = true
	}
	return nil
}

// ParseDraws reads a JSON array of arrays of integers, oldest draw first.
// Entries that are not six distinct ticket numbers are skipped and counted;
// only a document that is not a JSON array is an error.
func ParseDraws(data []byte) ([][]int, int, error) {
	if !gjson.ValidBytes(data) {
		return nil, 0, fmt.Errorf("%w: invalid JSON", ErrMalformedHistory)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, 0, fmt.Errorf("%w: top level must be an array", ErrMalformedHistory)
	}

	var draws [][]int
	skipped := 0
	root.ForEach(func(_, entry gjson.Result) bool {
		nums, ok := parseEntry(entry)
		if ok {
			draws = append(draws, nums)
		} else {
			skipped++
		}
		return true
	})
	return draws, skipped, nil
}

func parseEntry(entry gjson.Result) ([]int, bool) {
	if !entry.IsArray() {
		return nil, false
	}
	var nums []int
	ok := true
	entry.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
			ok = false
			return false
		}
		nums = append(nums, int(v.Int()))
		return true
	})
	if !ok || ValidateDraw(nums) != nil {
		return nil, false
	}
	sort.Ints(nums)
	return nums, true
}
