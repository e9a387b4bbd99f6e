package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	cases := []struct {
		n    int
		want Position
	}{
		{1, Position{Row: 1, Column: 1, Quadrant: 1}},
		{5, Position{Row: 1, Column: 5, Quadrant: 1}},
		{6, Position{Row: 1, Column: 6, Quadrant: 2}},
		{10, Position{Row: 1, Column: 10, Quadrant: 2}},
		{11, Position{Row: 2, Column: 1, Quadrant: 1}},
		{30, Position{Row: 3, Column: 10, Quadrant: 2}},
		{31, Position{Row: 4, Column: 1, Quadrant: 3}},
		{45, Position{Row: 5, Column: 5, Quadrant: 3}},
		{46, Position{Row: 5, Column: 6, Quadrant: 4}},
		{60, Position{Row: 6, Column: 10, Quadrant: 4}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Locate(tc.n), "ball %d", tc.n)
	}
}

func TestQuadrantSizes(t *testing.T) {
	counts := make(map[int]int)
	for n := 1; n <= MaxNumber; n++ {
		counts[Quadrant(n)]++
	}
	for q := 1; q <= 4; q++ {
		assert.Equal(t, 15, counts[q], "quadrant %d", q)
	}
}

func TestLocateIsStable(t *testing.T) {
	for n := 1; n <= MaxNumber; n++ {
		first := Locate(n)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Locate(n))
		}
	}
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(0))
	assert.True(t, Valid(1))
	assert.True(t, Valid(60))
	assert.False(t, Valid(61))
}
