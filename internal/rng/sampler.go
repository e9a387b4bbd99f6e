// internal/rng/sampler.go

package rng

import "errors"

var ErrPoolExhausted = errors.New("rng: not enough distinct numbers in pool")

// Shuffle permutes xs in place (Fisher-Yates).
func Shuffle(src Source, xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// PickDistinct shuffles a copy of seq and keeps the first count distinct
// values. seq may repeat numbers (weighted pools do); when the repeats leave
// fewer than count values, the rest are drawn uniformly from base.
//
// The result has exactly count distinct numbers, in draw order, unless base
// itself holds fewer than count distinct numbers, in which case
// ErrPoolExhausted is returned with what could be drawn.
func PickDistinct(src Source, seq, base []int, count int) ([]int, error) {
	if count <= 0 {
		return nil, errors.New("rng: must pick at least 1 number")
	}

	tmp := make([]int, len(seq))
	copy(tmp, seq)
	Shuffle(src, tmp)

	picked := make([]int, 0, count)
	seen := make(map[int]bool, count)
	for _, n := range tmp {
		if len(picked) == count {
			break
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		picked = append(picked, n)
	}

	if len(picked) < count {
		rest := make([]int, 0, len(base))
		for _, n := range base {
			if !seen[n] {
				seen[n] = true
				rest = append(rest, n)
			}
		}
		for len(picked) < count && len(rest) > 0 {
			i := src.Intn(len(rest))
			picked = append(picked, rest[i])
			rest[i] = rest[len(rest)-1]
			rest = rest[:len(rest)-1]
		}
	}

	if len(picked) < count {
		return picked, ErrPoolExhausted
	}
	return picked, nil
}
