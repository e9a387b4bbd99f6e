package filters

import "fmt"

// Filter is one named predicate bound to its thresholds.
type Filter struct {
	Name   string
	Accept func(nums []int) bool
}

// Bank is the ordered set of active filters. A combination passes only when
// every filter accepts it.
type Bank []Filter

// NewBank binds the active filters of cfg. lastDraw feeds the anti-repetition
// filter and may be empty.
func NewBank(cfg Config, lastDraw []int) (Bank, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	last := append([]int(nil), lastDraw...)
	pairs := append([]ParityPair(nil), cfg.ParityPairs...)

	bank := make(Bank, 0, len(cfg.Active))
	for _, name := range cfg.Active {
		var accept func([]int) bool
		switch name {
		case NameSum:
			accept = func(n []int) bool { return SumInRange(n, cfg.SumMin, cfg.SumMax) }
		case NameParity:
			accept = func(n []int) bool { return ParityAccepted(n, pairs) }
		case NamePrimes:
			accept = func(n []int) bool { return PrimeCountInRange(n, cfg.PrimeMin, cfg.PrimeMax) }
		case NameQuadrants:
			accept = func(n []int) bool { return QuadrantSpread(n, cfg.MinQuadrants, cfg.MaxPerQuadrant) }
		case NameRows:
			accept = func(n []int) bool { return RowSpread(n, cfg.MaxPerRow) }
		case NameRun:
			accept = func(n []int) bool { return NoRun(n, cfg.RunWindow) }
		case NameEndings:
			accept = func(n []int) bool { return DigitVariety(n, cfg.MinDistinctEndings) }
		case NameLastDraw:
			accept = func(n []int) bool { return LastDrawOverlap(n, last, cfg.MaxLastDrawOverlap) }
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}
		bank = append(bank, Filter{Name: name, Accept: accept})
	}
	return bank, nil
}

// Accept stops at the first rejecting filter.
func (b Bank) Accept(nums []int) bool {
	for _, f := range b {
		if !f.Accept(nums) {
			return false
		}
	}
	return true
}

// Rejections lists the names of every filter that rejects nums.
func (b Bank) Rejections(nums []int) []string {
	var failed []string
	for _, f := range b {
		if !f.Accept(nums) {
			failed = append(failed, f.Name)
		}
	}
	return failed
}

// Names returns the active filter names in evaluation order.
func (b Bank) Names() []string {
	names := make([]string, len(b))
	for i, f := range b {
		names[i] = f.Name
	}
	return names
}
