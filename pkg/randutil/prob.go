package randutil

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrNoItem is returned when a selection is requested from an empty
// ProbCalculator or RandomMap.
var ErrNoItem = errors.New("randutil: no item")

type weighted[T comparable] struct {
	rate int
	item T
}

type weightedRange[T comparable] struct {
	lo, hi int // half-open window [lo, hi)
	item   T
}

// ProbCalculator selects items at random according to their relative rates.
// Rates do not need to sum to any particular value; each item is chosen with
// probability rate/totalRate.
type ProbCalculator[T comparable] struct {
	precision int
	items     []weighted[T]
	ranges    []weightedRange[T]
	totalRate int
	stable    bool
}

// NewProbCalculator returns a calculator with the default precision of 100.
func NewProbCalculator[T comparable]() *ProbCalculator[T] {
	return &ProbCalculator[T]{precision: 100}
}

// Add registers item with the given selection rate.
func (p *ProbCalculator[T]) Add(rate int, item T) error {
	if rate <= 0 {
		return fmt.Errorf("randutil: rate must be positive, got %d", rate)
	}
	p.items = append(p.items, weighted[T]{rate: rate, item: item})
	p.totalRate += rate
	p.stable = false
	return nil
}

// Remove deletes the first registration of item.
func (p *ProbCalculator[T]) Remove(item T) {
	for i, w := range p.items {
		if w.item == item {
			p.items = append(p.items[:i], p.items[i+1:]...)
			p.totalRate -= w.rate
			p.stable = false
			return
		}
	}
}

func (p *ProbCalculator[T]) calculate() {
	if p.stable {
		return
	}
	p.ranges = p.ranges[:0]
	last := 0
	for _, w := range p.items {
		hi := w.rate*p.precision/p.totalRate + last
		p.ranges = append(p.ranges, weightedRange[T]{lo: last, hi: hi, item: w.item})
		last = hi
	}
	p.stable = true
}

// Get returns a randomly selected item.
func (p *ProbCalculator[T]) Get() (T, error) {
	var zero T
	if len(p.items) == 0 {
		return zero, ErrNoItem
	}
	p.calculate()
	n := rand.IntN(p.precision)
	for _, r := range p.ranges {
		if n >= r.lo && n < r.hi {
			return r.item, nil
		}
	}
	// rounding can leave a small uncovered tail; fall back to uniform choice
	return p.items[rand.IntN(len(p.items))].item, nil
}

// Pop selects an item and removes it from the calculator.
func (p *ProbCalculator[T]) Pop() (T, error) {
	item, err := p.Get()
	if err != nil {
		return item, err
	}
	p.Remove(item)
	return item, nil
}

// Empty reports whether the calculator has no items.
func (p *ProbCalculator[T]) Empty() bool {
	return len(p.items) == 0
}
