package randutil

import (
	"errors"
	"testing"
)

func TestProbCalculatorEmpty(t *testing.T) {
	p := NewProbCalculator[string]()
	if !p.Empty() {
		t.Fatalf("expected empty calculator")
	}
	if _, err := p.Get(); !errors.Is(err, ErrNoItem) {
		t.Fatalf("expected ErrNoItem, got %v", err)
	}
}

func TestProbCalculatorRejectsBadRate(t *testing.T) {
	p := NewProbCalculator[string]()
	if err := p.Add(0, "x"); err == nil {
		t.Fatalf("expected error for zero rate")
	}
	if err := p.Add(-5, "x"); err == nil {
		t.Fatalf("expected error for negative rate")
	}
}

func TestProbCalculatorSingleItem(t *testing.T) {
	p := NewProbCalculator[string]()
	if err := p.Add(10, "only"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	for i := 0; i < 50; i++ {
		got, err := p.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "only" {
			t.Fatalf("unexpected item %q", got)
		}
	}
}

func TestProbCalculatorDistribution(t *testing.T) {
	p := NewProbCalculator[string]()
	for rate, item := range map[int]string{80: "common", 20: "rare"} {
		if err := p.Add(rate, item); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	counts := map[string]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		item, err := p.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		counts[item]++
	}
	if counts["common"] <= counts["rare"] {
		t.Fatalf("expected 'common' to dominate, got %v", counts)
	}
}

func TestProbCalculatorPop(t *testing.T) {
	p := NewProbCalculator[int]()
	for _, it := range []int{1, 2, 3} {
		if err := p.Add(10, it); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		item, err := p.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if seen[item] {
			t.Fatalf("item %d popped twice", item)
		}
		seen[item] = true
	}
	if !p.Empty() {
		t.Fatalf("expected calculator to be empty after popping all items")
	}
}

func TestProbCalculatorRemove(t *testing.T) {
	p := NewProbCalculator[string]()
	_ = p.Add(50, "a")
	_ = p.Add(50, "b")
	p.Remove("a")
	for i := 0; i < 20; i++ {
		got, err := p.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "b" {
			t.Fatalf("removed item selected: %q", got)
		}
	}
}
