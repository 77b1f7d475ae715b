package state

import (
	"errors"
	"testing"
)

func testCapital(value int) Capital {
	return NewCapital(value, 10, 8, 1)
}

func TestNewCapitalClampsInitial(t *testing.T) {
	if got := NewCapital(50, 10, 8, 1).Value; got != 10 {
		t.Fatalf("initial value = %d, want clamped 10", got)
	}
	if got := NewCapital(-3, 10, 8, 1).Value; got != 0 {
		t.Fatalf("initial value = %d, want clamped 0", got)
	}
}

func TestWithSpend(t *testing.T) {
	c := testCapital(5)

	spent, err := c.WithSpend(3)
	if err != nil {
		t.Fatalf("WithSpend(3): %v", err)
	}
	if spent.Value != 2 {
		t.Fatalf("value after spend = %d, want 2", spent.Value)
	}

	_, err = c.WithSpend(6)
	if !errors.Is(err, ErrInsufficientCapital) {
		t.Fatalf("WithSpend(6) error = %v, want ErrInsufficientCapital", err)
	}
	if c.Value != 5 {
		t.Fatalf("failed spend touched the ledger: %d", c.Value)
	}
}

func TestWithEarnSaturates(t *testing.T) {
	c := testCapital(9)
	if got := c.WithEarn(5).Value; got != 10 {
		t.Fatalf("value after earn = %d, want 10", got)
	}
}

func TestWithTurnEndAdjustments(t *testing.T) {
	tests := []struct {
		name  string
		value int
		org   Org
		want  int
	}{
		{"neutral org, no drift", 5, NewOrg(), 5},
		{"strong governance earns", 5, NewOrg().With(Governance, 10), 6},
		{"strong governance and alignment", 5, NewOrg().With(Governance, 10).With(Alignment, 10), 7},
		{"weak morale costs", 5, NewOrg().With(Morale, -25), 4},
		{"earn and loss cancel", 5, NewOrg().With(Governance, 10).With(Morale, -25), 5},
		{"hoarding decays", 9, NewOrg(), 8},
		{"earn over max still decays", 10, NewOrg().With(Governance, 10).With(Alignment, 10), 9},
		{"floor holds", 0, NewOrg().With(Morale, -25), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testCapital(tt.value).WithTurnEndAdjustments(tt.org).Value; got != tt.want {
				t.Fatalf("value = %d, want %d", got, tt.want)
			}
		})
	}
}
