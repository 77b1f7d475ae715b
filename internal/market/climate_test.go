package market

import "testing"

func TestClimateDeterminism(t *testing.T) {
	a := NewClimate(7)
	b := NewClimate(7)
	for q := 1; q <= 16; q++ {
		if a.At(q) != b.At(q) {
			t.Fatalf("quarter %d: same-seed climates diverged", q)
		}
	}
}

func TestClimateRange(t *testing.T) {
	c := NewClimate(3)
	for q := 1; q <= 40; q++ {
		v := c.At(q)
		if v < 0 || v >= 1 {
			t.Fatalf("quarter %d: climate %v out of [0, 1)", q, v)
		}
	}
}

func TestClimateVariesBySeed(t *testing.T) {
	a := NewClimate(1)
	b := NewClimate(2)
	for q := 1; q <= 16; q++ {
		if a.At(q) != b.At(q) {
			return
		}
	}
	t.Fatal("two seeds produced identical climate curves across 16 quarters")
}

func TestClimateVariesByQuarter(t *testing.T) {
	c := NewClimate(11)
	first := c.At(1)
	for q := 2; q <= 16; q++ {
		if c.At(q) != first {
			return
		}
	}
	t.Fatal("climate is flat across 16 quarters")
}
