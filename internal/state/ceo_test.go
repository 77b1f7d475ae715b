package state

import "testing"

func TestNewCEO(t *testing.T) {
	c := NewCEO(500)
	if c.Favorability != 50 {
		t.Fatalf("Favorability = %d, want 50", c.Favorability)
	}
	if c.RetirementThreshold != 500 {
		t.Fatalf("RetirementThreshold = %d, want 500", c.RetirementThreshold)
	}
	if c.Terminal() {
		t.Fatal("a fresh CEO is already terminal")
	}
}

func TestWithFavorabilityClamps(t *testing.T) {
	c := NewCEO(500)
	if got := c.WithFavorability(100).Favorability; got != 100 {
		t.Fatalf("high clamp: got %d, want 100", got)
	}
	if got := c.WithFavorability(-100).Favorability; got != 0 {
		t.Fatalf("low clamp: got %d, want 0", got)
	}
	if got := c.WithFavorability(-8).Favorability; got != 42 {
		t.Fatalf("plain delta: got %d, want 42", got)
	}
}

func TestWithEvilFloorsAtZero(t *testing.T) {
	c := NewCEO(500).WithEvil(3)
	if c.EvilScore != 3 {
		t.Fatalf("EvilScore = %d, want 3", c.EvilScore)
	}
	if got := c.WithEvil(-10).EvilScore; got != 0 {
		t.Fatalf("EvilScore after redemption = %d, want 0", got)
	}
}

func TestPressureRisesEveryTwoQuarters(t *testing.T) {
	tests := []struct {
		quarters int
		want     int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{9, 4},
	}
	for _, tt := range tests {
		c := NewCEO(500)
		for i := 0; i < tt.quarters; i++ {
			c = c.WithQuarterSurvived()
		}
		if c.PressureLevel != tt.want {
			t.Fatalf("after %d quarters: pressure = %d, want %d", tt.quarters, c.PressureLevel, tt.want)
		}
		if c.QuartersSurvived != tt.quarters {
			t.Fatalf("QuartersSurvived = %d, want %d", c.QuartersSurvived, tt.quarters)
		}
	}
}

func TestRetirementAccrual(t *testing.T) {
	c := NewCEO(10).WithRetirementAccrual(6)
	if c.CanRetire() {
		t.Fatal("CanRetire with bonus below threshold")
	}
	c = c.WithRetirementAccrual(-100)
	if c.RetirementBonus != 6 {
		t.Fatalf("negative accrual changed the bonus: %d", c.RetirementBonus)
	}
	c = c.WithRetirementAccrual(4)
	if !c.CanRetire() {
		t.Fatalf("CanRetire = false with bonus %d of %d", c.RetirementBonus, c.RetirementThreshold)
	}
}

func TestTerminalFlags(t *testing.T) {
	if !NewCEO(500).WithOusted().Terminal() {
		t.Fatal("ousted CEO is not terminal")
	}
	if !NewCEO(500).WithRetired().Terminal() {
		t.Fatal("retired CEO is not terminal")
	}
}
