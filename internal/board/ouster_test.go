package board

import (
	"testing"

	"github.com/talgya/boardroom/internal/rng"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		name             string
		favorability     int
		pressure         int
		quartersSurvived int
		evil             int
		met, grew        bool
		legacy           bool
		want             int
	}{
		{"safe standing short-circuits", 80, 10, 20, 50, false, false, false, 0},
		{"safe standing at the boundary", 55, 10, 20, 50, false, false, false, 0},
		{"mid-tenure slump", 30, 2, 9, 10, false, false, false, 3},
		{"honeymoon swallows the risk", 30, 0, 2, 10, false, false, false, 0},
		{"clean record helps", 24, 0, 9, 0, false, false, false, 1},
		{"slight drift helps less", 24, 0, 9, 3, false, false, false, 2},
		{"meeting the directive helps", 30, 2, 9, 10, true, false, false, 1},
		{"growth alone helps a little", 30, 2, 9, 10, false, true, false, 2},
		{"legacy flag applies both bonuses", 5, 8, 9, 10, false, false, true, 5},
		{"threshold caps at fourteen", 0, 40, 20, 50, false, false, false, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Threshold(tt.favorability, tt.pressure, tt.quartersSurvived,
				tt.evil, tt.met, tt.grew, tt.legacy)
			if got != tt.want {
				t.Fatalf("threshold = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRisk(t *testing.T) {
	tests := []struct {
		threshold, want int
	}{
		{0, 0},
		{3, 15},
		{14, 70},
		{20, 70},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := Risk(tt.threshold); got != tt.want {
			t.Fatalf("Risk(%d) = %d, want %d", tt.threshold, got, tt.want)
		}
	}
}

func TestRollForOuster(t *testing.T) {
	r := rng.New(21)
	for i := 0; i < 200; i++ {
		if RollForOuster(0, r) {
			t.Fatalf("draw %d: zero threshold ousted", i)
		}
	}
	for i := 0; i < 200; i++ {
		if !RollForOuster(20, r) {
			t.Fatalf("draw %d: threshold 20 failed to oust", i)
		}
	}
}
