package board

import (
	"testing"

	"github.com/talgya/boardroom/internal/state"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		last, current int
		met           bool
		pressure      int
		streak        int
		want          int
	}{
		{"met and grew", 100, 120, true, 1, 0, 8},
		{"met but flat", 100, 100, true, 1, 0, 4},
		{"met but declined", 100, 90, true, 1, 0, 1},
		{"missed under light pressure", 100, 105, false, 1, 0, -5},
		{"missed under heavy pressure", 100, 105, false, 4, 0, -8},
		{"missed and declined", 100, 90, false, 2, 0, -9},
		{"one weak quarter dents a win", 100, 120, true, 1, 1, 7},
		{"two weak quarters cap at two", 100, 120, true, 1, 2, 2},
		{"three weak quarters cap at zero", 100, 120, true, 1, 3, 0},
		{"four weak quarters stay at zero", 100, 120, true, 1, 4, 0},
		{"streak leaves losses alone", 100, 90, false, 1, 3, -8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.last, tt.current, tt.met, tt.pressure, 0, tt.streak)
			if got != tt.want {
				t.Fatalf("Calculate = %+d, want %+d", got, tt.want)
			}
		})
	}
}

func TestLowMeterAdjustment(t *testing.T) {
	tests := []struct {
		name string
		org  state.Org
		want MeterAdjustment
	}{
		{
			"healthy org",
			state.NewOrg(),
			MeterAdjustment{},
		},
		{
			"one weak meter caps gains",
			state.NewOrg().With(state.Runway, -35),
			MeterAdjustment{MaxGain: 2, Capped: true, Message: "lingering weakness tempers the board's praise"},
		},
		{
			"one critical meter",
			state.NewOrg().With(state.Delivery, -45),
			MeterAdjustment{Capped: true, Penalty: 2, Message: "a critical weakness overshadows the quarter"},
		},
		{
			"two critical meters",
			state.NewOrg().With(state.Delivery, -45).With(state.Morale, -42),
			MeterAdjustment{Capped: true, Penalty: 5, Crisis: true, Message: "the organization is in crisis; the board is alarmed"},
		},
		{
			"a zeroed meter alone is a crisis",
			state.NewOrg().With(state.Runway, -50),
			MeterAdjustment{Capped: true, Penalty: 5, Crisis: true, Message: "the organization is in crisis; the board is alarmed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowMeterAdjustment(tt.org); got != tt.want {
				t.Fatalf("adjustment = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLowActivityAdjustment(t *testing.T) {
	tests := []struct {
		name         string
		played       int
		quarterIndex int
		want         ActivityAdjustment
	}{
		{"first quarter honeymoon", 0, 0, ActivityAdjustment{Expected: 1}},
		{"second quarter honeymoon", 0, 1, ActivityAdjustment{Expected: 1}},
		{"expectation met", 2, 2, ActivityAdjustment{Expected: 2}},
		{"expectation exceeded", 3, 5, ActivityAdjustment{Expected: 2}},
		{"one short early", 1, 2, ActivityAdjustment{Expected: 2, Shortfall: 1, Capped: true, Penalty: 4}},
		{"idle early", 0, 2, ActivityAdjustment{Expected: 2, Shortfall: 2, Capped: true, Penalty: 5}},
		{"one short later", 1, 3, ActivityAdjustment{Expected: 2, Shortfall: 1, Capped: true, Penalty: 8}},
		{"idle deep into tenure", 0, 6, ActivityAdjustment{Expected: 2, Shortfall: 2, Capped: true, Penalty: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowActivityAdjustment(tt.played, tt.quarterIndex); got != tt.want {
				t.Fatalf("adjustment = %+v, want %+v", got, tt.want)
			}
		})
	}
}
