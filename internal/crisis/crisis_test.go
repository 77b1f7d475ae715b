package crisis

import (
	"testing"

	"github.com/talgya/boardroom/internal/state"
)

func testTemplate() Template {
	return Template{
		ID:               "outage",
		Name:             "Production Outage",
		Severity:         3,
		DeadlineQuarters: 2,
		BaseImpact:       map[state.Meter]int{state.Delivery: -5},
		OngoingImpact:    map[state.Meter]int{state.Delivery: -2},
		MinSpend:         2,
	}
}

func TestSpawn(t *testing.T) {
	inst := Spawn(testTemplate(), 4)
	if inst.Status != Active {
		t.Fatalf("status = %s, want Active", inst.Status)
	}
	if inst.CreatedQuarter != 4 || inst.DeadlineQuarter != 6 {
		t.Fatalf("created %d, deadline %d; want 4 and 6", inst.CreatedQuarter, inst.DeadlineQuarter)
	}
	if inst.Severity != 3 || inst.MinSpend != 2 {
		t.Fatalf("instance did not carry template fields: %+v", inst)
	}
}

func TestLive(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{Active, true},
		{Escalated, true},
		{Mitigated, false},
		{Expired, false},
	}
	for _, tt := range tests {
		inst := Instance{Status: tt.status}
		if got := inst.Live(); got != tt.want {
			t.Fatalf("Live() with status %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestExpireDue(t *testing.T) {
	instances := []Instance{
		{ID: "due", DeadlineQuarter: 3, Status: Active},
		{ID: "escalated-due", DeadlineQuarter: 2, Status: Escalated},
		{ID: "future", DeadlineQuarter: 5, Status: Active},
		{ID: "handled", DeadlineQuarter: 3, Status: Mitigated},
	}

	remaining, expired := ExpireDue(instances, 3)

	if len(remaining) != 1 || remaining[0].ID != "future" {
		t.Fatalf("remaining = %+v, want only \"future\"", remaining)
	}
	if len(expired) != 2 {
		t.Fatalf("expired %d crises, want 2", len(expired))
	}
	for _, c := range expired {
		if c.Status != Expired {
			t.Fatalf("expired crisis %s has status %s", c.ID, c.Status)
		}
	}
	// The input slice's statuses are untouched.
	if instances[0].Status != Active {
		t.Fatalf("ExpireDue mutated its input: %+v", instances[0])
	}
}
