package state

import "testing"

func TestNewOrgBaseline(t *testing.T) {
	o := NewOrg()
	for _, m := range Meters() {
		if v := o.Meter(m); v != 50 {
			t.Fatalf("%s = %d, want baseline 50", m, v)
		}
	}
}

func TestOrgWithClamps(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"plain gain", 10, 60},
		{"plain loss", -10, 40},
		{"saturates high", 200, 100},
		{"saturates low", -200, 0},
		{"zero delta", 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrg().With(Delivery, tt.delta)
			if got := o.Meter(Delivery); got != tt.want {
				t.Fatalf("With(Delivery, %d) = %d, want %d", tt.delta, got, tt.want)
			}
		})
	}
}

func TestOrgWithIsAValueOp(t *testing.T) {
	base := NewOrg()
	_ = base.With(Morale, -30)
	if got := base.Meter(Morale); got != 50 {
		t.Fatalf("With mutated the receiver: Morale = %d", got)
	}
}

func TestOrgCountBelow(t *testing.T) {
	o := NewOrg().With(Delivery, -45).With(Morale, -42)
	if got := o.CountBelow(10); got != 2 {
		t.Fatalf("CountBelow(10) = %d, want 2", got)
	}
	if got := o.CountBelow(5); got != 0 {
		t.Fatalf("CountBelow(5) = %d, want 0", got)
	}
}

func TestOrgAnyZero(t *testing.T) {
	if NewOrg().AnyZero() {
		t.Fatal("baseline org reports a zeroed meter")
	}
	if !NewOrg().With(Runway, -50).AnyZero() {
		t.Fatal("org with Runway at 0 reports no zeroed meter")
	}
}

func TestMetersOrder(t *testing.T) {
	want := [5]Meter{Delivery, Morale, Governance, Alignment, Runway}
	if Meters() != want {
		t.Fatalf("Meters() = %v, want %v", Meters(), want)
	}
}
