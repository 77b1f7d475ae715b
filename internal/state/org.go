// Package state holds the immutable value snapshots the simulation advances:
// organizational meters, CEO standing, political capital, and the quarter
// marker. Values are never mutated in place; every change goes through a
// transformer returning a new value.
package state

// Meter identifies one of the five bounded organizational health indicators.
type Meter uint8

const (
	Delivery Meter = iota
	Morale
	Governance
	Alignment
	Runway
)

const meterCount = 5

func (m Meter) String() string {
	switch m {
	case Delivery:
		return "Delivery"
	case Morale:
		return "Morale"
	case Governance:
		return "Governance"
	case Alignment:
		return "Alignment"
	case Runway:
		return "Runway"
	}
	return "Unknown"
}

// Meters lists every meter in a fixed order. Iterate over this instead of a
// map so that anything consuming the random source stays deterministic.
func Meters() [meterCount]Meter {
	return [meterCount]Meter{Delivery, Morale, Governance, Alignment, Runway}
}

// Meter bounds and the game-start baseline.
const (
	MeterMin      = 0
	MeterMax      = 100
	meterBaseline = 50
)

// Org is a snapshot of the five organizational meters, each clamped to
// [MeterMin, MeterMax].
type Org struct {
	meters [meterCount]int
}

// NewOrg returns the game-start baseline with every meter at 50.
func NewOrg() Org {
	var o Org
	for i := range o.meters {
		o.meters[i] = meterBaseline
	}
	return o
}

// Meter returns the current value of m.
func (o Org) Meter(m Meter) int {
	return o.meters[m]
}

// With returns a copy of o with delta applied to m, saturating at the meter
// bounds.
func (o Org) With(m Meter, delta int) Org {
	o.meters[m] = clampInt(o.meters[m]+delta, MeterMin, MeterMax)
	return o
}

// CountBelow reports how many meters sit strictly below bound.
func (o Org) CountBelow(bound int) int {
	n := 0
	for _, v := range o.meters {
		if v < bound {
			n++
		}
	}
	return n
}

// AnyZero reports whether any meter has bottomed out completely.
func (o Org) AnyZero() bool {
	for _, v := range o.meters {
		if v == 0 {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
