package state

import "fmt"

// LogKind tags a log entry.
type LogKind uint8

const (
	Info LogKind = iota
	MeterChange
)

func (k LogKind) String() string {
	if k == MeterChange {
		return "MeterChange"
	}
	return "Info"
}

// LogEntry is one structured line of what happened during an Advance call.
// Meter is meaningful only when HasMeter is set; Delta carries the raw
// signed change for meter and profit entries. Consumers such as a narrative
// generator read tiers and deltas from here; the core never depends on the
// text they produce.
type LogEntry struct {
	Kind     LogKind
	HasMeter bool
	Meter    Meter
	Delta    int
	Message  string
}

// Log is the ordered record of a single Advance call.
type Log []LogEntry

// Infof builds a plain informational entry.
func Infof(format string, args ...any) LogEntry {
	return LogEntry{Kind: Info, Message: fmt.Sprintf(format, args...)}
}

// MeterChanged builds a meter-change entry carrying the raw delta.
func MeterChanged(m Meter, delta int, format string, args ...any) LogEntry {
	return LogEntry{
		Kind:     MeterChange,
		HasMeter: true,
		Meter:    m,
		Delta:    delta,
		Message:  fmt.Sprintf(format, args...),
	}
}

// ProfitChanged builds an informational entry carrying a profit delta.
func ProfitChanged(delta int, format string, args ...any) LogEntry {
	return LogEntry{Kind: Info, Delta: delta, Message: fmt.Sprintf(format, args...)}
}
