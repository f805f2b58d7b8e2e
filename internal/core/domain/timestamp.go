package domain

import "time"

// Timestamp is an optional last-modified instant.
// The zero value is absent.
type Timestamp struct {
	t     time.Time
	known bool
}

// KnownTimestamp returns a present timestamp for t.
func KnownTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t, known: true}
}

// UnknownTimestamp returns an absent timestamp.
func UnknownTimestamp() Timestamp {
	return Timestamp{}
}

// Known reports whether the timestamp is present.
func (ts Timestamp) Known() bool {
	return ts.known
}

// Time returns the instant and whether it is present.
func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.known
}

// NotBefore reports whether ts is present and at or after other.
// An absent operand on either side reports true, so callers comparing an
// input against an output treat unknown state as newer.
func (ts Timestamp) NotBefore(other Timestamp) bool {
	if !ts.known || !other.known {
		return true
	}
	return !ts.t.Before(other.t)
}

func (ts Timestamp) String() string {
	if !ts.known {
		return "<unknown>"
	}
	return ts.t.Format(time.RFC3339Nano)
}
