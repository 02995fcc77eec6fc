package entity

import "time"

// DateOf truncates a timestamp to its calendar day in UTC. Order dates are
// stored and compared at day granularity.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
