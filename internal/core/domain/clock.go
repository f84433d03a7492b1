package domain

import "time"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// Clock supplies the current calendar date. Injected so overdue and
// date-window checks can be pinned in tests.
type Clock interface {
	Today() string // YYYY-MM-DD
}

// SystemClock returns the UTC wall-clock date truncated to day granularity.
type SystemClock struct{}

func (SystemClock) Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// FixedClock always reports the same date.
type FixedClock string

func (c FixedClock) Today() string {
	return string(c)
}
