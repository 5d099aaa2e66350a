package models

import "time"

// BusyInterval is a time range during which the artist is occupied,
// derived from a timed calendar event. All-day calendar entries never
// become busy intervals.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Slot is a candidate appointment: a start time plus the fixed duration.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
