package models

import "time"

// BusinessHours describes the studio's daily working window and slot geometry.
// It is built once at startup from config and passed into services as an
// immutable value.
type BusinessHours struct {
	OpenHour            int            // First bookable hour of the day (e.g., 9)
	CloseHour           int            // Hour the studio closes (e.g., 21); no appointment may run past it
	SlotIntervalMinutes int            // Stride between candidate slot starts
	DurationMinutes     int            // Fixed appointment length
	BufferMinutes       int            // Cleanup time appended after each busy interval
	Location            *time.Location // Studio's local civil timezone
}

// WorkWindow returns the localized opening and closing instants for a date.
func (h BusinessHours) WorkWindow(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), date.Day(), h.OpenHour, 0, 0, 0, h.Location)
	end = time.Date(date.Year(), date.Month(), date.Day(), h.CloseHour, 0, 0, 0, h.Location)
	return start, end
}
