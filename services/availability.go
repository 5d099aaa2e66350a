// services/availability.go
package services

import (
	"context"
	"time"

	"inkwell/models"
	"inkwell/services/calendar"
)

// AvailabilityService defines methods for computing free appointment slots.
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, date string) ([]string, error)
}

// DefaultAvailabilityService is a concrete implementation backed by the
// studio's calendar.
type DefaultAvailabilityService struct {
	Hours    models.BusinessHours
	Calendar calendar.EventReader
}

// GetAvailableSlots computes the free slot start times ("HH:MM", studio
// local time) for the given "YYYY-MM-DD" date.
func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, date string) ([]string, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.Hours.Location)
	if err != nil {
		return nil, NewInputError("Data inválida.")
	}

	busy, err := s.Calendar.BusyIntervals(ctx, day)
	if err != nil {
		return nil, NewUpstreamError("availability: failed to list calendar events", err)
	}

	return FreeSlots(s.Hours, day, busy), nil
}

// FreeSlots generates candidate slots between opening and closing at the
// configured stride and keeps the ones that overlap no busy interval. It is
// a pure function: same inputs, same output, no side effects.
//
// A candidate whose appointment would run past closing terminates the scan.
// The overlap test extends each busy interval's end by the cleanup buffer
// and uses strict inequalities on both sides, so a slot ending exactly when
// an interval starts, or starting exactly at an interval's buffered end, is
// free.
func FreeSlots(hours models.BusinessHours, day time.Time, busy []models.BusyInterval) []string {
	workStart, workEnd := hours.WorkWindow(day)
	stride := time.Duration(hours.SlotIntervalMinutes) * time.Minute
	duration := time.Duration(hours.DurationMinutes) * time.Minute
	buffer := time.Duration(hours.BufferMinutes) * time.Minute

	slots := []string{}
	for start := workStart; start.Before(workEnd); start = start.Add(stride) {
		slot := models.Slot{Start: start, End: start.Add(duration)}
		if slot.End.After(workEnd) {
			break
		}
		if !overlapsAny(slot, busy, buffer) {
			slots = append(slots, slot.Start.Format("15:04"))
		}
	}
	return slots
}

func overlapsAny(slot models.Slot, busy []models.BusyInterval, buffer time.Duration) bool {
	for _, b := range busy {
		// Degenerate intervals (zero-length or end before start) represent
		// no real occupancy and block nothing, buffered or not.
		if !b.End.After(b.Start) {
			continue
		}
		effectiveEnd := b.End.Add(buffer)
		if slot.Start.Before(effectiveEnd) && slot.End.After(b.Start) {
			return true
		}
	}
	return false
}
