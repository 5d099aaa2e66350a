package calendar

import (
	"context"
	"time"

	"inkwell/models"
)

// Event is an appointment to be written to the studio calendar.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// EventReader lists the busy intervals already on the calendar.
type EventReader interface {
	// BusyIntervals returns the timed events of the given civil day, in the
	// studio timezone. All-day entries are excluded.
	BusyIntervals(ctx context.Context, day time.Time) ([]models.BusyInterval, error)
}

// EventWriter creates appointments on the calendar.
type EventWriter interface {
	// CreateEvent inserts the event and returns the provider's event ID.
	CreateEvent(ctx context.Context, ev Event) (string, error)
}
