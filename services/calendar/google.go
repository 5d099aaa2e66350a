package calendar

import (
	"context"
	"fmt"
	"time"

	"inkwell/models"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendar implements EventReader and EventWriter against the Google
// Calendar API (v3).
type GoogleCalendar struct {
	svc        *gcal.Service
	calendarID string
	location   *time.Location
}

// NewGoogleCalendar builds a calendar client for the given calendar identity.
func NewGoogleCalendar(ctx context.Context, ts oauth2.TokenSource, calendarID string, loc *time.Location) (*GoogleCalendar, error) {
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to build service: %w", err)
	}
	return &GoogleCalendar{svc: svc, calendarID: calendarID, location: loc}, nil
}

// BusyIntervals lists the day's events and converts the timed ones into busy
// intervals. Entries carrying only a date (all-day markers) never block
// anything and are skipped.
func (g *GoogleCalendar) BusyIntervals(ctx context.Context, day time.Time) ([]models.BusyInterval, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, g.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := g.svc.Events.List(g.calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to list events: %w", err)
	}

	return intervalsFromEvents(events.Items, g.location)
}

// intervalsFromEvents converts timed events to busy intervals. All-day
// entries carry only a Date, never a DateTime, and are skipped: they must
// not block any slot.
func intervalsFromEvents(items []*gcal.Event, loc *time.Location) ([]models.BusyInterval, error) {
	var busy []models.BusyInterval
	for _, item := range items {
		if item == nil || item.Start == nil || item.End == nil || item.Start.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return nil, fmt.Errorf("calendar: malformed event start %q: %w", item.Start.DateTime, err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return nil, fmt.Errorf("calendar: malformed event end %q: %w", item.End.DateTime, err)
		}
		busy = append(busy, models.BusyInterval{
			Start: start.In(loc),
			End:   end.In(loc),
		})
	}
	return busy, nil
}

// CreateEvent inserts the appointment with the studio timezone attached.
func (g *GoogleCalendar) CreateEvent(ctx context.Context, ev Event) (string, error) {
	body := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: g.location.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: g.location.String(),
		},
	}
	created, err := g.svc.Events.Insert(g.calendarID, body).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("calendar: failed to insert event: %w", err)
	}
	return created.Id, nil
}
