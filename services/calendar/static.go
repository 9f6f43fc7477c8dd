package calendar

import (
	"context"
	"time"

	"bookline/models"
)

// StaticProvider serves a fixed set of busy intervals. Used for local
// development and tests, where no real calendar is reachable.
type StaticProvider struct {
	Busy []models.BusyInterval
}

func (p *StaticProvider) BusyIntervals(ctx context.Context, windowStart, windowEnd time.Time) ([]models.BusyInterval, error) {
	var out []models.BusyInterval
	for _, b := range p.Busy {
		if b.Start.Before(windowEnd) && b.End.After(windowStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (p *StaticProvider) BusyIntervalsForDay(ctx context.Context, day time.Time) ([]models.BusyInterval, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return p.BusyIntervals(ctx, dayStart, dayStart.AddDate(0, 0, 1))
}
