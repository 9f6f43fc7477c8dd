package calendar

import (
	"context"
	"time"

	"bookline/models"
)

// Provider supplies busy intervals from an external calendar. Both calls may
// fail on network or auth errors; callers are expected to degrade rather than
// surface the failure to the end user.
type Provider interface {
	// BusyIntervalsForDay lists busy intervals on a single calendar day.
	BusyIntervalsForDay(ctx context.Context, day time.Time) ([]models.BusyInterval, error)
	// BusyIntervals lists busy intervals inside an arbitrary window.
	BusyIntervals(ctx context.Context, windowStart, windowEnd time.Time) ([]models.BusyInterval, error)
}
