package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bookline/models"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleProvider reads busy intervals from a Google Calendar via the
// FreeBusy API.
type GoogleProvider struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleProvider creates a calendar client. tokenFile points at a stored
// OAuth2 token (JSON); when empty, Application Default Credentials are used.
func NewGoogleProvider(ctx context.Context, calendarID, tokenFile string) (*GoogleProvider, error) {
	var opts []option.ClientOption
	if tokenFile != "" {
		token, err := loadToken(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load Google OAuth token: %w", err)
		}
		opts = append(opts, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleProvider{svc: svc, calendarID: calendarID}, nil
}

func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var token oauth2.Token
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

// BusyIntervals queries free/busy information for the window.
func (p *GoogleProvider) BusyIntervals(ctx context.Context, windowStart, windowEnd time.Time) ([]models.BusyInterval, error) {
	query := &gcal.FreeBusyRequest{
		TimeMin: windowStart.Format(time.RFC3339),
		TimeMax: windowEnd.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: p.calendarID}},
	}

	result, err := p.svc.Freebusy.Query(query).Context(ctx).Do()
	if err != nil {
		return nil, NewProviderError(fmt.Sprintf("freebusy query failed: %v", err))
	}

	var intervals []models.BusyInterval
	for _, cal := range result.Calendars {
		if len(cal.Errors) > 0 {
			return nil, NewProviderError(fmt.Sprintf("calendar %s: %s", p.calendarID, cal.Errors[0].Reason))
		}
		for _, busy := range cal.Busy {
			start, err := time.Parse(time.RFC3339, busy.Start)
			if err != nil {
				continue
			}
			end, err := time.Parse(time.RFC3339, busy.End)
			if err != nil {
				continue
			}
			intervals = append(intervals, models.BusyInterval{Start: start, End: end})
		}
	}
	return intervals, nil
}

// BusyIntervalsForDay queries the full calendar day containing `day`.
func (p *GoogleProvider) BusyIntervalsForDay(ctx context.Context, day time.Time) ([]models.BusyInterval, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return p.BusyIntervals(ctx, dayStart, dayStart.AddDate(0, 0, 1))
}
