package conversation

import (
	"context"
	"time"

	"bookline/models"
	"bookline/services/calendar"
)

// ConversationService drives a stateful scheduling dialogue, one turn per
// Advance call. The now reference is explicit so date-relative parsing stays
// reproducible in tests.
type ConversationService interface {
	Advance(ctx context.Context, sessionKey, utterance string, now time.Time) (string, *models.ConversationState, error)
	Snapshot(ctx context.Context, sessionKey string) (*models.ConversationState, error)
	Reset(ctx context.Context, sessionKey string) error
}

// DefaultConversationService implements ConversationService.
type DefaultConversationService struct {
	Store           SessionStore
	Calendar        calendar.Provider
	Hours           WorkingHours
	CalendarTimeout time.Duration

	locks keyedMutex
}
