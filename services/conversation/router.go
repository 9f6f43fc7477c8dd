package conversation

import (
	"context"
	"time"

	"bookline/models"
	"bookline/utils"

	"go.uber.org/zap"
)

// Advance runs one dialogue turn: classify the utterance, assign the stage,
// route through extraction and availability lookup as the intent demands,
// and compose the reply. The turn either completes and is saved, or fails
// with the stored session state unchanged. Turns on the same key are
// serialised; distinct keys proceed in parallel.
func (svc *DefaultConversationService) Advance(ctx context.Context, sessionKey, utterance string, now time.Time) (string, *models.ConversationState, error) {
	lock := svc.locks.get(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	state, err := svc.Store.Get(ctx, sessionKey)
	if err != nil {
		return "", nil, err
	}

	state.Messages = append(state.Messages, models.Message{Role: "user", Text: utterance, At: now})

	intent := ClassifyIntent(utterance)
	state.Intent = intent

	// Stage assignment happens before routing and reads the previous turn's
	// slot list, not this turn's lookup result. A confirmed booking is
	// terminal: the stage never regresses and later turns replay the
	// confirmation until the session is reset.
	switch {
	case state.BookingConfirmed:
		state.Stage = models.StageConfirmed
	case state.Stage == "":
		state.Stage = models.StageInitial
	case intent == models.IntentConfirmBooking:
		state.Stage = models.StageConfirming
	case len(state.AvailableSlots) > 0:
		state.Stage = models.StagePresentingOptions
	default:
		state.Stage = models.StageGatheringInfo
	}

	if !state.BookingConfirmed {
		switch {
		case intent == models.IntentConfirmBooking:
			svc.confirmBooking(state)
		case intent == models.IntentBookAppointment || intent == models.IntentCheckAvailability:
			// Re-extraction is skipped once a preferred date is known.
			if state.Extracted.PreferredDate == "" {
				state.Extracted = ExtractInfo(utterance, state.Extracted, now)
				state.Stage = models.StageGatheringInfo
			}
			svc.lookupAvailability(ctx, state, now)
			svc.routeAfterAvailability(state, now)
		}
	}

	response := ComposeResponse(state)
	state.Messages = append(state.Messages, models.Message{Role: "assistant", Text: response, At: now})

	if err := svc.Store.Save(ctx, sessionKey, state); err != nil {
		return "", nil, err
	}

	utils.GetLogger().Debug("conversation turn",
		zap.String("sessionKey", sessionKey),
		zap.String("intent", string(intent)),
		zap.String("stage", string(state.Stage)),
		zap.Int("slots", len(state.AvailableSlots)))

	return response, state, nil
}

// Snapshot returns the current state of a session. Unknown keys yield a
// fresh zero state, matching Advance's implicit session creation.
func (svc *DefaultConversationService) Snapshot(ctx context.Context, sessionKey string) (*models.ConversationState, error) {
	return svc.Store.Get(ctx, sessionKey)
}

// Reset clears a session's state.
func (svc *DefaultConversationService) Reset(ctx context.Context, sessionKey string) error {
	return svc.Store.Clear(ctx, sessionKey)
}

// confirmBooking marks the booking confirmed only when at least one slot is
// on the table; otherwise confirmation silently fails and the conversation
// continues without a distinct error state.
func (svc *DefaultConversationService) confirmBooking(state *models.ConversationState) {
	if state.Intent == models.IntentConfirmBooking && len(state.AvailableSlots) > 0 {
		state.BookingConfirmed = true
		state.Stage = models.StageConfirmed
	} else {
		state.BookingConfirmed = false
	}
}

// lookupAvailability fills state.AvailableSlots from the calendar provider.
// With a preferred date it generates the hour grid for that day; without one
// it scans the next three days for free slots of the requested duration.
// Any provider failure or timeout degrades to deterministic mock slots.
func (svc *DefaultConversationService) lookupAvailability(ctx context.Context, state *models.ConversationState, now time.Time) {
	logger := utils.GetLogger()
	timeout := svc.CalendarTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if state.Extracted.PreferredDate != "" {
		day, err := time.ParseInLocation(dateLayout, state.Extracted.PreferredDate, now.Location())
		if err != nil {
			logger.Warn("unparseable preferred date, falling back to mock slots",
				zap.String("preferredDate", state.Extracted.PreferredDate), zap.Error(err))
			state.AvailableSlots = MockSlots(now)
			return
		}
		busy, err := svc.Calendar.BusyIntervalsForDay(cctx, day)
		if err != nil {
			logger.Warn("calendar provider unavailable, falling back to mock slots", zap.Error(err))
			state.AvailableSlots = MockSlots(now)
			return
		}
		state.AvailableSlots = SlotsForDay(busy, day)
		return
	}

	windowStart := now
	windowEnd := now.AddDate(0, 0, 2)
	busy, err := svc.Calendar.BusyIntervals(cctx, windowStart, windowEnd)
	if err != nil {
		logger.Warn("calendar provider unavailable, falling back to mock slots", zap.Error(err))
		state.AvailableSlots = MockSlots(now)
		return
	}
	slots := FreeSlots(busy, windowStart, windowEnd, DurationMinutes(state.Extracted.Duration), svc.workingHours())
	if len(slots) > 5 {
		slots = slots[:5]
	}
	state.AvailableSlots = slots
}

// routeAfterAvailability applies the post-lookup transitions: an empty
// result on a request for alternatives produces alternative slots, a
// non-empty result on a confirmation intent completes the booking, and a
// non-empty result on a booking intent moves the conversation to presenting
// options. A plain availability check keeps its intent-specific reply for
// this turn; the stored slots promote the stage on the next turn instead.
func (svc *DefaultConversationService) routeAfterAvailability(state *models.ConversationState, now time.Time) {
	switch {
	case len(state.AvailableSlots) == 0 && state.Intent == models.IntentRequestAlternatives:
		state.AvailableSlots = MockSlots(now)
		state.Stage = models.StagePresentingAlternatives
	case len(state.AvailableSlots) > 0 && state.Intent == models.IntentConfirmBooking:
		svc.confirmBooking(state)
	case len(state.AvailableSlots) > 0 && state.Intent == models.IntentBookAppointment:
		state.Stage = models.StagePresentingOptions
	}
}

func (svc *DefaultConversationService) workingHours() WorkingHours {
	if svc.Hours.EndHour <= svc.Hours.StartHour {
		return DefaultWorkingHours
	}
	return svc.Hours
}
