package conversation

import (
	"testing"
	"time"

	"bookline/models"

	"github.com/stretchr/testify/assert"
)

func sampleSlots(n int) []models.Slot {
	base := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	slots := make([]models.Slot, 0, n)
	for i := 0; i < n; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		slots = append(slots, models.Slot{
			Start:         start,
			End:           start.Add(time.Hour),
			DateLabel:     start.Format("Monday, January 02, 2006"),
			TimeLabel:     start.Format("03:04 PM"),
			DurationLabel: "1 hour",
		})
	}
	return slots
}

func TestComposeResponseConfirmed(t *testing.T) {
	state := &models.ConversationState{
		BookingConfirmed: true,
		Stage:            models.StageConfirmed,
		// Confirmation outranks everything else in the ladder.
		Intent:         models.IntentCheckAvailability,
		AvailableSlots: sampleSlots(5),
	}
	assert.Contains(t, ComposeResponse(state), "confirmed your appointment")
}

func TestComposeResponsePresentingOptions(t *testing.T) {
	state := &models.ConversationState{
		Stage:          models.StagePresentingOptions,
		Intent:         models.IntentBookAppointment,
		AvailableSlots: sampleSlots(5),
	}
	got := ComposeResponse(state)

	// Lists at most three slots with 1-based ordinals.
	assert.Contains(t, got, "1. Tuesday, March 03, 2026 at 10:00 AM (1 hour)")
	assert.Contains(t, got, "3. Tuesday, March 03, 2026 at 12:00 PM (1 hour)")
	assert.NotContains(t, got, "4.")
	assert.Contains(t, got, "Which time works best")
}

func TestComposeResponsePresentingAlternatives(t *testing.T) {
	state := &models.ConversationState{
		Stage:          models.StagePresentingAlternatives,
		Intent:         models.IntentRequestAlternatives,
		AvailableSlots: sampleSlots(6),
	}
	got := ComposeResponse(state)

	// Alternatives list slots four through six, renumbered from one.
	assert.Contains(t, got, "alternative times")
	assert.Contains(t, got, "1. Tuesday, March 03, 2026 at 01:00 PM (1 hour)")
	assert.Contains(t, got, "3. Tuesday, March 03, 2026 at 03:00 PM (1 hour)")
}

func TestComposeResponseCheckAvailability(t *testing.T) {
	withSlots := &models.ConversationState{
		Stage:          models.StageGatheringInfo,
		Intent:         models.IntentCheckAvailability,
		AvailableSlots: sampleSlots(2),
	}
	assert.Contains(t, ComposeResponse(withSlots), "Would you like to book one of these slots?")

	empty := &models.ConversationState{
		Stage:  models.StageGatheringInfo,
		Intent: models.IntentCheckAvailability,
	}
	assert.Contains(t, ComposeResponse(empty), "I don't see any available slots")
}

func TestComposeResponseBookAppointment(t *testing.T) {
	noDate := &models.ConversationState{
		Stage:  models.StageGatheringInfo,
		Intent: models.IntentBookAppointment,
	}
	assert.Contains(t, ComposeResponse(noDate), "When would you like to meet?")

	withDate := &models.ConversationState{
		Stage:     models.StageGatheringInfo,
		Intent:    models.IntentBookAppointment,
		Extracted: models.ExtractedInfo{PreferredDate: "2026-03-03"},
	}
	assert.Contains(t, ComposeResponse(withDate), "Let me check availability")
}

func TestComposeResponseGreetingFallback(t *testing.T) {
	state := &models.ConversationState{
		Stage:  models.StageInitial,
		Intent: models.IntentGeneralInquiry,
	}
	assert.Contains(t, ComposeResponse(state), "I'm here to help you schedule appointments")
}
