package conversation

import (
	"testing"

	"bookline/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      models.Intent
	}{
		{"booking keyword", "I want to book something", models.IntentBookAppointment},
		{"schedule keyword", "can we schedule next week", models.IntentBookAppointment},
		{"meeting keyword", "set up a meeting please", models.IntentBookAppointment},
		{"availability keyword", "are you available on friday", models.IntentCheckAvailability},
		{"free keyword", "any free hours tomorrow?", models.IntentCheckAvailability},
		{"confirmation", "yes that works for me", models.IntentConfirmBooking},
		{"confirm keyword", "please confirm", models.IntentConfirmBooking},
		{"alternatives", "something different please", models.IntentRequestAlternatives},
		{"modify", "please cancel my visit", models.IntentModifyBooking},
		{"fallback", "what's the weather like", models.IntentGeneralInquiry},
		{"empty utterance", "", models.IntentGeneralInquiry},
		{"case insensitive", "BOOK me in", models.IntentBookAppointment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.utterance))
		})
	}
}

func TestClassifyIntentPriority(t *testing.T) {
	// Rule order is a tie-break contract: the booking rule outranks the
	// alternatives rule even when the alternatives keyword comes first.
	assert.Equal(t, models.IntentBookAppointment, ClassifyIntent("no, book it"))

	// "yes" outranks "no" because confirmation precedes alternatives.
	assert.Equal(t, models.IntentConfirmBooking, ClassifyIntent("yes... or no"))

	// "time" (availability) outranks "cancel" (modify).
	assert.Equal(t, models.IntentCheckAvailability, ClassifyIntent("cancel that time"))

	// Substring matching means "reschedule" hits the booking rule's
	// "schedule" before the modify rule is ever consulted.
	assert.Equal(t, models.IntentBookAppointment, ClassifyIntent("I need to reschedule"))
}
