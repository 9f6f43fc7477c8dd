package conversation

import (
	"fmt"
	"strings"

	"bookline/models"
)

// ComposeResponse renders a turn's terminal state into the reply text. The
// checks form a priority ladder evaluated top to bottom: confirmation first,
// then stage, then intent, with the greeting as the final fallback. The
// ordering is a contract; a confirmed booking always wins over whatever
// stage or intent the turn ended in.
func ComposeResponse(state *models.ConversationState) string {
	slots := state.AvailableSlots

	switch {
	case state.BookingConfirmed:
		return "Great! I've confirmed your appointment. You should receive a confirmation email shortly. Is there anything else I can help you with?"

	case state.Stage == models.StagePresentingOptions && len(slots) > 0:
		var b strings.Builder
		b.WriteString("I found some available time slots for you:\n\n")
		writeSlotList(&b, slots[:minInt(3, len(slots))], true)
		b.WriteString("\nWhich time works best for you? Just let me know the number or tell me if you'd like to see other options.")
		return b.String()

	case state.Stage == models.StagePresentingAlternatives:
		var b strings.Builder
		b.WriteString("Let me suggest some alternative times:\n\n")
		if len(slots) > 3 {
			writeSlotList(&b, slots[3:minInt(6, len(slots))], true)
		}
		b.WriteString("\nDo any of these work better for you?")
		return b.String()

	case state.Intent == models.IntentCheckAvailability:
		if len(slots) == 0 {
			return "I don't see any available slots for your preferred time. Could you suggest an alternative time or date?"
		}
		var b strings.Builder
		b.WriteString("I have several time slots available. Here are some options:\n\n")
		writeSlotList(&b, slots[:minInt(3, len(slots))], false)
		b.WriteString("\nWould you like to book one of these slots?")
		return b.String()

	case state.Intent == models.IntentBookAppointment:
		if state.Extracted.PreferredDate == "" {
			return "I'd be happy to help you schedule an appointment! When would you like to meet? Please let me know your preferred date and time."
		}
		return "Let me check availability for your requested time..."

	default:
		return "Hello! I'm here to help you schedule appointments. When would you like to book a meeting? You can say something like 'I want to schedule a call for tomorrow afternoon' or 'Do you have any free time this Friday?'"
	}
}

func writeSlotList(b *strings.Builder, slots []models.Slot, withDuration bool) {
	for i, slot := range slots {
		if withDuration {
			fmt.Fprintf(b, "%d. %s at %s (%s)\n", i+1, slot.DateLabel, slot.TimeLabel, slot.DurationLabel)
		} else {
			fmt.Fprintf(b, "%d. %s at %s\n", i+1, slot.DateLabel, slot.TimeLabel)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
