package conversation

import (
	"strings"

	"bookline/models"
)

type intentRule struct {
	intent   models.Intent
	keywords []string
}

// intentRules is an ordering contract: rules are evaluated top to bottom and
// the first rule with any keyword present in the utterance wins, regardless
// of where the keyword sits in the text. "no, book it" therefore classifies
// as book_appointment, because the booking rule outranks the alternatives
// rule. Reordering these entries changes classification behaviour.
var intentRules = []intentRule{
	{models.IntentBookAppointment, []string{"book", "schedule", "appointment", "meeting", "call"}},
	{models.IntentCheckAvailability, []string{"available", "free", "time", "slot"}},
	{models.IntentConfirmBooking, []string{"yes", "confirm", "book it", "that works"}},
	{models.IntentRequestAlternatives, []string{"no", "different", "other", "alternative"}},
	{models.IntentModifyBooking, []string{"cancel", "reschedule", "change"}},
}

// ClassifyIntent maps an utterance to one intent by case-insensitive keyword
// membership. Utterances matching no rule fall through to general_inquiry.
func ClassifyIntent(utterance string) models.Intent {
	lower := strings.ToLower(utterance)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return models.IntentGeneralInquiry
}
