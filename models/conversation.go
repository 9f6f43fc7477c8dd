package models

import "time"

// Stage marks the conversation's position in the booking workflow.
type Stage string

const (
	StageInitial                Stage = "initial"
	StageGatheringInfo          Stage = "gathering_info"
	StagePresentingOptions      Stage = "presenting_options"
	StagePresentingAlternatives Stage = "presenting_alternatives"
	StageConfirming             Stage = "confirming"
	StageConfirmed              Stage = "booking_confirmed"
)

// Intent is the classified purpose of a single user utterance.
type Intent string

const (
	IntentBookAppointment     Intent = "book_appointment"
	IntentCheckAvailability   Intent = "check_availability"
	IntentConfirmBooking      Intent = "confirm_booking"
	IntentRequestAlternatives Intent = "request_alternatives"
	IntentModifyBooking       Intent = "modify_booking"
	IntentGeneralInquiry      Intent = "general_inquiry"
)

// ExtractedInfo carries the temporal hints pulled from user utterances.
// PreferredDate is a bare calendar date ("2006-01-02", empty when unknown).
// TimePreference holds the raw matched text (e.g. "3:30 pm", "afternoon");
// it is a hint for the user-facing reply, never parsed into an instant.
type ExtractedInfo struct {
	PreferredDate  string `json:"preferredDate,omitempty"`
	TimePreference string `json:"timePreference,omitempty"`
	Duration       string `json:"duration,omitempty"`
}

// Slot is a candidate bookable interval. Immutable once produced.
type Slot struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DateLabel     string    `json:"date"`     // e.g. "Monday, January 02, 2006"
	TimeLabel     string    `json:"time"`     // e.g. "10:00 AM"
	DurationLabel string    `json:"duration"` // e.g. "1 hour"
}

// BusyInterval is a calendar-reported occupied time range. Event identity
// is not retained; only the interval matters to the availability engine.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Message is one transcript entry in a conversation.
type Message struct {
	Role string    `json:"role"` // "user" or "assistant"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// ConversationState holds everything a session carries between turns.
// Invariants: BookingConfirmed implies Stage == StageConfirmed, and
// AvailableSlots is non-decreasing in start time.
type ConversationState struct {
	Stage            Stage         `json:"stage"`
	Intent           Intent        `json:"intent"`
	Extracted        ExtractedInfo `json:"extractedInfo"`
	AvailableSlots   []Slot        `json:"availableSlots,omitempty"`
	BookingConfirmed bool          `json:"bookingConfirmed"`
	Messages         []Message     `json:"messages,omitempty"`
}

// Clone returns an independent copy so a failed turn cannot leak partial
// mutations back into the stored state.
func (s *ConversationState) Clone() *ConversationState {
	if s == nil {
		return &ConversationState{}
	}
	out := *s
	out.AvailableSlots = append([]Slot(nil), s.AvailableSlots...)
	out.Messages = append([]Message(nil), s.Messages...)
	return &out
}
