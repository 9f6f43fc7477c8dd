package models

// ChatRequest is the payload coming from the frontend into /api/chat.
// SessionKey is blank on the first turn; the server mints one. Now is an
// optional RFC3339 reference time, so date-relative parsing is reproducible.
type ChatRequest struct {
	SessionKey string `json:"sessionKey"`
	Text       string `json:"text" binding:"required"`
	Now        string `json:"now,omitempty"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	SessionKey string             `json:"sessionKey"`
	Response   string             `json:"response"`
	State      *ConversationState `json:"state"`
}
