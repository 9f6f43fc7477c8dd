package calendar

import "fmt"

// ProviderError marks a failure at the calendar boundary. The conversation
// layer checks for it to decide when to fall back to generated slots.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewProviderError(msg string) error {
	return &ProviderError{
		Code:    "providerError",
		Message: msg,
	}
}
