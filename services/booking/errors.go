package booking

import (
	"errors"
	"fmt"
)

// SessionError is a coded error surfaced by the booking session flow so
// handlers can map it onto an HTTP status.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeMissingParameter  = "missingParameter"
	CodeFetchFailure      = "fetchFailure"
	CodeSessionNotFound   = "sessionNotFound"
	CodeDayOutOfRange     = "dayOutOfRange"
	CodeSlotNotFound      = "slotNotFound"
	CodeSlotNotSelected   = "slotNotSelected"
	CodeAlreadySubmitting = "alreadySubmitting"
)

func NewMissingParameterError(msg string) error {
	return &SessionError{Code: CodeMissingParameter, Message: msg}
}

// NewFetchFailureError deliberately carries one generic message regardless
// of which upstream call failed; the UI never distinguishes the two.
func NewFetchFailureError(err error) error {
	return &SessionError{Code: CodeFetchFailure, Message: fmt.Sprintf("failed to load doctor data: %v", err)}
}

func NewSessionNotFoundError(sessionID string) error {
	return &SessionError{Code: CodeSessionNotFound, Message: fmt.Sprintf("booking session %s not found or expired", sessionID)}
}

func NewDayOutOfRangeError(index int) error {
	return &SessionError{Code: CodeDayOutOfRange, Message: fmt.Sprintf("day index %d outside the schedule window", index)}
}

func NewSlotNotFoundError(label string) error {
	return &SessionError{Code: CodeSlotNotFound, Message: fmt.Sprintf("no available slot %q on the selected day", label)}
}

func NewSlotNotSelectedError() error {
	return &SessionError{Code: CodeSlotNotSelected, Message: "no slot selected; cannot confirm booking"}
}

func NewAlreadySubmittingError() error {
	return &SessionError{Code: CodeAlreadySubmitting, Message: "booking already being submitted for this session"}
}

// ErrorCode extracts the session error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var se *SessionError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
