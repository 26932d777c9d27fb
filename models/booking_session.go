package models

// SessionState tracks where a booking session sits in the selection flow.
type SessionState string

const (
	SessionIdle         SessionState = "idle"
	SessionDaySelected  SessionState = "daySelected"
	SessionSlotSelected SessionState = "slotSelected"
	SessionSubmitting   SessionState = "submitting"
)

// BookingSession holds context between schedule expansion and handoff to the
// external confirmation flow. Selection is by time string value only: two
// hospitals exposing an identical label on the same day share one selection.
type BookingSession struct {
	SessionID        string            `json:"sessionId"`
	DoctorID         string            `json:"doctorId"`
	Mode             string            `json:"mode"` // clinic or online
	Doctor           DoctorProfile     `json:"doctor"`
	Schedule         []DayAvailability `json:"schedule"`
	SelectedDayIndex int               `json:"selectedDayIndex"`
	SelectedSlot     *string           `json:"selectedSlot,omitempty"`
	State            SessionState      `json:"state"`
}

// ConfirmationRedirect is the payload handed to the external confirmation
// flow. This service never performs the booking call itself.
type ConfirmationRedirect struct {
	DoctorID    string `json:"doctorId"`
	Time        string `json:"time"` // 12-hour slot label
	Date        string `json:"date"` // "YYYY-MM-DD"
	RedirectURL string `json:"redirectUrl"`
}
