package booking

import (
	"context"

	"medibook/models"
)

// DoctorSource provides the two upstream reads the booking flow needs.
// *careapi.Client satisfies it.
type DoctorSource interface {
	GetDoctor(ctx context.Context, doctorID string) (models.DoctorProfile, error)
	GetAvailabilities(ctx context.Context, doctorID string) ([]models.AvailabilityRecord, error)
}

// ScheduleWarmer enqueues a background refresh of a doctor's cached
// schedule. Optional; a nil warmer disables warming.
type ScheduleWarmer interface {
	EnqueueScheduleWarm(doctorID, mode string) error
}

// BookingSessionService defines the interface for managing a stateful
// slot-selection session.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, doctorID, consultationType string) (*models.BookingSession, error)
	SelectDay(ctx context.Context, sessionID string, dayIndex int) (*models.BookingSession, error)
	SelectSlot(ctx context.Context, sessionID, timeLabel string) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.ConfirmationRedirect, error)
	CancelSession(ctx context.Context, sessionID string) error
}
