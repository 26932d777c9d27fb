package booking

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/availability"
	"medibook/utils"
)

// DefaultBookingSessionService implements BookingSessionService. Sessions
// are pure derived state over the upstream fetches plus two selection
// fields; the schedule is recomputed from scratch whenever the filtered
// record set changes and is never mutated in place.
type DefaultBookingSessionService struct {
	Upstream       DoctorSource
	Store          SessionStore
	Warmer         ScheduleWarmer // optional
	ConfirmBaseURL string
	SessionTTL     time.Duration

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// InitiateSession fetches the doctor profile and availability concurrently,
// awaits both, expands the 30-day schedule and stores a fresh session.
// Either fetch failing is terminal: one generic fetchFailure, no partial
// result, no retry.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, doctorID, consultationType string) (*models.BookingSession, error) {
	logger := utils.GetLogger()

	if doctorID == "" {
		return nil, NewMissingParameterError("doctor id is required")
	}

	var (
		wg        sync.WaitGroup
		profile   models.DoctorProfile
		records   []models.AvailabilityRecord
		fetchErrs [2]error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, fetchErrs[0] = s.Upstream.GetDoctor(ctx, doctorID)
	}()
	go func() {
		defer wg.Done()
		records, fetchErrs[1] = s.Upstream.GetAvailabilities(ctx, doctorID)
	}()
	wg.Wait()

	for _, err := range fetchErrs {
		if err != nil {
			logger.Error("booking: upstream fetch failed",
				zap.String("doctorID", doctorID), zap.Error(err))
			return nil, NewFetchFailureError(err)
		}
	}

	mode := availability.ModeFromConsultationType(consultationType)
	filtered := availability.FilterRecords(records, mode)
	schedule := availability.BuildSchedule(filtered, s.now())

	session := &models.BookingSession{
		SessionID:        uuid.New().String(),
		DoctorID:         doctorID,
		Mode:             mode,
		Doctor:           profile,
		Schedule:         schedule,
		SelectedDayIndex: 0,
		SelectedSlot:     nil,
		State:            models.SessionIdle,
	}
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}

	if s.Warmer != nil {
		if err := s.Warmer.EnqueueScheduleWarm(doctorID, mode); err != nil {
			logger.Warn("booking: failed to enqueue schedule warm",
				zap.String("doctorID", doctorID), zap.Error(err))
		}
	}

	return session, nil
}

// SelectDay moves the day tab. The previously chosen slot string is kept
// even when it has no match on the new day; it simply highlights nothing.
func (s *DefaultBookingSessionService) SelectDay(ctx context.Context, sessionID string, dayIndex int) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionSubmitting {
		return nil, NewAlreadySubmittingError()
	}
	if dayIndex < 0 || dayIndex >= len(session.Schedule) {
		return nil, NewDayOutOfRangeError(dayIndex)
	}

	session.SelectedDayIndex = dayIndex
	if session.SelectedSlot == nil {
		session.State = models.SessionDaySelected
	}
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot records the chosen slot time string. Selection is by string
// value only, so an identical label under two hospitals shares a selection.
func (s *DefaultBookingSessionService) SelectSlot(ctx context.Context, sessionID, timeLabel string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionSubmitting {
		return nil, NewAlreadySubmittingError()
	}

	day := session.Schedule[session.SelectedDayIndex]
	if !daySlotAvailable(day, timeLabel) {
		return nil, NewSlotNotFoundError(timeLabel)
	}

	session.SelectedSlot = &timeLabel
	session.State = models.SessionSlotSelected
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking builds the handoff payload for the external confirmation
// flow and marks the session submitting so a second confirm is rejected.
// The appointment itself is created upstream, never here.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.ConfirmationRedirect, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionSubmitting {
		return nil, NewAlreadySubmittingError()
	}
	if session.SelectedSlot == nil {
		return nil, NewSlotNotSelectedError()
	}

	currentDay := session.Schedule[session.SelectedDayIndex]
	params := url.Values{
		"doctorId": {session.DoctorID},
		"time":     {*session.SelectedSlot},
		"date":     {currentDay.Date},
	}
	redirect := &models.ConfirmationRedirect{
		DoctorID:    session.DoctorID,
		Time:        *session.SelectedSlot,
		Date:        currentDay.Date,
		RedirectURL: s.ConfirmBaseURL + "?" + params.Encode(),
	}

	session.State = models.SessionSubmitting
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return redirect, nil
}

// CancelSession drops the session entirely; nothing survives remounts.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}

func daySlotAvailable(day models.DayAvailability, timeLabel string) bool {
	for _, hospital := range day.Hospitals {
		for _, slot := range hospital.Slots {
			if slot.Available && slot.Time == timeLabel {
				return true
			}
		}
	}
	return false
}
