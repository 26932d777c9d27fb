package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"medibook/models"
)

// 2026-01-28 is a Wednesday; day index 5 is Monday 2026-02-02.
var testNow = time.Date(2026, 1, 28, 10, 30, 0, 0, time.UTC)

type fakeSource struct {
	doctor     models.DoctorProfile
	doctorErr  error
	records    []models.AvailabilityRecord
	recordsErr error
}

func (f *fakeSource) GetDoctor(_ context.Context, _ string) (models.DoctorProfile, error) {
	return f.doctor, f.doctorErr
}

func (f *fakeSource) GetAvailabilities(_ context.Context, _ string) ([]models.AvailabilityRecord, error) {
	return f.records, f.recordsErr
}

func mondayClinicSource() *fakeSource {
	return &fakeSource{
		doctor: models.DoctorProfile{ID: "doc-1", FullName: "Dr. Asha Rao", ConsultationFee: 500},
		records: []models.AvailabilityRecord{
			{
				ID: "rec-1", DayOfWeek: "Monday", StartTime: "14:00", EndTime: "15:00",
				AvailabilityType: models.ModeClinic, Address: "City Hospital", IsActive: true,
			},
		},
	}
}

func newTestService(source DoctorSource) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Upstream:       source,
		Store:          NewMemorySessionStore(),
		ConfirmBaseURL: "/book-appointment/confirm",
		SessionTTL:     10 * time.Minute,
		Now:            func() time.Time { return testNow },
	}
}

func TestInitiateSession_MissingDoctorID(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	_, err := svc.InitiateSession(context.Background(), "", "clinic")
	if ErrorCode(err) != CodeMissingParameter {
		t.Fatalf("expected missingParameter, got %v", err)
	}
}

func TestInitiateSession_FetchFailureIsGeneric(t *testing.T) {
	// Either upstream call failing yields the same terminal code; the UI
	// never learns which one broke.
	profileBroken := mondayClinicSource()
	profileBroken.doctorErr = errors.New("profile 500")

	recordsBroken := mondayClinicSource()
	recordsBroken.recordsErr = errors.New("availability timeout")

	for _, source := range []*fakeSource{profileBroken, recordsBroken} {
		svc := newTestService(source)
		_, err := svc.InitiateSession(context.Background(), "doc-1", "clinic")
		if ErrorCode(err) != CodeFetchFailure {
			t.Fatalf("expected fetchFailure, got %v", err)
		}
	}
}

func TestInitiateSession_BuildsThirtyDaySchedule(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	session, err := svc.InitiateSession(context.Background(), "doc-1", "clinic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.Schedule) != 30 {
		t.Fatalf("expected 30 days, got %d", len(session.Schedule))
	}
	if session.State != models.SessionIdle || session.SelectedDayIndex != 0 || session.SelectedSlot != nil {
		t.Fatalf("fresh session state wrong: %+v", session)
	}
	if session.Doctor.FullName != "Dr. Asha Rao" {
		t.Fatalf("doctor profile not carried: %+v", session.Doctor)
	}
}

func TestInitiateSession_VideoModeFiltersClinicRecords(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	session, err := svc.InitiateSession(context.Background(), "doc-1", "video")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Mode != models.ModeOnline {
		t.Fatalf("expected online mode, got %q", session.Mode)
	}
	for _, day := range session.Schedule {
		if len(day.Hospitals) != 0 {
			t.Fatalf("%s: clinic-only doctor must have no online availability", day.Date)
		}
	}
}

func TestSelectDay_PreservesSelectedSlot(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	if _, err := svc.SelectDay(ctx, session.SessionID, 5); err != nil {
		t.Fatalf("select day: %v", err)
	}
	if _, err := svc.SelectSlot(ctx, session.SessionID, "2:00 PM"); err != nil {
		t.Fatalf("select slot: %v", err)
	}

	// Switching to a day without that slot does not clear the selection.
	updated, err := svc.SelectDay(ctx, session.SessionID, 0)
	if err != nil {
		t.Fatalf("switch day: %v", err)
	}
	if updated.SelectedSlot == nil || *updated.SelectedSlot != "2:00 PM" {
		t.Fatalf("selected slot must survive day switch, got %v", updated.SelectedSlot)
	}
	if updated.State != models.SessionSlotSelected {
		t.Fatalf("expected slotSelected state, got %s", updated.State)
	}
}

func TestSelectDay_OutOfRange(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	for _, index := range []int{-1, 30} {
		if _, err := svc.SelectDay(ctx, session.SessionID, index); ErrorCode(err) != CodeDayOutOfRange {
			t.Fatalf("index %d: expected dayOutOfRange, got %v", index, err)
		}
	}
}

func TestSelectSlot_UnknownLabel(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	svc.SelectDay(ctx, session.SessionID, 5)
	if _, err := svc.SelectSlot(ctx, session.SessionID, "8:00 AM"); ErrorCode(err) != CodeSlotNotFound {
		t.Fatalf("expected slotNotFound, got %v", err)
	}
}

func TestConfirmBooking_RequiresSlot(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	if _, err := svc.ConfirmBooking(ctx, session.SessionID); ErrorCode(err) != CodeSlotNotSelected {
		t.Fatalf("expected slotNotSelected, got %v", err)
	}
}

func TestConfirmBooking_BuildsRedirect(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	svc.SelectDay(ctx, session.SessionID, 5)
	svc.SelectSlot(ctx, session.SessionID, "2:00 PM")

	redirect, err := svc.ConfirmBooking(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redirect.DoctorID != "doc-1" || redirect.Time != "2:00 PM" || redirect.Date != "2026-02-02" {
		t.Fatalf("redirect payload wrong: %+v", redirect)
	}
	want := "/book-appointment/confirm?date=2026-02-02&doctorId=doc-1&time=2%3A00+PM"
	if redirect.RedirectURL != want {
		t.Fatalf("expected URL %q, got %q", want, redirect.RedirectURL)
	}
}

func TestConfirmBooking_DoubleSubmitRejected(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	svc.SelectDay(ctx, session.SessionID, 5)
	svc.SelectSlot(ctx, session.SessionID, "2:00 PM")

	if _, err := svc.ConfirmBooking(ctx, session.SessionID); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if _, err := svc.ConfirmBooking(ctx, session.SessionID); ErrorCode(err) != CodeAlreadySubmitting {
		t.Fatalf("expected alreadySubmitting, got %v", err)
	}
}

func TestConfirmBooking_UsesCurrentDayDate(t *testing.T) {
	// The stored slot string persists across a day switch; confirm then uses
	// the CURRENT day's date with the stale label. Observed behavior, kept.
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	svc.SelectDay(ctx, session.SessionID, 5)
	svc.SelectSlot(ctx, session.SessionID, "2:00 PM")
	svc.SelectDay(ctx, session.SessionID, 0)

	redirect, err := svc.ConfirmBooking(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redirect.Date != "2026-01-28" || redirect.Time != "2:00 PM" {
		t.Fatalf("expected current-day date with persisted slot, got %+v", redirect)
	}
}

func TestCancelSession(t *testing.T) {
	svc := newTestService(mondayClinicSource())
	ctx := context.Background()
	session, _ := svc.InitiateSession(ctx, "doc-1", "clinic")

	if err := svc.CancelSession(ctx, session.SessionID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.SelectDay(ctx, session.SessionID, 1); ErrorCode(err) != CodeSessionNotFound {
		t.Fatalf("expected sessionNotFound after cancel, got %v", err)
	}
	if err := svc.CancelSession(ctx, "missing"); ErrorCode(err) != CodeSessionNotFound {
		t.Fatalf("expected sessionNotFound for unknown session, got %v", err)
	}
}
