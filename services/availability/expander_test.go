package availability

import (
	"reflect"
	"testing"
	"time"

	"medibook/models"
)

// 2026-01-28 is a Wednesday; the Mondays inside the 30-day window fall on
// Feb 2, 9, 16 and 23.
var testNow = time.Date(2026, 1, 28, 10, 30, 0, 0, time.UTC)

func clinicRecord(id, day, start, end, address string) models.AvailabilityRecord {
	return models.AvailabilityRecord{
		ID:               id,
		DayOfWeek:        day,
		StartTime:        start,
		EndTime:          end,
		AvailabilityType: models.ModeClinic,
		Address:          address,
		IsActive:         true,
	}
}

func TestBuildSchedule_ThirtyDayCoverage(t *testing.T) {
	records := []models.AvailabilityRecord{
		clinicRecord("rec-1", "Monday", "09:00", "10:00", "City Hospital"),
	}

	schedule := BuildSchedule(records, testNow)
	if len(schedule) != HorizonDays {
		t.Fatalf("expected %d days, got %d", HorizonDays, len(schedule))
	}
	if schedule[0].DayName != "Today, Wed" {
		t.Fatalf("expected day 0 label %q, got %q", "Today, Wed", schedule[0].DayName)
	}
	if schedule[0].Date != "2026-01-28" {
		t.Fatalf("expected day 0 date 2026-01-28, got %s", schedule[0].Date)
	}
	if schedule[1].DayName != "Jan 29, Thu" {
		t.Fatalf("expected day 1 label %q, got %q", "Jan 29, Thu", schedule[1].DayName)
	}
	if schedule[29].Date != "2026-02-26" {
		t.Fatalf("expected day 29 date 2026-02-26, got %s", schedule[29].Date)
	}
}

func TestBuildSchedule_MondayClinicScenario(t *testing.T) {
	records := []models.AvailabilityRecord{
		clinicRecord("rec-1", "Monday", "14:00", "15:00", "City Hospital"),
	}

	schedule := BuildSchedule(records, testNow)
	mondays := map[string]bool{
		"2026-02-02": true, "2026-02-09": true, "2026-02-16": true, "2026-02-23": true,
	}

	for _, day := range schedule {
		if !mondays[day.Date] {
			if len(day.Hospitals) != 0 {
				t.Fatalf("%s: expected no hospitals, got %d", day.Date, len(day.Hospitals))
			}
			continue
		}
		if len(day.Hospitals) != 1 {
			t.Fatalf("%s: expected 1 hospital, got %d", day.Date, len(day.Hospitals))
		}
		hosp := day.Hospitals[0]
		if hosp.HospitalName != "City Hospital" {
			t.Fatalf("%s: expected City Hospital, got %q", day.Date, hosp.HospitalName)
		}
		labels := slotLabels(hosp.Slots)
		want := []string{"2:00 PM", "2:30 PM"}
		if !reflect.DeepEqual(labels, want) {
			t.Fatalf("%s: expected slots %v, got %v", day.Date, want, labels)
		}
	}
}

func TestBuildSchedule_SameAddressMerge(t *testing.T) {
	// Two windows at the same address concatenate in record-encounter order,
	// no de-duplication and no re-sort.
	records := []models.AvailabilityRecord{
		clinicRecord("rec-2", "Monday", "14:00", "15:00", "City Hospital"),
		clinicRecord("rec-1", "Monday", "09:00", "10:00", "City Hospital"),
	}

	schedule := BuildSchedule(records, testNow)
	day := schedule[5] // 2026-02-02, first Monday
	if len(day.Hospitals) != 1 {
		t.Fatalf("expected the shared address to merge into 1 hospital, got %d", len(day.Hospitals))
	}
	labels := slotLabels(day.Hospitals[0].Slots)
	want := []string{"2:00 PM", "2:30 PM", "9:00 AM", "9:30 AM"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("expected encounter-order slots %v, got %v", want, labels)
	}
}

func TestBuildSchedule_OnlineGroupingKey(t *testing.T) {
	records := []models.AvailabilityRecord{
		{
			ID: "rec-1", DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00",
			AvailabilityType: models.ModeOnline, Address: "ignored for online", IsActive: true,
		},
	}

	schedule := BuildSchedule(records, testNow)
	day := schedule[5]
	if len(day.Hospitals) != 1 || day.Hospitals[0].HospitalName != models.OnlineConsultationLabel {
		t.Fatalf("expected online records grouped under %q, got %+v", models.OnlineConsultationLabel, day.Hospitals)
	}
}

func TestBuildSchedule_Idempotent(t *testing.T) {
	records := []models.AvailabilityRecord{
		clinicRecord("rec-1", "Monday", "09:00", "11:00", "City Hospital"),
		clinicRecord("rec-2", "Thursday", "14:00", "15:00", "Green Valley Clinic"),
	}

	first := BuildSchedule(records, testNow)
	second := BuildSchedule(records, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected deep-equal output across runs with identical input")
	}
}

func TestBuildSchedule_SkipsRecordsMissingTimes(t *testing.T) {
	records := []models.AvailabilityRecord{
		clinicRecord("rec-1", "Monday", "09:00", "", "City Hospital"),
	}

	schedule := BuildSchedule(records, testNow)
	for _, day := range schedule {
		if len(day.Hospitals) != 0 {
			t.Fatalf("%s: record without end time must contribute nothing", day.Date)
		}
	}
}

func TestBuildSchedule_InvertedWindowYieldsEmptySlots(t *testing.T) {
	// An inverted window is treated as empty, not as an error: the hospital
	// entry appears with zero slots.
	records := []models.AvailabilityRecord{
		clinicRecord("rec-1", "Monday", "15:00", "14:00", "City Hospital"),
	}

	schedule := BuildSchedule(records, testNow)
	day := schedule[5]
	if len(day.Hospitals) != 1 {
		t.Fatalf("expected 1 hospital entry, got %d", len(day.Hospitals))
	}
	if len(day.Hospitals[0].Slots) != 0 {
		t.Fatalf("expected zero slots for inverted window, got %v", slotLabels(day.Hospitals[0].Slots))
	}
}
