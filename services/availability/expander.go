package availability

import (
	"time"

	"medibook/models"
)

// HorizonDays is the fixed forward window over which recurring weekly
// availability is materialized into concrete dates, today inclusive.
const HorizonDays = 30

// BuildSchedule projects filtered weekly records onto the next HorizonDays
// calendar days. It is a pure function of (records, now): re-running it on
// the same input produces deep-equal output.
//
// Records sharing a grouping key on the same day concatenate their slots in
// record-encounter order; nothing is de-duplicated or re-sorted, so callers
// wanting strict time order within a merged hospital must pre-sort records.
func BuildSchedule(records []models.AvailabilityRecord, now time.Time) []models.DayAvailability {
	// Weekday grouping is computed once per filtered set, not per day.
	byWeekday := make(map[string][]models.AvailabilityRecord)
	for _, rec := range records {
		byWeekday[rec.DayOfWeek] = append(byWeekday[rec.DayOfWeek], rec)
	}

	schedule := make([]models.DayAvailability, 0, HorizonDays)
	for i := 0; i < HorizonDays; i++ {
		date := now.AddDate(0, 0, i)

		hospitalSlots := make(map[string][]models.TimeSlot)
		var hospitalOrder []string
		for _, rec := range byWeekday[date.Weekday().String()] {
			if rec.StartTime == "" || rec.EndTime == "" {
				continue
			}
			key := rec.Address
			if rec.AvailabilityType == models.ModeOnline {
				key = models.OnlineConsultationLabel
			}
			if _, seen := hospitalSlots[key]; !seen {
				hospitalOrder = append(hospitalOrder, key)
			}
			hospitalSlots[key] = append(hospitalSlots[key], GenerateSlots(rec.StartTime, rec.EndTime, rec.ID)...)
		}

		hospitals := make([]models.HospitalAvailability, 0, len(hospitalOrder))
		for _, key := range hospitalOrder {
			hospitals = append(hospitals, models.HospitalAvailability{
				HospitalName: key,
				Slots:        hospitalSlots[key],
			})
		}

		schedule = append(schedule, models.DayAvailability{
			Date:      date.Format("2006-01-02"),
			DayName:   dayLabel(date, i),
			Hospitals: hospitals,
		})
	}
	return schedule
}

func dayLabel(date time.Time, offset int) string {
	if offset == 0 {
		return "Today, " + date.Format("Mon")
	}
	return date.Format("Jan 2") + ", " + date.Format("Mon")
}
