package models

// TimeSlot is a concrete 30-minute bookable start instance derived from an
// availability record. The label carries only the start instant.
type TimeSlot struct {
	Time      string `json:"time"`      // 12-hour label, e.g. "2:30 PM"
	Available bool   `json:"available"` // always true for generated slots
	SlotID    string `json:"slotId"`    // originating AvailabilityRecord.ID
}

// HospitalAvailability groups a day's slots under one location key: the
// clinic address, or OnlineConsultationLabel for online mode.
type HospitalAvailability struct {
	HospitalName string     `json:"hospitalName"`
	Slots        []TimeSlot `json:"slots"`
}

// DayAvailability is one calendar day of the expanded schedule.
type DayAvailability struct {
	Date      string                 `json:"date"`    // "YYYY-MM-DD"
	DayName   string                 `json:"dayName"` // "Today, Mon" or "Sep 1, Mon"
	Hospitals []HospitalAvailability `json:"hospitals"`
}

// PeriodBuckets partitions a flat slot list by period of day for the
// mixed/mobile summary view.
type PeriodBuckets struct {
	Morning   []TimeSlot `json:"morning"`
	Afternoon []TimeSlot `json:"afternoon"`
	Evening   []TimeSlot `json:"evening"`
}
