package models

// Consultation modes a doctor can offer.
const (
	ModeClinic = "clinic"
	ModeOnline = "online"
)

// OnlineConsultationLabel is the grouping key used for online availability,
// in place of a clinic address.
const OnlineConsultationLabel = "Online Consultation"

// AvailabilityRecord is a recurring weekly open-hours window for a doctor,
// as returned by the care API. Read-only input; inactive records are
// excluded from expansion entirely.
type AvailabilityRecord struct {
	ID               string `json:"id"`
	DayOfWeek        string `json:"dayOfWeek"` // "Sunday".."Saturday"
	StartTime        string `json:"startTime"` // "HH:MM", 24-hour
	EndTime          string `json:"endTime"`   // "HH:MM", 24-hour
	AvailabilityType string `json:"availabilityType"` // "clinic" or "online"
	Address          string `json:"address"`          // meaningful only for clinic mode
	IsActive         bool   `json:"isActive"`
}
