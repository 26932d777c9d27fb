package availability

import "medibook/models"

// ModeFromConsultationType maps the query-level consultation type onto an
// availability mode: "video" means online, anything else means clinic.
func ModeFromConsultationType(consultationType string) string {
	if consultationType == "video" {
		return models.ModeOnline
	}
	return models.ModeClinic
}

// FilterRecords keeps only active records whose type matches the requested
// mode. Order is preserved; an empty result is valid and simply renders as
// no availability downstream.
func FilterRecords(records []models.AvailabilityRecord, mode string) []models.AvailabilityRecord {
	filtered := make([]models.AvailabilityRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsActive && rec.AvailabilityType == mode {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
