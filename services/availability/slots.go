package availability

import (
	"fmt"
	"strconv"
	"strings"

	"medibook/models"
)

// SlotIntervalMinutes is the fixed slot granularity, matching the default
// appointment duration used by the dashboards.
const SlotIntervalMinutes = 30

// GenerateSlots slices a [start, end) wall-clock interval into 30-minute
// slot start labels. The interval is half-open: a slot landing exactly on
// end is excluded. Equal or inverted bounds yield no slots. Time strings are
// expected to be well-formed "HH:MM"; shape validation is the caller's job.
func GenerateSlots(startTime, endTime, recordID string) []models.TimeSlot {
	startHour, startMin := parseClock(startTime)
	endHour, endMin := parseClock(endTime)

	var slots []models.TimeSlot
	hour, min := startHour, startMin
	for hour < endHour || (hour == endHour && min < endMin) {
		slots = append(slots, models.TimeSlot{
			Time:      formatLabel(hour, min),
			Available: true,
			SlotID:    recordID,
		})
		min += SlotIntervalMinutes
		if min >= 60 {
			min -= 60
			hour++
		}
	}
	return slots
}

func parseClock(value string) (hour, min int) {
	parts := strings.SplitN(value, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		min, _ = strconv.Atoi(parts[1])
	}
	return hour, min
}

// formatLabel renders a 24-hour clock value as a 12-hour label:
// 0 -> "12:MM AM", 12 -> "12:MM PM", 13..23 -> "1:MM PM".."11:MM PM".
func formatLabel(hour, min int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, min, suffix)
}
