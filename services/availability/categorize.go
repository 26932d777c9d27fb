package availability

import (
	"strconv"
	"strings"

	"medibook/models"
)

// Categorize partitions a flat slot list into morning/afternoon/evening
// buckets for the mixed summary view. The boundary rule is what existing
// clients already render and is kept bit-for-bit, quirks included: a "12:xx AM"
// label lands in afternoon, and PM hours below 5 (plus 12 PM) are afternoon
// while the rest are evening.
func Categorize(slots []models.TimeSlot) models.PeriodBuckets {
	var buckets models.PeriodBuckets
	for _, slot := range slots {
		hour := leadingHour(slot.Time)
		if !strings.Contains(slot.Time, "PM") {
			if hour < 12 {
				buckets.Morning = append(buckets.Morning, slot)
			} else {
				buckets.Afternoon = append(buckets.Afternoon, slot)
			}
			continue
		}
		if hour < 5 || hour == 12 {
			buckets.Afternoon = append(buckets.Afternoon, slot)
		} else {
			buckets.Evening = append(buckets.Evening, slot)
		}
	}
	return buckets
}

func leadingHour(label string) int {
	digits := 0
	for digits < len(label) && label[digits] >= '0' && label[digits] <= '9' {
		digits++
	}
	hour, _ := strconv.Atoi(label[:digits])
	return hour
}
