package schedule

import (
	"sort"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

// Direction selects the neighbouring day for ShiftDay
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// MeetingsOnDay returns the meetings starting on day's local calendar date,
// ordered by start. Meetings with equal starts keep their list order.
func MeetingsOnDay(list []models.Meeting, day time.Time) []models.Meeting {
	result := make([]models.Meeting, 0)
	for _, m := range list {
		if SameDay(m.Start, day) {
			result = append(result, m)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})
	return result
}

// DistinctDays returns the local midnights of every day on which a meeting
// starts, deduplicated and ascending
func DistinctDays(list []models.Meeting) []time.Time {
	seen := make(map[string]bool)
	days := make([]time.Time, 0)

	for _, m := range list {
		d := DayOf(m.Start)
		key := d.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, d)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// ShiftDay returns the day next to current in days. The boolean is false
// when there is no neighbour in that direction. When current is not in days,
// Next lands on the first day and Previous has no target.
func ShiftDay(days []time.Time, current time.Time, dir Direction) (time.Time, bool) {
	idx := -1
	for i, d := range days {
		if SameDay(d, current) {
			idx = i
			break
		}
	}

	target := idx + int(dir)
	if target < 0 || target >= len(days) {
		return time.Time{}, false
	}
	return days[target], true
}
