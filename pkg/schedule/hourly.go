package schedule

import (
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

// The hourly grid covers 07:00 through 19:00 local time
const (
	GridStartHour = 7
	GridSlots     = 13
)

// Slot is one hour of the grid and the meetings that occupy it
type Slot struct {
	Start    time.Time
	Meetings []models.Meeting
}

// Occupies reports whether m is in progress at h. Start is inclusive, end exclusive.
func Occupies(m models.Meeting, h time.Time) bool {
	return !m.Start.After(h) && m.End.After(h)
}

// HourlySlots buckets meetings into the hourly grid for day
func HourlySlots(meetings []models.Meeting, day time.Time) []Slot {
	l := day.In(time.Local)
	first := time.Date(l.Year(), l.Month(), l.Day(), GridStartHour, 0, 0, 0, time.Local)

	slots := make([]Slot, GridSlots)
	for i := range slots {
		h := first.Add(time.Duration(i) * time.Hour)
		slots[i] = Slot{Start: h, Meetings: make([]models.Meeting, 0)}
		for _, m := range meetings {
			if Occupies(m, h) {
				slots[i].Meetings = append(slots[i].Meetings, m)
			}
		}
	}
	return slots
}
