package schedule

import (
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

// View is everything the schedule card renders for one active date
type View struct {
	Active   time.Time
	Meetings []models.Meeting
	Days     []time.Time
	Slots    []Slot
}

// Project derives the schedule view from the meeting list and the active date.
// It keeps no state and is recomputed on every change.
func Project(list []models.Meeting, active time.Time) View {
	day := MeetingsOnDay(list, active)
	return View{
		Active:   active,
		Meetings: day,
		Days:     DistinctDays(list),
		Slots:    HourlySlots(day, active),
	}
}

// Shift moves the active date to the neighbouring meeting day, or returns
// the view unchanged when there is none
func (v View) Shift(list []models.Meeting, dir Direction) View {
	next, ok := ShiftDay(v.Days, v.Active, dir)
	if !ok {
		return v
	}
	return Project(list, next)
}
