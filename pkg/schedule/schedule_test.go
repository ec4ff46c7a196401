package schedule

import (
	"testing"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, min int) time.Time {
	return time.Date(2025, time.September, day, hour, min, 0, 0, time.Local)
}

func meeting(id string, start, end time.Time) models.Meeting {
	return models.Meeting{ID: id, Title: id, Start: start, End: end}
}

func ids(list []models.Meeting) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(at(16, 0, 0), at(16, 23, 59)))
	assert.False(t, SameDay(at(16, 23, 59), at(17, 0, 0)))
	assert.True(t, SameDay(at(16, 12, 0).UTC(), at(16, 12, 0)))
}

func TestHoursBetween(t *testing.T) {
	assert.Equal(t, 1.0, HoursBetween(at(16, 9, 0), at(16, 10, 0)))
	assert.Equal(t, 0.5, HoursBetween(at(16, 9, 0), at(16, 9, 30)))
	assert.Equal(t, 0.0, HoursBetween(at(16, 9, 30), at(16, 9, 30)))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "09:05", FormatTime(at(16, 9, 5)))
	assert.Equal(t, "Sep 16, 2025", FormatDate(at(16, 9, 5)))
	assert.Equal(t, "09:00–10:30", FormatRange(at(16, 9, 0), at(16, 10, 30)))
	assert.Equal(t, "2025-09-16 09:05", FormatDateTime(at(16, 9, 5)))
	assert.Equal(t, "2025-09-16", DateStamp(time.Date(2025, time.September, 16, 12, 0, 0, 0, time.UTC)))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2025-09-16 09:05")
	require.NoError(t, err)
	assert.True(t, got.Equal(at(16, 9, 5)))

	_, err = ParseDateTime("16/09/2025")
	assert.Error(t, err)
}

func TestMeetingsOnDayFiltersAndSorts(t *testing.T) {
	list := []models.Meeting{
		meeting("late", at(16, 15, 0), at(16, 16, 0)),
		meeting("other-day", at(17, 9, 0), at(17, 10, 0)),
		meeting("early", at(16, 9, 0), at(16, 10, 0)),
		meeting("mid", at(16, 11, 0), at(16, 12, 0)),
	}

	got := MeetingsOnDay(list, at(16, 18, 0))
	assert.Equal(t, []string{"early", "mid", "late"}, ids(got))

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Start.Before(got[i-1].Start))
	}
}

func TestMeetingsOnDayStableForEqualStarts(t *testing.T) {
	list := []models.Meeting{
		meeting("b", at(16, 9, 0), at(16, 10, 0)),
		meeting("a", at(16, 9, 0), at(16, 9, 30)),
		meeting("first", at(16, 8, 0), at(16, 9, 0)),
	}
	assert.Equal(t, []string{"first", "b", "a"}, ids(MeetingsOnDay(list, at(16, 0, 0))))

	list[0], list[1] = list[1], list[0]
	assert.Equal(t, []string{"first", "a", "b"}, ids(MeetingsOnDay(list, at(16, 0, 0))))
}

func TestMeetingsOnDayDoesNotReorderInput(t *testing.T) {
	list := []models.Meeting{
		meeting("late", at(16, 15, 0), at(16, 16, 0)),
		meeting("early", at(16, 9, 0), at(16, 10, 0)),
	}
	MeetingsOnDay(list, at(16, 0, 0))
	assert.Equal(t, []string{"late", "early"}, ids(list))
}

func TestMeetingsOnDayEmpty(t *testing.T) {
	assert.Empty(t, MeetingsOnDay(nil, at(16, 0, 0)))
	assert.Empty(t, MeetingsOnDay([]models.Meeting{meeting("x", at(17, 9, 0), at(17, 10, 0))}, at(16, 0, 0)))
}

func TestDistinctDays(t *testing.T) {
	list := []models.Meeting{
		meeting("a", at(18, 9, 0), at(18, 10, 0)),
		meeting("b", at(16, 14, 0), at(16, 15, 0)),
		meeting("c", at(16, 9, 0), at(16, 10, 0)),
		meeting("d", at(17, 23, 30), at(18, 0, 30)),
	}

	days := DistinctDays(list)
	require.Len(t, days, 3)
	assert.True(t, days[0].Equal(at(16, 0, 0)))
	assert.True(t, days[1].Equal(at(17, 0, 0)))
	assert.True(t, days[2].Equal(at(18, 0, 0)))

	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].After(days[i-1]))
	}
}

func TestShiftDay(t *testing.T) {
	days := []time.Time{at(16, 0, 0), at(17, 0, 0), at(19, 0, 0)}

	tests := []struct {
		name    string
		current time.Time
		dir     Direction
		want    time.Time
		ok      bool
	}{
		{"next from middle", at(17, 13, 0), Next, at(19, 0, 0), true},
		{"previous from middle", at(17, 13, 0), Previous, at(16, 0, 0), true},
		{"previous at first day", at(16, 9, 0), Previous, time.Time{}, false},
		{"next at last day", at(19, 9, 0), Next, time.Time{}, false},
		{"next from unknown day", at(25, 9, 0), Next, at(16, 0, 0), true},
		{"previous from unknown day", at(25, 9, 0), Previous, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ShiftDay(days, tt.current, tt.dir)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestShiftDayEmpty(t *testing.T) {
	_, ok := ShiftDay(nil, at(16, 0, 0), Next)
	assert.False(t, ok)
}

func TestShiftDayRoundTrip(t *testing.T) {
	days := []time.Time{at(16, 0, 0), at(17, 0, 0), at(18, 0, 0)}

	next, ok := ShiftDay(days, at(17, 0, 0), Next)
	require.True(t, ok)
	back, ok := ShiftDay(days, next, Previous)
	require.True(t, ok)
	assert.True(t, SameDay(back, at(17, 0, 0)))
}

func TestHourlySlotsRange(t *testing.T) {
	slots := HourlySlots(nil, at(16, 15, 0))
	require.Len(t, slots, GridSlots)
	assert.True(t, slots[0].Start.Equal(at(16, 7, 0)))
	assert.True(t, slots[GridSlots-1].Start.Equal(at(16, 19, 0)))
	for _, s := range slots {
		assert.Empty(t, s.Meetings)
	}
}

func TestHourlySlotsBoundaries(t *testing.T) {
	m := meeting("m", at(16, 9, 0), at(16, 10, 0))
	zero := meeting("zero", at(16, 9, 30), at(16, 9, 30))

	slots := HourlySlots([]models.Meeting{m, zero}, at(16, 0, 0))

	assert.Equal(t, []string{"m"}, ids(slots[2].Meetings)) // 09:00
	assert.Empty(t, slots[3].Meetings)                     // 10:00
	for _, s := range slots {
		assert.NotContains(t, ids(s.Meetings), "zero")
	}
}

func TestOccupies(t *testing.T) {
	m := meeting("m", at(16, 9, 0), at(16, 10, 0))
	assert.True(t, Occupies(m, at(16, 9, 0)))
	assert.True(t, Occupies(m, at(16, 9, 59)))
	assert.False(t, Occupies(m, at(16, 10, 0)))
	assert.False(t, Occupies(m, at(16, 8, 59)))
}

func TestOverlappingMeetingsScenario(t *testing.T) {
	m1 := meeting("M1", at(16, 9, 0), at(16, 10, 0))
	m2 := meeting("M2", at(16, 9, 30), at(16, 10, 30))

	day := MeetingsOnDay([]models.Meeting{m2, m1}, at(16, 0, 0))
	assert.Equal(t, []string{"M1", "M2"}, ids(day))

	slots := HourlySlots(day, at(16, 0, 0))
	assert.True(t, Occupies(m1, at(16, 9, 30)))
	assert.True(t, Occupies(m2, at(16, 9, 30)))
	assert.Equal(t, []string{"M1"}, ids(slots[2].Meetings)) // 09:00
	assert.Equal(t, []string{"M2"}, ids(slots[3].Meetings)) // 10:00
}

func TestProjectAndShift(t *testing.T) {
	list := []models.Meeting{
		meeting("a", at(16, 9, 0), at(16, 10, 0)),
		meeting("b", at(17, 11, 0), at(17, 12, 0)),
	}

	v := Project(list, at(16, 0, 0))
	assert.Equal(t, []string{"a"}, ids(v.Meetings))
	assert.Len(t, v.Days, 2)
	assert.Len(t, v.Slots, GridSlots)
	assert.Equal(t, []string{"a"}, ids(v.Slots[2].Meetings))

	v = v.Shift(list, Next)
	assert.True(t, SameDay(v.Active, at(17, 0, 0)))
	assert.Equal(t, []string{"b"}, ids(v.Meetings))

	same := v.Shift(list, Next)
	assert.True(t, SameDay(same.Active, at(17, 0, 0)))
}

func TestProjectAfterDelete(t *testing.T) {
	keep := meeting("keep", at(16, 9, 0), at(16, 11, 0))
	gone := meeting("gone", at(16, 10, 0), at(16, 11, 0))

	before := Project([]models.Meeting{keep, gone}, at(16, 0, 0))
	assert.Equal(t, []string{"keep", "gone"}, ids(before.Slots[3].Meetings))

	after := Project([]models.Meeting{keep}, at(16, 0, 0))
	assert.Equal(t, []string{"keep"}, ids(after.Meetings))
	for _, s := range after.Slots {
		assert.NotContains(t, ids(s.Meetings), "gone")
	}
	assert.Equal(t, []string{"keep"}, ids(after.Slots[3].Meetings))
}
