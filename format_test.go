package main

import (
	"testing"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.September, 16, hour, min, 0, 0, time.Local)
}

func TestAgendaLines(t *testing.T) {
	m := models.Meeting{Title: "Intro", Location: "Hall B", Booth: "B122", Start: at(9, 0), End: at(10, 30)}

	assert.Equal(t, "09:00–10:30 • Intro", agendaLine(m))
	assert.Equal(t, "Hall B • Booth B122", placeLine(m))
	assert.Equal(t, "Sep 16, 2025 • 09:00–10:30", detailHeader(m))
	assert.Equal(t, "1.5 hrs • Hall B • Booth B122", detailSubtitle(m))

	m.Location = ""
	assert.Equal(t, "Booth B122", placeLine(m))
	m.Booth = ""
	assert.Equal(t, "", placeLine(m))
}

func TestAttendeeLines(t *testing.T) {
	a := models.Attendee{Name: "Chris", Title: "VP Partnerships", Company: "NorthBridge"}
	assert.Equal(t, "VP Partnerships • NorthBridge", attendeeSubtitle(a))
	assert.Equal(t, "Chris • VP Partnerships • NorthBridge", attendeeLine(a))

	assert.Equal(t, "(unnamed)", attendeeLine(models.Attendee{}))
	assert.Equal(t, "NorthBridge", attendeeSubtitle(models.Attendee{Company: "NorthBridge"}))
}

func TestTravelLine(t *testing.T) {
	start, end := at(7, 0), at(9, 15)

	cases := []struct {
		name string
		in   models.Travel
		want string
	}{
		{
			name: "full",
			in:   models.Travel{Type: models.TravelFlight, Label: "ATL → BOS", Confirmation: "Z7X9QW", Start: &start, End: &end},
			want: "Flight: ATL → BOS • Conf#: Z7X9QW • Sep 16, 2025 07:00 → Sep 16, 2025 09:15",
		},
		{
			name: "label only",
			in:   models.Travel{Type: models.TravelGround, Label: "Shuttle"},
			want: "Ground: Shuttle",
		},
		{
			name: "start only",
			in:   models.Travel{Type: models.TravelHotel, Label: "Seaport", Start: &start},
			want: "Hotel: Seaport • Sep 16, 2025 07:00",
		},
		{
			name: "end only",
			in:   models.Travel{Type: models.TravelHotel, Label: "Seaport", End: &end},
			want: "Hotel: Seaport • until Sep 16, 2025 09:15",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, travelLine(tc.in))
		})
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "→→→→→→→...", truncateString("→→→→→→→→→→→→", 10))
}

func TestOptionalTime(t *testing.T) {
	got, err := parseOptionalTime("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalTime("2025-09-16 09:30")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(at(9, 30)))
	assert.Equal(t, "2025-09-16 09:30", optionalTime(got))
	assert.Equal(t, "", optionalTime(nil))

	_, err = parseOptionalTime("tomorrow")
	assert.Error(t, err)
	assert.Error(t, validDateTime(""))
	assert.NoError(t, validDateTime("2025-09-16 09:30"))
}

func TestTodaysMeetings(t *testing.T) {
	list := []models.Meeting{
		{ID: "late", Start: at(15, 0), End: at(16, 0)},
		{ID: "other-day", Start: at(9, 0).AddDate(0, 0, 1), End: at(10, 0).AddDate(0, 0, 1)},
		{ID: "early", Start: at(8, 0), End: at(9, 0)},
		{ID: "mid", Start: at(11, 0), End: at(12, 0)},
	}

	got := todaysMeetings(list, at(12, 0), 2)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)

	assert.Equal(t, "08:00 – Standup", trayLine(models.Meeting{Title: "Standup", Start: at(8, 0)}))
}

func TestInitialActiveDate(t *testing.T) {
	now := time.Date(2025, time.March, 3, 14, 0, 0, 0, time.Local)

	cfg := models.DefaultConfig()
	assert.True(t, initialActiveDate(cfg, now).Equal(models.SampleShowDate(now)))

	cfg.SeedSampleData = false
	assert.True(t, initialActiveDate(cfg, now).Equal(now))
}
