package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ics(events ...string) string {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//test//EN"}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

func vevent(props ...string) string {
	lines := []string{"BEGIN:VEVENT", "DTSTAMP:20250901T000000Z"}
	lines = append(lines, props...)
	lines = append(lines, "END:VEVENT")
	return strings.Join(lines, "\r\n")
}

type mergeRecorder struct {
	got []models.Meeting
}

func (r *mergeRecorder) Meeting(string) (models.Meeting, bool) {
	return models.Meeting{}, false
}

func (r *mergeRecorder) MergeMeetings(list []models.Meeting) (int, int) {
	r.got = append(r.got, list...)
	return len(list), 0
}

func TestParseBasicEvent(t *testing.T) {
	doc := ics(vevent(
		"UID:abc-123",
		"SUMMARY:Partner sync",
		`DESCRIPTION:Review Q4\, then pricing`,
		"LOCATION:Hall B • Booth 214",
		"DTSTART:20250916T130000Z",
		"DTEND:20250916T140000Z",
		"ATTENDEE;CN=Jordan Lee:mailto:jordan@example.com",
		"ATTENDEE:mailto:sam@example.com",
	))

	meetings, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, meetings, 1)

	m := meetings[0]
	assert.Equal(t, "abc-123", m.ID)
	assert.Equal(t, "Partner sync", m.Title)
	assert.Equal(t, "Review Q4, then pricing", m.Description)
	assert.Equal(t, "Hall B", m.Location)
	assert.Equal(t, "214", m.Booth)
	assert.True(t, m.Start.Equal(time.Date(2025, time.September, 16, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Hour, m.Duration())
	assert.Equal(t, time.Local, m.Start.Location())
	require.Len(t, m.Attendees, 2)
	assert.Equal(t, "Jordan Lee", m.Attendees[0].Name)
	assert.Equal(t, "sam@example.com", m.Attendees[1].Name)
	assert.NotEmpty(t, m.Attendees[0].ID)
}

func TestParseFiltersEvents(t *testing.T) {
	doc := ics(
		vevent("UID:keep", "SUMMARY:Keep", "DTSTART:20250916T090000Z", "DTEND:20250916T100000Z"),
		vevent("UID:cancel", "SUMMARY:Dinner", "STATUS:CANCELLED", "DTSTART:20250916T180000Z", "DTEND:20250916T190000Z"),
		vevent("UID:cancel-title", "SUMMARY:Canceled: Demo", "DTSTART:20250916T110000Z", "DTEND:20250916T120000Z"),
		vevent("UID:allday", "SUMMARY:Expo", "DTSTART;VALUE=DATE:20250916", "DTEND;VALUE=DATE:20250917"),
		vevent("UID:notime", "SUMMARY:Someday"),
		vevent("UID:untitled", "DTSTART:20250916T140000Z", "DTEND:20250916T150000Z"),
		vevent("UID:blank", "SUMMARY:  ", "DTSTART:20250916T150000Z", "DTEND:20250916T160000Z"),
		vevent("UID:keep", "SUMMARY:Keep again", "DTSTART:20250917T090000Z", "DTEND:20250917T100000Z"),
	)

	meetings, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "keep", meetings[0].ID)
}

func TestParseDurationAndGeneratedID(t *testing.T) {
	doc := ics(vevent("SUMMARY:No uid", "DTSTART:20250916T090000Z", "DURATION:PT30M"))

	meetings, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.NotEmpty(t, meetings[0].ID)
	assert.Equal(t, 30*time.Minute, meetings[0].Duration())
}

func TestParseRecurringKeepsFirstInstance(t *testing.T) {
	doc := ics(vevent(
		"UID:standup",
		"SUMMARY:Booth standup",
		"DTSTART:20250916T080000Z",
		"DTEND:20250916T081500Z",
		"RRULE:FREQ=DAILY;COUNT=3",
	))

	meetings, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.True(t, meetings[0].Start.Equal(time.Date(2025, time.September, 16, 8, 0, 0, 0, time.UTC)))
}

func TestParseWindowsTimezone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	doc := ics(vevent(
		"UID:tz",
		"SUMMARY:Breakfast",
		"DTSTART;TZID=Eastern Standard Time:20250916T080000",
		"DTEND;TZID=Eastern Standard Time:20250916T090000",
	))

	meetings, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.True(t, meetings[0].Start.Equal(time.Date(2025, time.September, 16, 8, 0, 0, 0, ny)))
}

func TestParseRejectsNonCalendar(t *testing.T) {
	for name, doc := range map[string]string{
		"html":  "<!DOCTYPE html><html></html>",
		"json":  `{"meetings":[]}`,
		"empty": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidCalendar)
		})
	}
}

func TestExportRoundTrip(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.Local)
	src := models.SampleMeetings(now)
	src[0].Booth = "214"
	src[0].Description = "Line one\nLine two; with, punctuation"

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, src))
	assert.Contains(t, buf.String(), "BEGIN:VEVENT")

	got, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(src))

	for i := range src {
		assert.Equal(t, src[i].ID, got[i].ID)
		assert.Equal(t, src[i].Title, got[i].Title)
		assert.Equal(t, src[i].Location, got[i].Location)
		assert.Equal(t, src[i].Booth, got[i].Booth)
		assert.Equal(t, src[i].Description, got[i].Description)
		assert.True(t, src[i].Start.Equal(got[i].Start))
		assert.True(t, src[i].End.Equal(got[i].End))

		var want []string
		for _, a := range src[i].Attendees {
			if a.Name != "" {
				want = append(want, a.Name)
			}
		}
		var names []string
		for _, a := range got[i].Attendees {
			names = append(names, a.Name)
		}
		assert.Equal(t, want, names)
	}
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Export(&buf, nil), ErrNoMeetings)
	assert.Zero(t, buf.Len())
}

func TestImportMerges(t *testing.T) {
	doc := ics(vevent("UID:a", "SUMMARY:A", "DTSTART:20250916T090000Z", "DTEND:20250916T100000Z"))

	rec := &mergeRecorder{}
	added, updated, err := Import(rec, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, updated)
	require.Len(t, rec.got, 1)
	assert.Equal(t, "a", rec.got[0].ID)
}

func TestImportInvalidLeavesTargetAlone(t *testing.T) {
	rec := &mergeRecorder{}
	_, _, err := Import(rec, strings.NewReader("not a calendar"))
	assert.ErrorIs(t, err, ErrInvalidCalendar)
	assert.Empty(t, rec.got)
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, time.September, 16, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "tradeshow-meetings-2025-09-16.ics", FileName(now))
}

func TestParseRecoversAttendeeID(t *testing.T) {
	doc := ics(vevent(
		"UID:m1",
		"SUMMARY:Sync",
		"DTSTART:20250916T090000Z",
		"DTEND:20250916T100000Z",
		"ATTENDEE;CN=Ann:urn:uuid:a1",
		"ATTENDEE:urn:uuid:a2",
	))

	meetings, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	require.Len(t, meetings[0].Attendees, 1)
	assert.Equal(t, models.Attendee{ID: "a1", Name: "Ann"}, meetings[0].Attendees[0])
}

func TestImportKeepsPlannerOnlyFields(t *testing.T) {
	start := time.Date(2025, time.September, 16, 9, 0, 0, 0, time.Local)
	original := models.Meeting{
		ID:            "m1",
		Title:         "Pricing review",
		Location:      "Hall B",
		Booth:         "214",
		Start:         start,
		End:           start.Add(time.Hour),
		TalkingPoints: "pricing",
		PrepChecklist: "deck",
		Attendees: []models.Attendee{
			{ID: "a1", Name: "Ann", Title: "VP Sales", Company: "Acme", LinkedIn: "https://www.linkedin.com/in/ann", PhotoURL: "https://img/ann.png", Notes: "likes golf"},
			{ID: "a2", Name: "", Notes: "name pending"},
		},
	}
	ps := store.NewPlannerStore(store.NewMemoryStore(), "ics-test", store.Seed{Meetings: []models.Meeting{original}})

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, ps.Meetings()))

	added, updated, err := Import(ps, &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, updated)

	got, ok := ps.Meeting("m1")
	require.True(t, ok)
	assert.Equal(t, original.Title, got.Title)
	assert.Equal(t, original.Location, got.Location)
	assert.Equal(t, original.Booth, got.Booth)
	assert.True(t, original.Start.Equal(got.Start))
	assert.True(t, original.End.Equal(got.End))
	assert.Equal(t, "pricing", got.TalkingPoints)
	assert.Equal(t, "deck", got.PrepChecklist)
	assert.Equal(t, original.Attendees, got.Attendees)
}

func TestImportUpdatesCalendarFields(t *testing.T) {
	start := time.Date(2025, time.September, 16, 9, 0, 0, 0, time.Local)
	ps := store.NewPlannerStore(store.NewMemoryStore(), "ics-test", store.Seed{Meetings: []models.Meeting{{
		ID:            "m1",
		Title:         "Old title",
		Start:         start,
		End:           start.Add(time.Hour),
		TalkingPoints: "pricing",
		Attendees: []models.Attendee{
			{ID: "a1", Name: "Ann", Company: "Acme"},
			{ID: "a2", Name: "Bo", Company: "Globex"},
		},
	}}})

	doc := ics(vevent(
		"UID:m1",
		"SUMMARY:New title",
		"LOCATION:Hall C • Booth 9",
		"DTSTART:20250917T130000Z",
		"DTEND:20250917T143000Z",
		"ATTENDEE;CN=ann:mailto:ann@acme.test",
		"ATTENDEE;CN=Cy:mailto:cy@initech.test",
	))

	_, updated, err := Import(ps, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	got, ok := ps.Meeting("m1")
	require.True(t, ok)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "Hall C", got.Location)
	assert.Equal(t, "9", got.Booth)
	assert.True(t, got.Start.Equal(time.Date(2025, time.September, 17, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, 90*time.Minute, got.Duration())
	assert.Equal(t, "pricing", got.TalkingPoints)

	require.Len(t, got.Attendees, 2)
	assert.Equal(t, models.Attendee{ID: "a1", Name: "ann", Company: "Acme"}, got.Attendees[0])
	assert.Equal(t, "Cy", got.Attendees[1].Name)
	assert.NotEqual(t, "a2", got.Attendees[1].ID)
}
