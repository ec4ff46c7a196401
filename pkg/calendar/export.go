package calendar

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/emersion/go-ical"
)

const productID = "-//borgmon//Tradeshow Assistant//EN"

// ErrNoMeetings is returned when there is nothing to export
var ErrNoMeetings = errors.New("no meetings to export")

// FileName returns the suggested .ics export name
func FileName(now time.Time) string {
	return fmt.Sprintf("tradeshow-meetings-%s.ics", now.UTC().Format("2006-01-02"))
}

// Export writes one VEVENT per meeting
func Export(w io.Writer, meetings []models.Meeting) error {
	if len(meetings) == 0 {
		return ErrNoMeetings
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := time.Now().UTC()
	for _, m := range meetings {
		cal.Children = append(cal.Children, meetingEvent(m, stamp).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func meetingEvent(m models.Meeting, stamp time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, m.ID)
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	event.Props.SetDateTime(ical.PropDateTimeStart, m.Start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, m.End.UTC())
	event.Props.SetText(ical.PropSummary, m.Title)

	if m.Description != "" {
		event.Props.SetText(ical.PropDescription, m.Description)
	}
	if loc := joinLocation(m.Location, m.Booth); loc != "" {
		event.Props.SetText(ical.PropLocation, loc)
	}

	for _, a := range m.Attendees {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		prop := ical.NewProp(ical.PropAttendee)
		prop.Value = urnUUIDPrefix + a.ID
		prop.Params.Set(ical.ParamCommonName, name)
		event.Props.Add(prop)
	}

	return event
}
