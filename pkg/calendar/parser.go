package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const (
	boothSeparator = " • Booth "
	mailtoPrefix   = "mailto:"
	urnUUIDPrefix  = "urn:uuid:"
)

var cancelledTitle = regexp.MustCompile(`[^a-z0-9]+`)

// parsedEvent is a VEVENT before filtering
type parsedEvent struct {
	meeting   models.Meeting
	status    string
	dateOnly  bool
	recurring bool
}

func parseEvent(comp *ical.Component) parsedEvent {
	normalizeComponentTimezones(comp)
	loc := getTimezoneFromComponent(comp)

	ev := parsedEvent{}
	m := &ev.meeting

	if uidProp := comp.Props.Get(ical.PropUID); uidProp != nil {
		m.ID = strings.TrimSpace(uidProp.Value)
	}

	m.Title = textValue(comp, ical.PropSummary)
	m.Description = textValue(comp, ical.PropDescription)
	m.Location, m.Booth = splitLocation(textValue(comp, ical.PropLocation))

	if startProp := comp.Props.Get(ical.PropDateTimeStart); startProp != nil {
		ev.dateOnly = startProp.ValueType() == ical.ValueDate
		if t, err := parseDateTimeProperty(startProp, loc); err == nil {
			m.Start = t
		}
	}

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if t, err := parseDateTimeProperty(endProp, loc); err == nil {
			m.End = t
		}
	} else if durProp := comp.Props.Get(ical.PropDuration); durProp != nil && !m.Start.IsZero() {
		if d, err := durProp.Duration(); err == nil {
			m.End = m.Start.Add(d)
		}
	}

	for _, att := range comp.Props.Values(ical.PropAttendee) {
		value := strings.TrimSpace(att.Value)
		name := strings.TrimSpace(att.Params.Get(ical.ParamCommonName))
		if name == "" && hasPrefixFold(value, mailtoPrefix) {
			name = strings.ToLower(value[len(mailtoPrefix):])
		}
		if name == "" {
			continue
		}
		m.Attendees = append(m.Attendees, models.Attendee{ID: attendeeID(value), Name: name})
	}

	if statusProp := comp.Props.Get(ical.PropStatus); statusProp != nil {
		ev.status = strings.ToUpper(statusProp.Value)
	}
	if ev.status != "CANCELLED" && isCancelledTitle(m.Title) {
		ev.status = "CANCELLED"
	}

	ev.recurring = comp.Props.Get(ical.PropRecurrenceRule) != nil

	return ev
}

func textValue(comp *ical.Component, name string) string {
	prop := comp.Props.Get(name)
	if prop == nil {
		return ""
	}
	if s, err := prop.Text(); err == nil {
		return s
	}
	return prop.Value
}

func parseDateTimeProperty(prop *ical.Prop, loc *time.Location) (time.Time, error) {
	if t, err := prop.DateTime(loc); err == nil {
		return t.In(time.Local), nil
	}

	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, loc); err == nil {
			return t.In(time.Local), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}

// splitLocation undoes the location/booth join written by Export
func splitLocation(value string) (location, booth string) {
	if i := strings.LastIndex(value, boothSeparator); i >= 0 {
		return value[:i], value[i+len(boothSeparator):]
	}
	return value, ""
}

func joinLocation(location, booth string) string {
	if booth == "" {
		return location
	}
	return location + boothSeparator + booth
}

func isCancelledTitle(title string) bool {
	clean := cancelledTitle.ReplaceAllString(strings.ToLower(title), "")
	return strings.HasPrefix(clean, "canceled") || strings.HasPrefix(clean, "cancelled")
}

// attendeeID recovers the id written by Export, or makes a new one
func attendeeID(value string) string {
	if hasPrefixFold(value, urnUUIDPrefix) {
		if id := strings.TrimSpace(value[len(urnUUIDPrefix):]); id != "" {
			return id
		}
	}
	return uuid.NewString()
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
