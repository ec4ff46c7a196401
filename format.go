package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/schedule"
)

// agendaLine is the first line of an agenda item: "09:00–10:00 • Title"
func agendaLine(m models.Meeting) string {
	return schedule.FormatRange(m.Start, m.End) + " • " + m.Title
}

// placeLine is "Location • Booth X", or whichever part is set
func placeLine(m models.Meeting) string {
	return joinNonEmpty(" • ", m.Location, boothLabel(m.Booth))
}

func boothLabel(booth string) string {
	if booth == "" {
		return ""
	}
	return "Booth " + booth
}

// detailHeader is "Sep 16, 2025 • 09:00–10:00"
func detailHeader(m models.Meeting) string {
	return schedule.FormatDate(m.Start) + " • " + schedule.FormatRange(m.Start, m.End)
}

// detailSubtitle is "1.0 hrs • Location • Booth X"
func detailSubtitle(m models.Meeting) string {
	hours := fmt.Sprintf("%.1f hrs", schedule.HoursBetween(m.Start, m.End))
	return joinNonEmpty(" • ", hours, m.Location, boothLabel(m.Booth))
}

func attendeeSubtitle(a models.Attendee) string {
	return joinNonEmpty(" • ", a.Title, a.Company)
}

func attendeeLine(a models.Attendee) string {
	name := a.Name
	if strings.TrimSpace(name) == "" {
		name = "(unnamed)"
	}
	if sub := attendeeSubtitle(a); sub != "" {
		return name + " • " + sub
	}
	return name
}

func travelTypeLabel(t models.TravelType) string {
	switch t {
	case models.TravelFlight:
		return "Flight"
	case models.TravelHotel:
		return "Hotel"
	case models.TravelGround:
		return "Ground"
	}
	return string(t)
}

// travelLine is "Flight: Label • Conf#: X • Sep 15, 2025 09:00 → Sep 15, 2025 11:00"
func travelLine(t models.Travel) string {
	var conf, when string
	if t.Confirmation != "" {
		conf = "Conf#: " + t.Confirmation
	}
	switch {
	case t.Start != nil && t.End != nil:
		when = travelTime(*t.Start) + " → " + travelTime(*t.End)
	case t.Start != nil:
		when = travelTime(*t.Start)
	case t.End != nil:
		when = "until " + travelTime(*t.End)
	}
	return joinNonEmpty(" • ", travelTypeLabel(t.Type)+": "+t.Label, conf, when)
}

func travelTime(t time.Time) string {
	return schedule.FormatDate(t) + " " + schedule.FormatTime(t)
}

// trayLine is "09:00 – Title", truncated for the menu
func trayLine(m models.Meeting) string {
	return truncateString(schedule.FormatTime(m.Start)+" – "+m.Title, 40)
}

// truncateString shortens s to maxLen runes, adding "..." if needed
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// optionalTime formats a travel time for a form field, blank when unset
func optionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return schedule.FormatDateTime(*t)
}

// parseOptionalTime reads a travel time form field, blank meaning unset
func parseOptionalTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := schedule.ParseDateTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
