package calendar

import (
	"strings"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

// mergeMeeting lays the fields a calendar carries over existing
func mergeMeeting(existing, imported models.Meeting) models.Meeting {
	out := existing.Clone()
	out.Title = imported.Title
	out.Description = imported.Description
	out.Location = imported.Location
	out.Booth = imported.Booth
	out.Start = imported.Start
	out.End = imported.End
	out.Attendees = mergeAttendees(existing.Attendees, imported.Attendees)
	return out
}

// mergeAttendees follows the calendar's attendee list, matching by id first
// and then by name. Matched attendees keep their details. Unnamed attendees
// are never exported, so they are carried over as they are.
func mergeAttendees(existing, imported []models.Attendee) []models.Attendee {
	byID := make(map[string]int, len(existing))
	byName := make(map[string]int, len(existing))
	for i, a := range existing {
		byID[a.ID] = i
		if key := nameKey(a.Name); key != "" {
			if _, dup := byName[key]; !dup {
				byName[key] = i
			}
		}
	}

	used := make([]bool, len(existing))
	out := make([]models.Attendee, 0, len(imported))
	for _, a := range imported {
		idx, ok := byID[a.ID]
		if !ok || used[idx] {
			idx, ok = byName[nameKey(a.Name)]
		}
		if ok && !used[idx] {
			used[idx] = true
			kept := existing[idx]
			kept.Name = a.Name
			out = append(out, kept)
			continue
		}
		out = append(out, a)
	}

	for i, a := range existing {
		if !used[i] && nameKey(a.Name) == "" {
			out = append(out, a)
		}
	}
	return out
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
