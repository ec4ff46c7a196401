package calendar

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// ErrInvalidCalendar is returned for documents that are not iCalendar
var ErrInvalidCalendar = errors.New("invalid iCalendar file")

// MergeTarget receives imported meetings
type MergeTarget interface {
	Meeting(id string) (models.Meeting, bool)
	MergeMeetings(list []models.Meeting) (added, updated int)
}

// Parse decodes every VEVENT in r into a meeting. Cancelled, all-day and
// untimed events are skipped. Only the first instance of a recurring event
// is kept.
func Parse(r io.Reader) ([]models.Meeting, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar: %w", err)
	}

	bodyStr := string(body)
	if err := validateICalFormat(bodyStr); err != nil {
		return nil, err
	}

	decoder := ical.NewDecoder(strings.NewReader(bodyStr))
	meetings := []models.Meeting{}
	seenIDs := make(map[string]bool)
	seenKeys := make(map[string]bool)
	stats := &filterStats{}

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
		}

		for _, comp := range cal.Children {
			stats.totalComponents++
			if comp.Name != ical.CompEvent {
				continue
			}
			stats.totalEvents++

			ev := parseEvent(comp)
			if !shouldIncludeEvent(ev, stats) {
				continue
			}
			if ev.meeting.ID == "" {
				ev.meeting.ID = uuid.NewString()
				stats.generatedIDs++
			}
			if isDuplicate(ev, seenIDs, seenKeys, stats) {
				continue
			}
			meetings = append(meetings, ev.meeting)
		}
	}

	stats.logSummary(len(meetings))

	return meetings, nil
}

// Import parses r and upserts the meetings into target by id. A meeting that
// already exists only takes the calendar's fields; its talking points, prep
// checklist and attendee details stay as they were.
func Import(target MergeTarget, r io.Reader) (added, updated int, err error) {
	meetings, err := Parse(r)
	if err != nil {
		return 0, 0, err
	}
	for i, m := range meetings {
		if existing, ok := target.Meeting(m.ID); ok {
			meetings[i] = mergeMeeting(existing, m)
		}
	}
	added, updated = target.MergeMeetings(meetings)
	return added, updated, nil
}

func validateICalFormat(bodyStr string) error {
	trimmed := strings.TrimSpace(bodyStr)
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "<!DOCTYPE") || strings.HasPrefix(upper, "<HTML") {
		return fmt.Errorf("%w: got HTML", ErrInvalidCalendar)
	}

	if !strings.HasPrefix(upper, "BEGIN:VCALENDAR") {
		preview := trimmed
		if len(preview) > 100 {
			preview = preview[:100]
		}
		return fmt.Errorf("%w: expected BEGIN:VCALENDAR, got: %s", ErrInvalidCalendar, preview)
	}

	return nil
}
