package calendar

import (
	"strings"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/schedule"
)

type filterStats struct {
	totalComponents     int
	totalEvents         int
	filteredMissingTime int
	filteredUntitled    int
	filteredCancelled   int
	filteredAllDay      int
	filteredDuplicates  int
	recurringFirstOnly  int
	generatedIDs        int
}

func shouldIncludeEvent(ev parsedEvent, stats *filterStats) bool {
	m := ev.meeting

	if m.Start.IsZero() || m.End.IsZero() {
		stats.filteredMissingTime++
		logger.Debugw("ics event filtered", "reason", "missing time", "title", m.Title)
		return false
	}

	if strings.TrimSpace(m.Title) == "" {
		stats.filteredUntitled++
		logger.Debugw("ics event filtered", "reason", "no summary", "uid", m.ID,
			"start", schedule.FormatDateTime(m.Start))
		return false
	}

	if ev.status == "CANCELLED" {
		stats.filteredCancelled++
		logger.Debugw("ics event filtered", "reason", "cancelled", "title", m.Title,
			"start", schedule.FormatDateTime(m.Start))
		return false
	}

	if isAllDayEvent(ev) {
		stats.filteredAllDay++
		logger.Debugw("ics event filtered", "reason", "all-day", "title", m.Title,
			"start", schedule.FormatDateTime(m.Start), "end", schedule.FormatDateTime(m.End))
		return false
	}

	if ev.recurring {
		stats.recurringFirstOnly++
		logger.Debugw("ics event recurrence ignored", "title", m.Title)
	}

	logger.Debugw("ics event included", "title", m.Title,
		"start", schedule.FormatDateTime(m.Start), "end", schedule.FormatDateTime(m.End))
	return true
}

// isAllDayEvent treats date-only starts and spans of a full day or more
// crossing a date boundary as all-day
func isAllDayEvent(ev parsedEvent) bool {
	if ev.dateOnly {
		return true
	}
	m := ev.meeting
	return !schedule.SameDay(m.Start, m.End) && m.Duration() >= 24*time.Hour
}

func isDuplicate(ev parsedEvent, seenIDs, seenKeys map[string]bool, stats *filterStats) bool {
	m := ev.meeting

	if seenIDs[m.ID] {
		stats.filteredDuplicates++
		logger.Debugw("ics event filtered", "reason", "duplicate id", "title", m.Title, "uid", m.ID)
		return true
	}

	key := m.Title + "|" + m.Start.Format(time.RFC3339)
	if seenKeys[key] {
		stats.filteredDuplicates++
		logger.Debugw("ics event filtered", "reason", "duplicate title and start", "title", m.Title)
		return true
	}

	seenIDs[m.ID] = true
	seenKeys[key] = true
	return false
}

func (s *filterStats) logSummary(included int) {
	filtered := s.filteredMissingTime + s.filteredUntitled + s.filteredCancelled + s.filteredAllDay + s.filteredDuplicates
	logger.Infow("ics import summary",
		"components", s.totalComponents,
		"events", s.totalEvents,
		"included", included,
		"filtered", filtered,
		"cancelled", s.filteredCancelled,
		"all_day", s.filteredAllDay,
		"missing_time", s.filteredMissingTime,
		"untitled", s.filteredUntitled,
		"duplicates", s.filteredDuplicates,
		"recurring_first_only", s.recurringFirstOnly,
		"generated_ids", s.generatedIDs,
	)
}
