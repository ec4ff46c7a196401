package schedule

import "time"

// InputLayout is the date-time layout accepted by the form fields
const InputLayout = "2006-01-02 15:04"

// SameDay reports whether a and b fall on the same local calendar day
func SameDay(a, b time.Time) bool {
	la, lb := a.In(time.Local), b.In(time.Local)
	return la.Year() == lb.Year() && la.Month() == lb.Month() && la.Day() == lb.Day()
}

// DayOf returns local midnight of t's calendar day
func DayOf(t time.Time) time.Time {
	l := t.In(time.Local)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// HoursBetween returns the signed length of [start, end) in hours
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// FormatTime renders the local wall-clock time, e.g. "09:30"
func FormatTime(t time.Time) string {
	return t.In(time.Local).Format("15:04")
}

// FormatDate renders the local date, e.g. "Sep 16, 2025"
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format("Jan 02, 2006")
}

// FormatRange renders "09:00–10:00"
func FormatRange(start, end time.Time) string {
	return FormatTime(start) + "–" + FormatTime(end)
}

// FormatDateTime renders t in InputLayout for editing
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(InputLayout)
}

// ParseDateTime parses an InputLayout value as local time
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(InputLayout, s, time.Local)
}

// DateStamp returns the UTC calendar date of t as YYYY-MM-DD
func DateStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
