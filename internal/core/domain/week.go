package domain

import "time"

// DateLayout is the wire and storage format for calendar dates. The core does
// no timezone arithmetic; callers hand in dates already resolved to a calendar
// day and every date is pinned to midnight UTC internally.
const DateLayout = "2006-01-02"

// NormalizeDate strips the time component, pinning t to midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders t as an ISO-8601 calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStartTime returns the Monday beginning the ISO week containing t.
func WeekStartTime(t time.Time) time.Time {
	t = NormalizeDate(t)
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7 // Sunday belongs to the week started the previous Monday
	}
	return t.AddDate(0, 0, -offset+1)
}

// WeekStartOf returns the week key (ISO date of the Monday) for t.
func WeekStartOf(t time.Time) string {
	return FormatDate(WeekStartTime(t))
}

// WeekDates returns the seven dates of the week starting at weekStart.
func WeekDates(weekStart time.Time) []time.Time {
	weekStart = NormalizeDate(weekStart)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}

// WeekRange returns the first and last date of the week starting at weekStart.
func WeekRange(weekStart time.Time) (time.Time, time.Time) {
	weekStart = NormalizeDate(weekStart)
	return weekStart, weekStart.AddDate(0, 0, 6)
}
