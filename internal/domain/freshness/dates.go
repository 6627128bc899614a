package freshness

import "time"

const isoDateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD string in the local time zone.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(isoDateLayout, s, time.Local)
}

// ToISODateString formats t as YYYY-MM-DD.
func ToISODateString(t time.Time) string {
	return t.Format(isoDateLayout)
}

// NormalizeToNoon pins t to 12:00 local time. Persisted timestamps sit at
// noon so that serializing to UTC and reading back cannot shift the
// calendar day.
func NormalizeToNoon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// AddDays returns t moved forward by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
