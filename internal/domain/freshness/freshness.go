// Package freshness contains the pure date arithmetic behind expiration
// tracking: everything operates on calendar days truncated to local midnight,
// so an ingredient bought this morning and one bought tonight age identically.
package freshness

import "time"

// PriorityWindowDays is the number of days before expiry during which an
// item is surfaced as "use me first".
const PriorityWindowDays = 3

// Today returns the current date truncated to local midnight.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsExpired reports whether the expiration date lies strictly before today.
// A nil date is treated as non-expiring.
func IsExpired(expirationDate *time.Time) bool {
	return isExpiredAt(expirationDate, Today())
}

// IsPriority reports whether the item expires within the priority window,
// today included. A nil date is never priority.
func IsPriority(expirationDate *time.Time) bool {
	return isPriorityAt(expirationDate, Today())
}

// DaysRemaining returns the number of whole days until the expiration date,
// rounding partial days up. Negative values count days since expiry. The
// second return value is false when no expiration date is set.
func DaysRemaining(expirationDate *time.Time) (int, bool) {
	return daysRemainingAt(expirationDate, Today())
}

func isExpiredAt(expirationDate *time.Time, today time.Time) bool {
	if expirationDate == nil {
		return false
	}
	return Midnight(*expirationDate).Before(today)
}

func isPriorityAt(expirationDate *time.Time, today time.Time) bool {
	days, ok := daysRemainingAt(expirationDate, today)
	if !ok {
		return false
	}
	return days >= 0 && days <= PriorityWindowDays
}

func daysRemainingAt(expirationDate *time.Time, today time.Time) (int, bool) {
	if expirationDate == nil {
		return 0, false
	}
	diff := Midnight(*expirationDate).Sub(today)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days, true
}
