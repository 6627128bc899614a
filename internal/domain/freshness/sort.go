package freshness

import (
	"sort"
	"time"
)

// Dated is anything carrying an optional expiration date.
type Dated interface {
	ExpiresOn() *time.Time
}

// urgencyRank buckets an expiration date for listing order: soon-to-expire
// items first, ordinary items next, expired items last.
func urgencyRank(expirationDate *time.Time, today time.Time) int {
	switch {
	case isExpiredAt(expirationDate, today):
		return 2
	case isPriorityAt(expirationDate, today):
		return 0
	default:
		return 1
	}
}

// SortByUrgency orders items so that priority items come first and expired
// items last. The sort is stable: ties keep their original order, so
// sorting an already-sorted list is a no-op.
func SortByUrgency[T Dated](items []T) {
	today := Today()
	sort.SliceStable(items, func(i, j int) bool {
		return urgencyRank(items[i].ExpiresOn(), today) < urgencyRank(items[j].ExpiresOn(), today)
	})
}
