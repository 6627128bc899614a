package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestIsExpiredAt(t *testing.T) {
	today := date(2025, time.March, 10)

	t.Run("nil date never expires", func(t *testing.T) {
		assert.False(t, isExpiredAt(nil, today))
	})

	t.Run("yesterday is expired", func(t *testing.T) {
		exp := date(2025, time.March, 9)
		assert.True(t, isExpiredAt(&exp, today))
	})

	t.Run("today is not expired", func(t *testing.T) {
		exp := date(2025, time.March, 10)
		assert.False(t, isExpiredAt(&exp, today))
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		exp := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.Local)
		assert.False(t, isExpiredAt(&exp, today))
	})
}

func TestIsPriorityAt(t *testing.T) {
	today := date(2025, time.March, 10)

	cases := []struct {
		name string
		exp  time.Time
		want bool
	}{
		{"expires today", date(2025, time.March, 10), true},
		{"expires at window edge", date(2025, time.March, 13), true},
		{"expires past window", date(2025, time.March, 14), false},
		{"already expired", date(2025, time.March, 9), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exp := tc.exp
			assert.Equal(t, tc.want, isPriorityAt(&exp, today))
		})
	}

	t.Run("nil date is never priority", func(t *testing.T) {
		assert.False(t, isPriorityAt(nil, today))
	})
}

func TestDaysRemainingAt(t *testing.T) {
	today := date(2025, time.March, 10)

	t.Run("counts whole days", func(t *testing.T) {
		exp := date(2025, time.March, 15)
		days, ok := daysRemainingAt(&exp, today)
		require.True(t, ok)
		assert.Equal(t, 5, days)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		// Dates are truncated to midnight before diffing, so a noon
		// expiration counts the same as one at midnight.
		exp := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.Local)
		days, ok := daysRemainingAt(&exp, today)
		require.True(t, ok)
		assert.Equal(t, 2, days)
	})

	t.Run("expired dates count negative", func(t *testing.T) {
		exp := date(2025, time.March, 8)
		days, ok := daysRemainingAt(&exp, today)
		require.True(t, ok)
		assert.Equal(t, -2, days)
	})

	t.Run("nil date reports absence", func(t *testing.T) {
		_, ok := daysRemainingAt(nil, today)
		assert.False(t, ok)
	})
}

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 10), parsed)

	_, err = ParseISODate("10/03/2025")
	assert.Error(t, err)
}

func TestISODateRoundTrip(t *testing.T) {
	for _, s := range []string{"2025-03-10", "2024-02-29", "2025-12-31"} {
		parsed, err := ParseISODate(s)
		require.NoError(t, err)
		assert.Equal(t, s, ToISODateString(parsed))
	}
}

func TestNormalizeToNoon(t *testing.T) {
	noon := NormalizeToNoon(time.Date(2025, time.March, 10, 23, 45, 0, 0, time.Local))
	assert.Equal(t, 12, noon.Hour())
	assert.Equal(t, 10, noon.Day())
}

func TestSortByUrgency(t *testing.T) {
	today := Today()

	expired := AddDays(today, -2)
	soon := AddDays(today, 1)
	later := AddDays(today, 20)

	items := []*fakeDated{
		{name: "later", exp: &later},
		{name: "expired", exp: &expired},
		{name: "none", exp: nil},
		{name: "soon", exp: &soon},
	}

	SortByUrgency(items)

	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.name
	}
	assert.Equal(t, []string{"soon", "later", "none", "expired"}, got)
}

type fakeDated struct {
	name string
	exp  *time.Time
}

func (f *fakeDated) ExpiresOn() *time.Time { return f.exp }
