package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	p, err := Parse("week")
	require.NoError(t, err)
	assert.Equal(t, Week, p)

	p, err = Parse("MONTH")
	require.NoError(t, err)
	assert.Equal(t, Month, p)

	p, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, Month, p)

	_, err = Parse("quarter")
	assert.Error(t, err)
}

func TestWindowFor_Week(t *testing.T) {
	now := date(2026, time.March, 15)
	win := WindowFor(Week, now)

	assert.Equal(t, date(2026, time.March, 8), win.Start)
	assert.Equal(t, now, win.End)
}

func TestWindowFor_Month(t *testing.T) {
	now := date(2026, time.March, 15)
	win := WindowFor(Month, now)

	assert.Equal(t, 1, win.Start.Day())
	assert.Equal(t, time.March, win.Start.Month())
	assert.Equal(t, 31, win.End.Day())
	assert.Equal(t, time.March, win.End.Month())
}

func TestDayBuckets_Week(t *testing.T) {
	buckets := DayBuckets(Week, date(2026, time.March, 15))
	require.Len(t, buckets, 7)

	// Oldest first, strictly one day apart, ending on the window end.
	assert.Equal(t, 15, buckets[6].Day())
	assert.Equal(t, 9, buckets[0].Day())
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i].After(buckets[i-1]))
		assert.True(t, SameDay(buckets[i-1].AddDate(0, 0, 1), buckets[i]))
	}
}

func TestDayBuckets_MonthLengths(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"31-day month", date(2026, time.January, 10), 31},
		{"30-day month", date(2026, time.April, 10), 30},
		{"28-day February", date(2026, time.February, 10), 28},
		{"29-day leap February", date(2028, time.February, 10), 29},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buckets := DayBuckets(Month, tc.now)
			require.Len(t, buckets, tc.want)

			// Covers day 1 through the last day with no gaps.
			assert.Equal(t, 1, buckets[0].Day())
			assert.Equal(t, tc.want, buckets[len(buckets)-1].Day())
			for i, b := range buckets {
				assert.Equal(t, i+1, b.Day())
				assert.Equal(t, tc.now.Month(), b.Month())
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
