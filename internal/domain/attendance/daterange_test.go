package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func collect(t *testing.T, r DateRange) []time.Time {
	t.Helper()
	days, err := r.Days()
	require.NoError(t, err)
	var out []time.Time
	for d := range days {
		out = append(out, d)
	}
	return out
}

func TestDateRange_Days_SpansRange(t *testing.T) {
	r, err := NewDateRange(day(2024, time.January, 10), day(2024, time.January, 14))
	require.NoError(t, err)

	got := collect(t, r)

	require.Len(t, got, 5)
	assert.Equal(t, day(2024, time.January, 10), got[0])
	assert.Equal(t, day(2024, time.January, 14), got[4])
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1].AddDate(0, 0, 1), got[i], "days must be strictly ascending with no gaps")
	}
}

func TestDateRange_Days_SingleDay(t *testing.T) {
	d := day(2024, time.March, 1)
	r, err := NewDateRange(d, d)
	require.NoError(t, err)

	got := collect(t, r)

	require.Len(t, got, 1)
	assert.Equal(t, d, got[0])
}

func TestDateRange_Days_CrossesMonthBoundary(t *testing.T) {
	r, err := NewDateRange(day(2024, time.February, 27), day(2024, time.March, 2))
	require.NoError(t, err)

	got := collect(t, r)

	// 2024 is a leap year: 27, 28, 29 Feb + 1, 2 Mar.
	require.Len(t, got, 5)
	assert.Equal(t, day(2024, time.February, 29), got[2])
	assert.Equal(t, r.Len(), len(got))
}

func TestDateRange_Days_Restartable(t *testing.T) {
	r, err := NewDateRange(day(2024, time.January, 1), day(2024, time.January, 3))
	require.NoError(t, err)

	days, err := r.Days()
	require.NoError(t, err)

	first := 0
	for range days {
		first++
	}
	second := 0
	for range days {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, 3, second, "ranging a second time must replay the sequence")
}

func TestDateRange_Days_EarlyBreak(t *testing.T) {
	r, err := NewDateRange(day(2024, time.January, 1), day(2024, time.December, 31))
	require.NoError(t, err)

	days, err := r.Days()
	require.NoError(t, err)

	seen := 0
	for range days {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestNewDateRange_Inverted(t *testing.T) {
	_, err := NewDateRange(day(2024, time.January, 5), day(2024, time.January, 4))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDateRange_Days_InvertedRejectedDefensively(t *testing.T) {
	r := DateRange{From: day(2024, time.January, 5), To: day(2024, time.January, 4)}

	_, err := r.Days()
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Equal(t, 0, r.Len())
}

func TestDateRange_Len(t *testing.T) {
	cases := []struct {
		from, to time.Time
		want     int
	}{
		{day(2024, time.January, 1), day(2024, time.January, 1), 1},
		{day(2024, time.January, 1), day(2024, time.January, 31), 31},
		{day(2024, time.December, 30), day(2025, time.January, 2), 4},
	}
	for _, c := range cases {
		r, err := NewDateRange(c.from, c.to)
		require.NoError(t, err)
		assert.Equal(t, c.want, r.Len())
	}
}
