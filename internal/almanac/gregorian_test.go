package almanac_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-almanac/internal/almanac"
)

func TestIsGregorianLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},  // divisible by 400
		{1900, false}, // century, not divisible by 400
		{2024, true},
		{2023, false},
		{1600, true},
		{1700, false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, almanac.IsGregorianLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestGregorianDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2023, 1, 31},
		{2023, 2, 28},
		{2024, 2, 29},
		{2023, 4, 30},
		{2023, 12, 31},
	}
	for _, tt := range tests {
		n, err := almanac.GregorianDaysInMonth(tt.year, tt.month)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, n, "%d-%02d", tt.year, tt.month)
	}

	for _, bad := range []int{0, 13, -1} {
		_, err := almanac.GregorianDaysInMonth(2023, bad)
		assert.ErrorIs(t, err, almanac.ErrOutOfRange)
	}
}

// TestCalendarReformGap pins the 1582 switchover: the day after Julian
// 4 October is Gregorian 15 October, the famous ten-day jump.
func TestCalendarReformGap(t *testing.T) {
	gregorian := almanac.NewGregorian(1582, 10, 15)
	julian := almanac.NewJulian(1582, 10, 5)

	assert.Equal(t, 2299160.5, gregorian.JulianDay().Value())
	assert.True(t, gregorian.JulianDay().Equal(julian.JulianDay()))
}

func TestGregorianNextDay_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		start *almanac.Gregorian
		want  *almanac.Gregorian
	}{
		{"PlainFebruary", almanac.NewGregorian(2023, 2, 28), almanac.NewGregorian(2023, 3, 1)},
		{"LeapFebruary", almanac.NewGregorian(2024, 2, 28), almanac.NewGregorian(2024, 2, 29)},
		{"LeapDay", almanac.NewGregorian(2024, 2, 29), almanac.NewGregorian(2024, 3, 1)},
		{"YearEnd", almanac.NewGregorian(1999, 12, 31), almanac.NewGregorian(2000, 1, 1)},
		{"MidMonth", almanac.NewGregorian(2000, 6, 14), almanac.NewGregorian(2000, 6, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.start.NextDay()
			assert.True(t, tt.start.Equal(tt.want), "got %s, want %s", tt.start.Date(), tt.want.Date())
		})
	}
}

func TestGregorianFromTime(t *testing.T) {
	// Only the civil date components matter; time of day and zone are dropped.
	ts := time.Date(2000, time.January, 1, 23, 59, 59, 0, time.UTC)
	g := almanac.GregorianFromTime(ts)

	assert.Equal(t, 2000, g.Year())
	assert.Equal(t, 1, g.Month())
	assert.Equal(t, 1, g.Day())
	assert.Equal(t, fixtureJD, g.JulianDay().Value())

	assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), g.Time())
}

func TestGregorianAccessors(t *testing.T) {
	g := almanac.NewGregorian(2000, 1, 1)

	assert.Equal(t, almanac.GregorianName, g.Name())
	assert.Equal(t, "1 January, 2000", g.Date())
	assert.Equal(t, 31, g.DaysInMonth())
	assert.Equal(t, 12, g.MonthsInYear())
	assert.Equal(t, 7, g.DaysInWeek())
	assert.True(t, g.IsLeapYear())

	month, err := g.MonthName()
	require.NoError(t, err)
	assert.Equal(t, "January", month)
}
