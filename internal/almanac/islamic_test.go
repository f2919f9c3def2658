package almanac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-almanac/internal/almanac"
)

func TestIsIslamicLeapYear(t *testing.T) {
	// The 30-year cycle intercalates years 2, 5, 7, 10, 13, 16, 18, 21, 24,
	// 26 and 29.
	leapInCycle := map[int]bool{
		2: true, 5: true, 7: true, 10: true, 13: true, 16: true,
		18: true, 21: true, 24: true, 26: true, 29: true,
	}

	for y := 1; y <= 30; y++ {
		assert.Equalf(t, leapInCycle[y%30], almanac.IsIslamicLeapYear(y), "cycle year %d", y)
	}

	// Same pattern in a modern cycle.
	assert.True(t, almanac.IsIslamicLeapYear(1420))
	assert.False(t, almanac.IsIslamicLeapYear(1421))
}

func TestIslamicDaysInMonth(t *testing.T) {
	// Odd months have 30 days, even months 29, and the 12th gains a day in
	// leap years.
	for month := 1; month <= 12; month++ {
		n, err := almanac.IslamicDaysInMonth(1421, month)
		require.NoError(t, err)
		if month%2 == 1 {
			assert.Equalf(t, 30, n, "month %d", month)
		} else {
			assert.Equalf(t, 29, n, "month %d", month)
		}
	}

	n, err := almanac.IslamicDaysInMonth(1420, 12)
	require.NoError(t, err)
	assert.Equal(t, 30, n, "Dhu al-Hijjah gains a day in leap years")

	_, err = almanac.IslamicDaysInMonth(1420, 13)
	assert.ErrorIs(t, err, almanac.ErrOutOfRange)
}

func TestIslamicFixture(t *testing.T) {
	i := almanac.IslamicFromJulianDay(almanac.NewJulianDay(fixtureJD))

	assert.Equal(t, 1420, i.Year())
	assert.Equal(t, 9, i.Month())
	assert.Equal(t, 24, i.Day())
	assert.Equal(t, "24 Ramadan, 1420", i.Date())
	assert.Equal(t, fixtureJD, i.JulianDay().Value())
}

func TestIslamicEpochStart(t *testing.T) {
	// 1 Muharram AH 1 is the calendar's first day.
	first := almanac.NewIslamic(1, 1, 1)
	assert.Equal(t, almanac.IslamicEpoch, first.JulianDay().Value())

	got := almanac.IslamicFromJulianDay(almanac.NewJulianDay(almanac.IslamicEpoch))
	assert.True(t, got.Equal(first), "got %s", got.Date())
}

func TestIslamicNextDay_YearEnd(t *testing.T) {
	// 1421 is a common year: 29 Dhu al-Hijjah rolls straight into 1 Muharram.
	i := almanac.NewIslamic(1421, 12, 29)
	i.NextDay()
	assert.True(t, i.Equal(almanac.NewIslamic(1422, 1, 1)), "got %s", i.Date())

	// 1420 is leap: day 30 exists first.
	i = almanac.NewIslamic(1420, 12, 29)
	i.NextDay()
	assert.True(t, i.Equal(almanac.NewIslamic(1420, 12, 30)), "got %s", i.Date())
}
