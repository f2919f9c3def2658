package almanac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-almanac/internal/almanac"
)

func TestIsPersianLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1375, true},
		{1378, false},
		{1379, true},
		{1380, false},
		{1383, true},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, almanac.IsPersianLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestPersianDaysInMonth(t *testing.T) {
	// The first six months have 31 days, the next five 30, and Esfand 29 or
	// 30 depending on the leap rule.
	for month := 1; month <= 6; month++ {
		n, err := almanac.PersianDaysInMonth(1378, month)
		require.NoError(t, err)
		assert.Equalf(t, 31, n, "month %d", month)
	}
	for month := 7; month <= 11; month++ {
		n, err := almanac.PersianDaysInMonth(1378, month)
		require.NoError(t, err)
		assert.Equalf(t, 30, n, "month %d", month)
	}

	n, err := almanac.PersianDaysInMonth(1378, 12)
	require.NoError(t, err)
	assert.Equal(t, 29, n)

	n, err = almanac.PersianDaysInMonth(1379, 12)
	require.NoError(t, err)
	assert.Equal(t, 30, n, "Esfand gains a day in leap years")

	_, err = almanac.PersianDaysInMonth(1378, 13)
	assert.ErrorIs(t, err, almanac.ErrOutOfRange)
}

func TestPersianFixture(t *testing.T) {
	p := almanac.PersianFromJulianDay(almanac.NewJulianDay(fixtureJD))

	assert.Equal(t, 1378, p.Year())
	assert.Equal(t, 10, p.Month())
	assert.Equal(t, 11, p.Day())
	assert.Equal(t, "11 Dey, 1378", p.Date())
	assert.Equal(t, fixtureJD, p.JulianDay().Value())
}

func TestPersianNextDay_YearEnd(t *testing.T) {
	// 29 Esfand 1378 (common year) -> 1 Farvardin 1379.
	p := almanac.NewPersian(1378, 12, 29)
	p.NextDay()
	assert.True(t, p.Equal(almanac.NewPersian(1379, 1, 1)), "got %s", p.Date())

	// 30 Esfand 1379 (leap year) -> 1 Farvardin 1380.
	p = almanac.NewPersian(1379, 12, 30)
	p.NextDay()
	assert.True(t, p.Equal(almanac.NewPersian(1380, 1, 1)), "got %s", p.Date())
}

func TestPersianEpochStart(t *testing.T) {
	first := almanac.NewPersian(1, 1, 1)
	assert.Equal(t, almanac.PersianEpoch, first.JulianDay().Value())
}
