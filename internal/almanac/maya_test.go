package almanac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-almanac/internal/almanac"
)

func TestMayaCreationDate(t *testing.T) {
	// The count starts at 0.0.0.0.0, traditionally 4 Ajaw 8 Kumk'u.
	m := almanac.MayaFromJulianDay(almanac.NewJulianDay(almanac.MayaEpoch))

	assert.Equal(t, [5]int{0, 0, 0, 0, 0}, m.Digits())
	assert.Equal(t, "0.0.0.0.0", m.Date())

	month, err := m.MonthName()
	require.NoError(t, err)
	assert.Equal(t, "Kumk'u", month)

	day, err := m.WeekDayName()
	require.NoError(t, err)
	assert.Equal(t, "Ajaw", day)
}

func TestMayaPlaceValues(t *testing.T) {
	tests := []struct {
		name string
		maya *almanac.Maya
		days int
	}{
		{"Kin", almanac.NewMaya(0, 0, 0, 0, 1), 1},
		{"Uinal", almanac.NewMaya(0, 0, 0, 1, 0), 20},
		{"Tun", almanac.NewMaya(0, 0, 1, 0, 0), 360},
		{"Katun", almanac.NewMaya(0, 1, 0, 0, 0), 7200},
		{"Baktun", almanac.NewMaya(1, 0, 0, 0, 0), 144000},
	}

	epoch := almanac.NewJulianDay(almanac.MayaEpoch)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, tt.maya.JulianDay().Sub(epoch))

			// Decomposition inverts recomposition digit by digit.
			back := almanac.MayaFromJulianDay(epoch.AddDays(tt.days))
			assert.True(t, back.Equal(tt.maya), "got %s", back.Date())
		})
	}
}

func TestMayaFixture(t *testing.T) {
	m := almanac.MayaFromJulianDay(almanac.NewJulianDay(fixtureJD))

	assert.Equal(t, 12, m.Baktun())
	assert.Equal(t, 19, m.Katun())
	assert.Equal(t, 6, m.Tun())
	assert.Equal(t, 15, m.Uinal())
	assert.Equal(t, 2, m.Kin())
	assert.Equal(t, "12.19.6.15.2", m.Date())
	assert.Equal(t, fixtureJD, m.JulianDay().Value())

	// 1 January 2000 fell on Ik' in the tzolk'in and in the haab' month
	// K'ank'in.
	assert.Equal(t, 2, m.TzolkinDay())
	assert.Equal(t, 14, m.HaabMonth())
}

// TestMayaNextDay_Carry walks the mixed-radix odometer: 18 uinal to the tun,
// 20 elsewhere.
func TestMayaNextDay_Carry(t *testing.T) {
	tests := []struct {
		name  string
		start *almanac.Maya
		want  *almanac.Maya
	}{
		{"PlainKin", almanac.NewMaya(12, 19, 6, 15, 2), almanac.NewMaya(12, 19, 6, 15, 3)},
		{"UinalCarry", almanac.NewMaya(12, 19, 6, 15, 19), almanac.NewMaya(12, 19, 6, 16, 0)},
		{"TunCarry", almanac.NewMaya(12, 19, 6, 17, 19), almanac.NewMaya(12, 19, 7, 0, 0)},
		{"BaktunCarry", almanac.NewMaya(12, 19, 19, 17, 19), almanac.NewMaya(13, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.start.NextDay()
			assert.True(t, tt.start.Equal(tt.want), "got %s, want %s", tt.start.Date(), tt.want.Date())
		})
	}
}

func TestMayaCycleCapabilities(t *testing.T) {
	m := almanac.NewMaya(12, 19, 6, 15, 2)

	assert.Equal(t, almanac.MayaName, m.Name())
	assert.Equal(t, 20, m.DaysInMonth())
	assert.Equal(t, 18, m.MonthsInYear())
	assert.Equal(t, 20, m.DaysInWeek())
}

// TestMayaTzolkinCycle verifies the 20-name cycle advances with the count and
// wraps.
func TestMayaTzolkinCycle(t *testing.T) {
	jd := almanac.NewJulianDay(almanac.MayaEpoch)
	for i := 0; i < 41; i++ {
		m := almanac.MayaFromJulianDay(jd.AddDays(i))
		want := (19+i)%20 + 1
		require.Equalf(t, want, m.TzolkinDay(), "day %d", i)
	}
}
