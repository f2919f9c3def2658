package almanac

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/names"
)

// MayaEpoch is the Julian Day of the Long Count creation date 0.0.0.0.0
// (Goodman-Martinez-Thompson correlation) at midnight.
const MayaEpoch = 584282.5

// MayaName is the calendar system's display name.
const MayaName = "Maya Calendar"

// Long Count place values in days.
const (
	mayaUinal  = 20
	mayaTun    = 360
	mayaKatun  = 7200
	mayaBaktun = 144000
)

// Maya is a date in the Maya Long Count: not a year/month/day calendar but a
// positional count of days since the creation date, written as five digits
// baktun.katun.tun.uinal.kin with mixed radices 20,20,18,20,20 (the tun is
// 18 uinal, breaking the vigesimal pattern).
//
// The month and weekday capabilities map onto the two cyclical calendars the
// Maya ran alongside the count: MonthName is the 365-day haab' month and
// WeekDayName the 20-name tzolk'in day.
type Maya struct {
	baktun, katun, tun, uinal, kin int
}

// NewMaya constructs a Long Count date from its five digits.
func NewMaya(baktun, katun, tun, uinal, kin int) *Maya {
	return &Maya{baktun: baktun, katun: katun, tun: tun, uinal: uinal, kin: kin}
}

// MayaFromJulianDay decomposes a day count into Long Count digits by repeated
// division by the place values.
func MayaFromJulianDay(jd JulianDay) *Maya {
	d := jd.AtMidnight().Value() - MayaEpoch
	baktun := int(math.Floor(d / mayaBaktun))
	d = fmod(d, mayaBaktun)
	katun := int(math.Floor(d / mayaKatun))
	d = fmod(d, mayaKatun)
	tun := int(math.Floor(d / mayaTun))
	d = fmod(d, mayaTun)
	uinal := int(math.Floor(d / mayaUinal))
	kin := int(fmod(d, mayaUinal))
	return &Maya{baktun: baktun, katun: katun, tun: tun, uinal: uinal, kin: kin}
}

// Baktun returns the most significant digit (144,000 days).
func (m *Maya) Baktun() int { return m.baktun }

// Katun returns the second digit (7,200 days).
func (m *Maya) Katun() int { return m.katun }

// Tun returns the third digit (360 days).
func (m *Maya) Tun() int { return m.tun }

// Uinal returns the fourth digit (20 days).
func (m *Maya) Uinal() int { return m.uinal }

// Kin returns the least significant digit (1 day).
func (m *Maya) Kin() int { return m.kin }

// Digits returns the five Long Count digits, most significant first.
func (m *Maya) Digits() [5]int {
	return [5]int{m.baktun, m.katun, m.tun, m.uinal, m.kin}
}

// Name returns the calendar system's display name.
func (m *Maya) Name() string { return MayaName }

// JulianDay recomposes the digits into the canonical day count.
func (m *Maya) JulianDay() JulianDay {
	days := m.baktun*mayaBaktun + m.katun*mayaKatun + m.tun*mayaTun + m.uinal*mayaUinal + m.kin
	return NewJulianDay(MayaEpoch + float64(days))
}

// DaysInMonth returns 20, the kin per uinal.
func (m *Maya) DaysInMonth() int { return mayaUinal }

// MonthsInYear returns 18, the uinal per tun.
func (m *Maya) MonthsInYear() int { return 18 }

// DaysInWeek returns 20, the length of the tzolk'in name cycle.
func (m *Maya) DaysInWeek() int { return 20 }

// NextDay advances the count by one kin in place, carrying through the
// mixed radices.
func (m *Maya) NextDay() {
	m.kin++
	if m.kin < 20 {
		return
	}
	m.kin = 0
	m.uinal++
	if m.uinal < 18 {
		return
	}
	m.uinal = 0
	m.tun++
	if m.tun < 20 {
		return
	}
	m.tun = 0
	m.katun++
	if m.katun < 20 {
		return
	}
	m.katun = 0
	m.baktun++
}

// HaabMonth returns the 1-based haab' month (1..19, Wayeb included) of the
// current day.
func (m *Maya) HaabMonth() int {
	count := m.JulianDay().Sub(NewJulianDay(MayaEpoch))
	// The creation date fell on 8 Kumk'u, 348 days into the haab' year.
	return imod(count+348, 365)/20 + 1
}

// TzolkinDay returns the 1-based tzolk'in day name index (1..20) of the
// current day. The creation date fell on Ajaw (20).
func (m *Maya) TzolkinDay() int {
	count := m.JulianDay().Sub(NewJulianDay(MayaEpoch))
	return imod(count+19, 20) + 1
}

// MonthName resolves the current haab' month name.
func (m *Maya) MonthName() (string, error) {
	return names.Month(config.SystemMaya, m.HaabMonth())
}

// MayaMonthName returns the name of a 1-based haab' month.
func MayaMonthName(month int) (string, error) {
	return names.Month(config.SystemMaya, month)
}

// WeekDayName resolves the current tzolk'in day name.
func (m *Maya) WeekDayName() (string, error) {
	return names.WeekDay(config.SystemMaya, m.TzolkinDay())
}

// Date returns the dotted Long Count label, e.g. "12.19.6.15.2".
func (m *Maya) Date() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", m.baktun, m.katun, m.tun, m.uinal, m.kin)
}

// Equal reports digit-wise equality.
func (m *Maya) Equal(other *Maya) bool {
	return other != nil &&
		m.baktun == other.baktun &&
		m.katun == other.katun &&
		m.tun == other.tun &&
		m.uinal == other.uinal &&
		m.kin == other.kin
}

func (m *Maya) String() string {
	return m.Name() + ": " + m.Date()
}
