package almanac

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/names"
)

// PersianEpoch is the Julian Day of 1 Farvardin AP 1 at midnight.
const PersianEpoch = 1948320.5

// PersianName is the calendar system's display name.
const PersianName = "Persian Calendar"

// Persian is a date in the arithmetic Persian (Solar Hijri) calendar, using
// the 2820-year cycle leap rule rather than the astronomical equinox.
type Persian struct {
	year, month, day int
}

// NewPersian constructs a Persian date from components.
func NewPersian(year, month, day int) *Persian {
	return &Persian{year: year, month: month, day: day}
}

// PersianFromJulianDay decomposes a day count into a Persian date.
func PersianFromJulianDay(jd JulianDay) *Persian {
	w := jd.AtMidnight().Value()
	depoch := w - persianToJD(475, 1, 1)
	cycle := math.Floor(depoch / 1029983)
	cyear := fmod(depoch, 1029983)

	var ycycle float64
	if cyear == 1029982 {
		ycycle = 2820
	} else {
		aux1 := math.Floor(cyear / 366)
		aux2 := fmod(cyear, 366)
		ycycle = math.Floor((2134*aux1+2816*aux2+2815)/1028522) + aux1 + 1
	}

	year := int(ycycle + 2820*cycle + 474)
	if year <= 0 {
		year-- // no year zero
	}

	yday := w - persianToJD(year, 1, 1) + 1
	var month int
	if yday <= 186 {
		month = int(math.Ceil(yday / 31))
	} else {
		month = int(math.Ceil((yday - 6) / 30))
	}
	day := int(w-persianToJD(year, month, 1)) + 1

	return &Persian{year: year, month: month, day: day}
}

// IsPersianLeapYear reports whether a year is a leap year of the 2820-year
// arithmetic cycle.
func IsPersianLeapYear(year int) bool {
	base := year - 474
	if year <= 0 {
		base = year - 473
	}
	return imod((imod(base, 2820)+474+38)*682, 2816) < 682
}

// PersianDaysInMonth returns the length of a 1-based month.
func PersianDaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %s month %d", ErrOutOfRange, config.SystemPersian, month)
	}
	return persianDaysInMonth(year, month), nil
}

func persianDaysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsPersianLeapYear(year):
		return 30
	default:
		return 29
	}
}

// PersianMonthName returns the name of a 1-based month.
func PersianMonthName(month int) (string, error) {
	return names.Month(config.SystemPersian, month)
}

func persianToJD(year, month, day int) float64 {
	epbase := year - 474
	if year < 0 {
		epbase = year - 473
	}
	epyear := 474 + imod(epbase, 2820)

	mdays := (month - 1) * 31
	if month > 7 {
		mdays = (month-1)*30 + 6
	}

	return float64(day) + float64(mdays) +
		math.Floor(float64(epyear*682-110)/2816) +
		float64(epyear-1)*365 +
		math.Floor(float64(epbase)/2820)*1029983 +
		(PersianEpoch - 1)
}

// Year returns the year component (Anno Persico).
func (p *Persian) Year() int { return p.year }

// Month returns the 1-based month component.
func (p *Persian) Month() int { return p.month }

// Day returns the 1-based day component.
func (p *Persian) Day() int { return p.day }

// Name returns the calendar system's display name.
func (p *Persian) Name() string { return PersianName }

// JulianDay converts the date to the canonical day count.
func (p *Persian) JulianDay() JulianDay {
	return NewJulianDay(persianToJD(p.year, p.month, p.day))
}

// IsLeapYear reports whether the date's year is a leap year.
func (p *Persian) IsLeapYear() bool { return IsPersianLeapYear(p.year) }

// DaysInMonth returns the length of the current month.
func (p *Persian) DaysInMonth() int { return persianDaysInMonth(p.year, p.month) }

// MonthsInYear returns 12.
func (p *Persian) MonthsInYear() int { return 12 }

// DaysInWeek returns 7.
func (p *Persian) DaysInWeek() int { return 7 }

// NextDay advances the date by one civil day in place.
func (p *Persian) NextDay() {
	if p.day < p.DaysInMonth() {
		p.day++
		return
	}
	p.day = 1
	p.month++
	if p.month > p.MonthsInYear() {
		p.month = 1
		p.year++
	}
}

// MonthName resolves the current month's name.
func (p *Persian) MonthName() (string, error) {
	return PersianMonthName(p.month)
}

// WeekDayName resolves the current day's weekday name.
func (p *Persian) WeekDayName() (string, error) {
	return names.WeekDay(config.SystemPersian, p.JulianDay().WeekDayNumber()+1)
}

// Date returns the "{day} {monthName}, {year}" label.
func (p *Persian) Date() string {
	name, err := p.MonthName()
	if err != nil {
		return fmt.Sprintf("%04d-%02d-%02d", p.year, p.month, p.day)
	}
	return fmt.Sprintf("%d %s, %d", p.day, name, p.year)
}

// Equal reports component-wise equality.
func (p *Persian) Equal(other *Persian) bool {
	return other != nil && p.year == other.year && p.month == other.month && p.day == other.day
}

func (p *Persian) String() string {
	return p.Name() + ": " + p.Date()
}
