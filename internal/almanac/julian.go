package almanac

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/names"
)

// JulianEpoch is the Julian Day of 1 January 1 (Julian), minus one day,
// at midnight.
const JulianEpoch = 1721423.5

// JulianName is the calendar system's display name.
const JulianName = "Julian Calendar"

// Julian is a date in the Julian calendar. There is no year zero: year -1 is
// followed by year 1.
type Julian struct {
	year, month, day int
}

// NewJulian constructs a Julian date from components.
func NewJulian(year, month, day int) *Julian {
	return &Julian{year: year, month: month, day: day}
}

// JulianFromJulianDay decomposes a day count into a Julian date.
func JulianFromJulianDay(jd JulianDay) *Julian {
	b := jd.AtMidnight().Value() + 0.5 + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	month := int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}
	year := int(c) - 4715
	if month > 2 {
		year = int(c) - 4716
	}
	day := int(b - d - math.Floor(30.6001*e))
	if year < 1 {
		year--
	}

	return &Julian{year: year, month: month, day: day}
}

// IsJulianLeapYear reports whether a year is a Julian leap year. BC years
// (negative, no year zero) intercalate when year mod 4 is 3.
func IsJulianLeapYear(year int) bool {
	if year > 0 {
		return imod(year, 4) == 0
	}
	return imod(year, 4) == 3
}

// JulianDaysInMonth returns the length of a 1-based month.
func JulianDaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %s month %d", ErrOutOfRange, config.SystemJulian, month)
	}
	return julianDaysInMonth(year, month), nil
}

func julianDaysInMonth(year, month int) int {
	if month == 2 && IsJulianLeapYear(year) {
		return 29
	}
	return gregorianMonthLengths[month-1]
}

// JulianMonthName returns the name of a 1-based month.
func JulianMonthName(month int) (string, error) {
	return names.Month(config.SystemJulian, month)
}

func julianToJD(year, month, day int) float64 {
	y, m := year, month
	if y < 1 {
		y++ // skip the nonexistent year zero
	}
	if m <= 2 {
		y--
		m += 12
	}
	return math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*(float64(m)+1)) +
		float64(day) - 1524.5
}

// Year returns the year component.
func (j *Julian) Year() int { return j.year }

// Month returns the 1-based month component.
func (j *Julian) Month() int { return j.month }

// Day returns the 1-based day component.
func (j *Julian) Day() int { return j.day }

// Name returns the calendar system's display name.
func (j *Julian) Name() string { return JulianName }

// JulianDay converts the date to the canonical day count.
func (j *Julian) JulianDay() JulianDay {
	return NewJulianDay(julianToJD(j.year, j.month, j.day))
}

// IsLeapYear reports whether the date's year is a leap year.
func (j *Julian) IsLeapYear() bool { return IsJulianLeapYear(j.year) }

// DaysInMonth returns the length of the current month.
func (j *Julian) DaysInMonth() int { return julianDaysInMonth(j.year, j.month) }

// MonthsInYear returns 12.
func (j *Julian) MonthsInYear() int { return 12 }

// DaysInWeek returns 7.
func (j *Julian) DaysInWeek() int { return 7 }

// NextDay advances the date by one civil day in place.
func (j *Julian) NextDay() {
	if j.day < j.DaysInMonth() {
		j.day++
		return
	}
	j.day = 1
	j.month++
	if j.month > j.MonthsInYear() {
		j.month = 1
		j.year++
		if j.year == 0 {
			j.year = 1
		}
	}
}

// MonthName resolves the current month's name.
func (j *Julian) MonthName() (string, error) {
	return JulianMonthName(j.month)
}

// WeekDayName resolves the current day's weekday name.
func (j *Julian) WeekDayName() (string, error) {
	return names.WeekDay(config.SystemJulian, j.JulianDay().WeekDayNumber()+1)
}

// Date returns the "{day} {monthName}, {year}" label.
func (j *Julian) Date() string {
	name, err := j.MonthName()
	if err != nil {
		return fmt.Sprintf("%04d-%02d-%02d", j.year, j.month, j.day)
	}
	return fmt.Sprintf("%d %s, %d", j.day, name, j.year)
}

// Equal reports component-wise equality.
func (j *Julian) Equal(other *Julian) bool {
	return other != nil && j.year == other.year && j.month == other.month && j.day == other.day
}

func (j *Julian) String() string {
	return j.Name() + ": " + j.Date()
}
