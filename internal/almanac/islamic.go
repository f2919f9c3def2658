package almanac

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/names"
)

// IslamicEpoch is the Julian Day of 1 Muharram AH 1 at midnight.
const IslamicEpoch = 1948439.5

// IslamicName is the calendar system's display name.
const IslamicName = "Islamic Calendar"

// Islamic is a date in the arithmetic (tabular) Islamic calendar: months
// alternate 30 and 29 days and 11 leap days are spread over a 30-year cycle.
// Religious practice fixes months by lunar observation instead, so civil
// dates may drift a day or two from this calendar.
type Islamic struct {
	year, month, day int
}

// NewIslamic constructs an Islamic date from components.
func NewIslamic(year, month, day int) *Islamic {
	return &Islamic{year: year, month: month, day: day}
}

// IslamicFromJulianDay decomposes a day count into an Islamic date.
func IslamicFromJulianDay(jd JulianDay) *Islamic {
	w := jd.AtMidnight().Value()
	year := int(math.Floor((30*(w-IslamicEpoch) + 10646) / 10631))
	month := int(math.Ceil((w-(29+islamicToJD(year, 1, 1)))/29.5)) + 1
	if month > 12 {
		month = 12
	}
	day := int(w-islamicToJD(year, month, 1)) + 1
	return &Islamic{year: year, month: month, day: day}
}

// IsIslamicLeapYear reports whether a year is one of the 11 leap years of
// the 30-year cycle.
func IsIslamicLeapYear(year int) bool {
	return imod(11*year+14, 30) < 11
}

// IslamicDaysInMonth returns the length of a 1-based month.
func IslamicDaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %s month %d", ErrOutOfRange, config.SystemIslamic, month)
	}
	return islamicDaysInMonth(year, month), nil
}

func islamicDaysInMonth(year, month int) int {
	if month%2 == 1 {
		return 30
	}
	if month == 12 && IsIslamicLeapYear(year) {
		return 30
	}
	return 29
}

// IslamicMonthName returns the name of a 1-based month.
func IslamicMonthName(month int) (string, error) {
	return names.Month(config.SystemIslamic, month)
}

func islamicToJD(year, month, day int) float64 {
	return float64(day) +
		math.Ceil(29.5*float64(month-1)) +
		float64(year-1)*354 +
		math.Floor(float64(3+11*year)/30) +
		IslamicEpoch - 1
}

// Year returns the year component (Anno Hegirae).
func (i *Islamic) Year() int { return i.year }

// Month returns the 1-based month component.
func (i *Islamic) Month() int { return i.month }

// Day returns the 1-based day component.
func (i *Islamic) Day() int { return i.day }

// Name returns the calendar system's display name.
func (i *Islamic) Name() string { return IslamicName }

// JulianDay converts the date to the canonical day count.
func (i *Islamic) JulianDay() JulianDay {
	return NewJulianDay(islamicToJD(i.year, i.month, i.day))
}

// IsLeapYear reports whether the date's year is a leap year.
func (i *Islamic) IsLeapYear() bool { return IsIslamicLeapYear(i.year) }

// DaysInMonth returns the length of the current month.
func (i *Islamic) DaysInMonth() int { return islamicDaysInMonth(i.year, i.month) }

// MonthsInYear returns 12.
func (i *Islamic) MonthsInYear() int { return 12 }

// DaysInWeek returns 7.
func (i *Islamic) DaysInWeek() int { return 7 }

// NextDay advances the date by one civil day in place.
func (i *Islamic) NextDay() {
	if i.day < i.DaysInMonth() {
		i.day++
		return
	}
	i.day = 1
	i.month++
	if i.month > i.MonthsInYear() {
		i.month = 1
		i.year++
	}
}

// MonthName resolves the current month's name.
func (i *Islamic) MonthName() (string, error) {
	return IslamicMonthName(i.month)
}

// WeekDayName resolves the current day's weekday name.
func (i *Islamic) WeekDayName() (string, error) {
	return names.WeekDay(config.SystemIslamic, i.JulianDay().WeekDayNumber()+1)
}

// Date returns the "{day} {monthName}, {year}" label.
func (i *Islamic) Date() string {
	name, err := i.MonthName()
	if err != nil {
		return fmt.Sprintf("%04d-%02d-%02d", i.year, i.month, i.day)
	}
	return fmt.Sprintf("%d %s, %d", i.day, name, i.year)
}

// Equal reports component-wise equality.
func (i *Islamic) Equal(other *Islamic) bool {
	return other != nil && i.year == other.year && i.month == other.month && i.day == other.day
}

func (i *Islamic) String() string {
	return i.Name() + ": " + i.Date()
}
