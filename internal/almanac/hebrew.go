package almanac

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/names"
)

// HebrewEpoch is the Julian Day of 1 Tishrei AM 1 at midnight.
const HebrewEpoch = 347995.5

// HebrewName is the calendar system's display name.
const HebrewName = "Hebrew Calendar"

// Hebrew is a date in the Hebrew calendar. Months are numbered from Nisan
// (month 1), but the civil year begins at Tishrei (month 7): the year counter
// increments when the month rolls into 7, not into 1. Leap years insert a
// 13th month (Adar II) per the 19-year Metonic cycle.
type Hebrew struct {
	year, month, day int
}

// NewHebrew constructs a Hebrew date from components.
func NewHebrew(year, month, day int) *Hebrew {
	return &Hebrew{year: year, month: month, day: day}
}

// HebrewFromJulianDay decomposes a day count into a Hebrew date. The year is
// estimated from the mean lunation length, then corrected by a bounded scan
// over year-start anchors; the month by a scan within the year starting at
// Tishrei or Nisan.
func HebrewFromJulianDay(jd JulianDay) *Hebrew {
	w := jd.AtMidnight().Value()

	count := int(math.Floor((w - HebrewEpoch) * 98496.0 / 35975351.0))
	year := count - 1
	for w >= hebrewToJD(year+1, 7, 1) {
		year++
	}

	first := 1
	if w < hebrewToJD(year, 1, 1) {
		first = 7
	}
	month := first
	for w > hebrewToJD(year, month, hebrewDaysInMonth(year, month)) {
		month++
	}
	day := int(w-hebrewToJD(year, month, 1)) + 1

	return &Hebrew{year: year, month: month, day: day}
}

// IsHebrewLeapYear reports whether a year intercalates a 13th month,
// per the Metonic rule ((7y + 1) mod 19) < 7.
func IsHebrewLeapYear(year int) bool {
	return imod(7*year+1, 19) < 7
}

// HebrewMonthsInYear returns 13 on leap years, 12 otherwise.
func HebrewMonthsInYear(year int) int {
	if IsHebrewLeapYear(year) {
		return 13
	}
	return 12
}

// HebrewYearLength returns the number of days in a Hebrew year: the span
// between two consecutive year-start anchors (1 Tishrei). No simple closed
// form reproduces the postponement rules, so the span is measured, not
// computed. The anchor conversion never consults months 8 or 9, which keeps
// this function out of the month-length rule's own dependency chain.
func HebrewYearLength(year int) int {
	return int(hebrewToJD(year+1, 7, 1) - hebrewToJD(year, 7, 1))
}

// HebrewDaysInMonth returns the length of a 1-based month.
func HebrewDaysInMonth(year, month int) (int, error) {
	if month < 1 || month > HebrewMonthsInYear(year) {
		return 0, fmt.Errorf("%w: %s month %d", ErrOutOfRange, config.SystemHebrew, month)
	}
	return hebrewDaysInMonth(year, month), nil
}

func hebrewDaysInMonth(year, month int) int {
	switch month {
	case 2, 4, 6, 10, 13:
		// Fixed 29-day months.
		return 29
	case 12:
		// Adar has 29 days on non-leap years.
		if !IsHebrewLeapYear(year) {
			return 29
		}
	case 8:
		// Heshvan gains a day only in complete years (length mod 10 == 5).
		if imod(HebrewYearLength(year), 10) != 5 {
			return 29
		}
	case 9:
		// Kislev loses a day in deficient years (length mod 10 == 3).
		if imod(HebrewYearLength(year), 10) == 3 {
			return 29
		}
	}
	return 30
}

// HebrewMonthName returns the name of a 1-based month.
func HebrewMonthName(month int) (string, error) {
	return names.Month(config.SystemHebrew, month)
}

// hebrewDelay1 counts the days from the epoch to the mean conjunction of
// Tishrei of the given year, in molad parts (1080 parts per hour), applying
// the first postponement rule.
func hebrewDelay1(year int) int {
	months := idiv(235*year-234, 19)
	parts := 12084 + 13753*months
	day := months*29 + idiv(parts, 25920)
	if imod(3*(day+1), 7) < 3 {
		day++
	}
	return day
}

// hebrewDelay2 applies the year-length postponements: a year that would run
// 356 days is pushed two days, one that would run 382 is pushed one.
func hebrewDelay2(year int) int {
	last := hebrewDelay1(year - 1)
	present := hebrewDelay1(year)
	next := hebrewDelay1(year + 1)
	if next-present == 356 {
		return 2
	}
	if present-last == 382 {
		return 1
	}
	return 0
}

func hebrewToJD(year, month, day int) float64 {
	jd := HebrewEpoch + float64(hebrewDelay1(year)+hebrewDelay2(year)+day+1)
	if month < 7 {
		// Months before Nisan in reading order sit after Tishrei in the
		// civil year: walk Tishrei..end, then Nisan..month.
		for m := 7; m <= HebrewMonthsInYear(year); m++ {
			jd += float64(hebrewDaysInMonth(year, m))
		}
		for m := 1; m < month; m++ {
			jd += float64(hebrewDaysInMonth(year, m))
		}
	} else {
		for m := 7; m < month; m++ {
			jd += float64(hebrewDaysInMonth(year, m))
		}
	}
	return jd
}

// Year returns the year component (Anno Mundi).
func (h *Hebrew) Year() int { return h.year }

// Month returns the 1-based month component, counted from Nisan.
func (h *Hebrew) Month() int { return h.month }

// Day returns the 1-based day component.
func (h *Hebrew) Day() int { return h.day }

// Name returns the calendar system's display name.
func (h *Hebrew) Name() string { return HebrewName }

// JulianDay converts the date to the canonical day count.
func (h *Hebrew) JulianDay() JulianDay {
	return NewJulianDay(hebrewToJD(h.year, h.month, h.day))
}

// IsLeapYear reports whether the date's year intercalates Adar II.
func (h *Hebrew) IsLeapYear() bool { return IsHebrewLeapYear(h.year) }

// DaysInMonth returns the length of the current month.
func (h *Hebrew) DaysInMonth() int { return hebrewDaysInMonth(h.year, h.month) }

// MonthsInYear returns the number of months in the current year.
func (h *Hebrew) MonthsInYear() int { return HebrewMonthsInYear(h.year) }

// DaysInWeek returns 7.
func (h *Hebrew) DaysInWeek() int { return 7 }

// NextDay advances the date by one civil day in place. The year counter
// increments at the roll into Tishrei (month 7), not at the roll from the
// last month back to Nisan.
func (h *Hebrew) NextDay() {
	if h.day < h.DaysInMonth() {
		h.day++
		return
	}
	h.day = 1
	if h.month == h.MonthsInYear() {
		h.month = 1
		return
	}
	h.month++
	if h.month == 7 {
		h.year++
	}
}

// MonthName resolves the current month's name.
func (h *Hebrew) MonthName() (string, error) {
	return HebrewMonthName(h.month)
}

// WeekDayName resolves the current day's weekday name.
func (h *Hebrew) WeekDayName() (string, error) {
	return names.WeekDay(config.SystemHebrew, h.JulianDay().WeekDayNumber()+1)
}

// Date returns the "{day} {monthName}, {year}" label.
func (h *Hebrew) Date() string {
	name, err := h.MonthName()
	if err != nil {
		return fmt.Sprintf("%04d-%02d-%02d", h.year, h.month, h.day)
	}
	return fmt.Sprintf("%d %s, %d", h.day, name, h.year)
}

// Equal reports component-wise equality.
func (h *Hebrew) Equal(other *Hebrew) bool {
	return other != nil && h.year == other.year && h.month == other.month && h.day == other.day
}

func (h *Hebrew) String() string {
	return h.Name() + ": " + h.Date()
}
