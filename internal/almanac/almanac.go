// Package almanac converts civil dates between calendar systems (Gregorian,
// Julian, Hebrew, Islamic, Persian, Maya Long Count) by routing every
// conversion through a single canonical day count, the JulianDay.
//
// Each system owns its epoch offset, leap/intercalation rule and month-length
// rule; no system converts directly to another. All operations are pure value
// computations with no I/O. Distinct date values are safe to use from
// concurrent callers; NextDay mutates its receiver and must not be invoked
// concurrently on the same instance.
package almanac

import "github.com/tartampluch/go-almanac/internal/names"

// ErrOutOfRange signals a month or weekday index outside a calendar system's
// valid count. Lookups never clamp or default.
var ErrOutOfRange = names.ErrOutOfRange

// Almanac is the capability set every calendar system implements.
type Almanac interface {
	// Name returns the calendar system's display name.
	Name() string

	// Date returns the date label, "{day} {monthName}, {year}" for the
	// month-structured systems and the dotted digit form for the Maya
	// Long Count.
	Date() string

	// JulianDay converts the date to the canonical day count.
	JulianDay() JulianDay

	// NextDay advances the date by one civil day in place, rolling months
	// and years per the system's own rules.
	NextDay()

	// DaysInMonth returns the length of the current month.
	DaysInMonth() int

	// MonthsInYear returns the number of months in the current year.
	MonthsInYear() int

	// DaysInWeek returns the length of the system's named day cycle
	// (7 except for the Maya tzolk'in).
	DaysInWeek() int

	// MonthName resolves the current month's name from the name tables.
	MonthName() (string, error)

	// WeekDayName resolves the current day's weekday name.
	WeekDayName() (string, error)
}

// Dated is implemented by the month-structured systems - every system except
// the Maya Long Count, which decomposes into positional digits instead.
type Dated interface {
	Almanac
	Year() int
	Month() int
	Day() int
}
