package almanac

import (
	"fmt"
	"math"
	"time"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/names"
)

// GregorianEpoch is the Julian Day of 1 January 1 (Gregorian proleptic),
// minus one day, at midnight.
const GregorianEpoch = 1721425.5

// GregorianName is the calendar system's display name.
const GregorianName = "Gregorian Calendar"

var gregorianMonthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Gregorian is a date in the Gregorian calendar, proleptic before 1582.
type Gregorian struct {
	year, month, day int
}

// NewGregorian constructs a Gregorian date from components. The components
// must form a valid date; impossible triples are a caller error and yield an
// undefined day count.
func NewGregorian(year, month, day int) *Gregorian {
	return &Gregorian{year: year, month: month, day: day}
}

// GregorianFromTime constructs a Gregorian date from an externally-sourced
// clock reading. Only the civil date components are consumed.
func GregorianFromTime(t time.Time) *Gregorian {
	return NewGregorian(t.Year(), int(t.Month()), t.Day())
}

// GregorianFromJulianDay decomposes a day count into a Gregorian date.
func GregorianFromJulianDay(jd JulianDay) *Gregorian {
	wjd := jd.AtMidnight().Value()
	depoch := wjd - GregorianEpoch
	quadricent := math.Floor(depoch / 146097)
	dqc := fmod(depoch, 146097)
	cent := math.Floor(dqc / 36524)
	dcent := fmod(dqc, 36524)
	quad := math.Floor(dcent / 1461)
	dquad := fmod(dcent, 1461)
	yindex := math.Floor(dquad / 365)

	year := int(quadricent)*400 + int(cent)*100 + int(quad)*4 + int(yindex)
	// The last day of a century or quadrennium belongs to the closing year,
	// not the next one.
	if cent != 4 && yindex != 4 {
		year++
	}

	yearday := wjd - gregorianToJD(year, 1, 1)
	leapadj := 0.0
	if wjd >= gregorianToJD(year, 3, 1) {
		if IsGregorianLeapYear(year) {
			leapadj = 1
		} else {
			leapadj = 2
		}
	}
	month := int(math.Floor(((yearday+leapadj)*12 + 373) / 367))
	day := int(wjd-gregorianToJD(year, month, 1)) + 1

	return &Gregorian{year: year, month: month, day: day}
}

// IsGregorianLeapYear reports whether a year is a Gregorian leap year.
func IsGregorianLeapYear(year int) bool {
	return imod(year, 4) == 0 && !(imod(year, 100) == 0 && imod(year, 400) != 0)
}

// GregorianDaysInMonth returns the length of a 1-based month.
func GregorianDaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %s month %d", ErrOutOfRange, config.SystemGregorian, month)
	}
	return gregorianDaysInMonth(year, month), nil
}

func gregorianDaysInMonth(year, month int) int {
	if month == 2 && IsGregorianLeapYear(year) {
		return 29
	}
	return gregorianMonthLengths[month-1]
}

// GregorianMonthName returns the name of a 1-based month.
func GregorianMonthName(month int) (string, error) {
	return names.Month(config.SystemGregorian, month)
}

func gregorianToJD(year, month, day int) float64 {
	y := float64(year - 1)
	jd := GregorianEpoch - 1 +
		365*y +
		math.Floor(y/4) -
		math.Floor(y/100) +
		math.Floor(y/400) +
		math.Floor(float64(367*month-362)/12)
	if month > 2 {
		if IsGregorianLeapYear(year) {
			jd--
		} else {
			jd -= 2
		}
	}
	return jd + float64(day)
}

// Year returns the year component.
func (g *Gregorian) Year() int { return g.year }

// Month returns the 1-based month component.
func (g *Gregorian) Month() int { return g.month }

// Day returns the 1-based day component.
func (g *Gregorian) Day() int { return g.day }

// Name returns the calendar system's display name.
func (g *Gregorian) Name() string { return GregorianName }

// JulianDay converts the date to the canonical day count.
func (g *Gregorian) JulianDay() JulianDay {
	return NewJulianDay(gregorianToJD(g.year, g.month, g.day))
}

// IsLeapYear reports whether the date's year is a leap year.
func (g *Gregorian) IsLeapYear() bool { return IsGregorianLeapYear(g.year) }

// DaysInMonth returns the length of the current month.
func (g *Gregorian) DaysInMonth() int { return gregorianDaysInMonth(g.year, g.month) }

// MonthsInYear returns 12.
func (g *Gregorian) MonthsInYear() int { return 12 }

// DaysInWeek returns 7.
func (g *Gregorian) DaysInWeek() int { return 7 }

// NextDay advances the date by one civil day in place.
func (g *Gregorian) NextDay() {
	if g.day < g.DaysInMonth() {
		g.day++
		return
	}
	g.day = 1
	g.month++
	if g.month > g.MonthsInYear() {
		g.month = 1
		g.year++
	}
}

// MonthName resolves the current month's name.
func (g *Gregorian) MonthName() (string, error) {
	return GregorianMonthName(g.month)
}

// WeekDayName resolves the current day's weekday name.
func (g *Gregorian) WeekDayName() (string, error) {
	return names.WeekDay(config.SystemGregorian, g.JulianDay().WeekDayNumber()+1)
}

// Date returns the "{day} {monthName}, {year}" label.
func (g *Gregorian) Date() string {
	name, err := g.MonthName()
	if err != nil {
		return fmt.Sprintf("%04d-%02d-%02d", g.year, g.month, g.day)
	}
	return fmt.Sprintf("%d %s, %d", g.day, name, g.year)
}

// Equal reports component-wise equality.
func (g *Gregorian) Equal(other *Gregorian) bool {
	return other != nil && g.year == other.year && g.month == other.month && g.day == other.day
}

// Time maps the date onto the host clock type at midnight UTC.
func (g *Gregorian) Time() time.Time {
	return time.Date(g.year, time.Month(g.month), g.day, 0, 0, 0, 0, time.UTC)
}

func (g *Gregorian) String() string {
	return g.Name() + ": " + g.Date()
}
