package almanac

import "math"

// JulianDay is a continuous count of days since noon on 1 January 4713 BC
// (proleptic Julian), the canonical interchange value between calendar
// systems: every conversion goes date -> JulianDay -> date.
//
// One unit is one civil day. Calendar epochs carry a .5 fraction so that
// counts ending in .5 fall on civil midnights; structured decomposition must
// go through AtMidnight first. Values are immutable; arithmetic returns new
// values. Every finite value is a valid count - the calendar conversions
// additionally assume a non-negative count, which is a documented
// precondition rather than a runtime check.
type JulianDay struct {
	value float64
}

// NewJulianDay wraps a raw day count.
func NewJulianDay(value float64) JulianDay {
	return JulianDay{value: value}
}

// Value exposes the raw day count.
func (jd JulianDay) Value() float64 {
	return jd.value
}

// AddDays returns the count shifted by a whole number of days.
func (jd JulianDay) AddDays(days int) JulianDay {
	return JulianDay{value: jd.value + float64(days)}
}

// Sub returns the whole-day span between two counts.
func (jd JulianDay) Sub(other JulianDay) int {
	return int(jd.value - other.value)
}

// AtMidnight floors the count to the start of the civil day it falls in,
// yielding a value ending in .5.
func (jd JulianDay) AtMidnight() JulianDay {
	return JulianDay{value: math.Floor(jd.value-0.5) + 0.5}
}

// Before reports whether jd counts an earlier instant than other.
func (jd JulianDay) Before(other JulianDay) bool {
	return jd.value < other.value
}

// After reports whether jd counts a later instant than other.
func (jd JulianDay) After(other JulianDay) bool {
	return jd.value > other.value
}

// Equal reports exact equality of the underlying counts.
func (jd JulianDay) Equal(other JulianDay) bool {
	return jd.value == other.value
}

// WeekDayNumber returns the 0-based day of the 7-day week, 0 = Sunday.
func (jd JulianDay) WeekDayNumber() int {
	return int(fmod(math.Floor(jd.value+1.5), 7))
}

// fmod is the floored modulus: the result carries the divisor's sign.
func fmod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// imod is the integer floored modulus.
func imod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// idiv is the integer floored division paired with imod.
func idiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
