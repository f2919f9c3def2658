package almanac

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-almanac/internal/config"
)

// ErrUnknownSystem signals a calendar system identifier outside the registry.
var ErrUnknownSystem = errors.New("unknown calendar system")

// The routers below are the only inter-system paths: every conversion is
// target.FromJulianDay(source.JulianDay()). Composing a system's own pair is
// the identity for every valid date.

// ToGregorian converts any date to the Gregorian calendar.
func ToGregorian(a Almanac) *Gregorian { return GregorianFromJulianDay(a.JulianDay()) }

// ToJulian converts any date to the Julian calendar.
func ToJulian(a Almanac) *Julian { return JulianFromJulianDay(a.JulianDay()) }

// ToHebrew converts any date to the Hebrew calendar.
func ToHebrew(a Almanac) *Hebrew { return HebrewFromJulianDay(a.JulianDay()) }

// ToIslamic converts any date to the Islamic calendar.
func ToIslamic(a Almanac) *Islamic { return IslamicFromJulianDay(a.JulianDay()) }

// ToPersian converts any date to the Persian calendar.
func ToPersian(a Almanac) *Persian { return PersianFromJulianDay(a.JulianDay()) }

// ToMaya converts any date to the Maya Long Count.
func ToMaya(a Almanac) *Maya { return MayaFromJulianDay(a.JulianDay()) }

// Descriptor ties a calendar system identifier to the constructors and rules
// the generic surfaces (CLI flags, HTTP queries) need. NewDate, MonthsInYear
// and DaysInMonth are nil for the Maya Long Count, which has digits instead
// of year/month/day components.
type Descriptor struct {
	ID            string
	DisplayName   string
	FromJulianDay func(jd JulianDay) Almanac
	NewDate       func(year, month, day int) Almanac
	MonthsInYear  func(year int) int
	DaysInMonth   func(year, month int) (int, error)
}

var registry = map[string]*Descriptor{
	config.SystemGregorian: {
		ID:            config.SystemGregorian,
		DisplayName:   GregorianName,
		FromJulianDay: func(jd JulianDay) Almanac { return GregorianFromJulianDay(jd) },
		NewDate:       func(y, m, d int) Almanac { return NewGregorian(y, m, d) },
		MonthsInYear:  func(int) int { return 12 },
		DaysInMonth:   GregorianDaysInMonth,
	},
	config.SystemJulian: {
		ID:            config.SystemJulian,
		DisplayName:   JulianName,
		FromJulianDay: func(jd JulianDay) Almanac { return JulianFromJulianDay(jd) },
		NewDate:       func(y, m, d int) Almanac { return NewJulian(y, m, d) },
		MonthsInYear:  func(int) int { return 12 },
		DaysInMonth:   JulianDaysInMonth,
	},
	config.SystemHebrew: {
		ID:            config.SystemHebrew,
		DisplayName:   HebrewName,
		FromJulianDay: func(jd JulianDay) Almanac { return HebrewFromJulianDay(jd) },
		NewDate:       func(y, m, d int) Almanac { return NewHebrew(y, m, d) },
		MonthsInYear:  HebrewMonthsInYear,
		DaysInMonth:   HebrewDaysInMonth,
	},
	config.SystemIslamic: {
		ID:            config.SystemIslamic,
		DisplayName:   IslamicName,
		FromJulianDay: func(jd JulianDay) Almanac { return IslamicFromJulianDay(jd) },
		NewDate:       func(y, m, d int) Almanac { return NewIslamic(y, m, d) },
		MonthsInYear:  func(int) int { return 12 },
		DaysInMonth:   IslamicDaysInMonth,
	},
	config.SystemPersian: {
		ID:            config.SystemPersian,
		DisplayName:   PersianName,
		FromJulianDay: func(jd JulianDay) Almanac { return PersianFromJulianDay(jd) },
		NewDate:       func(y, m, d int) Almanac { return NewPersian(y, m, d) },
		MonthsInYear:  func(int) int { return 12 },
		DaysInMonth:   PersianDaysInMonth,
	},
	config.SystemMaya: {
		ID:            config.SystemMaya,
		DisplayName:   MayaName,
		FromJulianDay: func(jd JulianDay) Almanac { return MayaFromJulianDay(jd) },
	},
}

// Systems lists the supported system identifiers in presentation order.
func Systems() []string {
	return config.SystemIDs
}

// Lookup resolves a system identifier to its descriptor.
func Lookup(id string) (*Descriptor, error) {
	d, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, id)
	}
	return d, nil
}

// FromJulianDay constructs the named system's date for a day count.
func FromJulianDay(id string, jd JulianDay) (Almanac, error) {
	d, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return d.FromJulianDay(jd), nil
}

// Convert re-expresses any date in the named target system, routing through
// the canonical day count.
func Convert(id string, a Almanac) (Almanac, error) {
	return FromJulianDay(id, a.JulianDay())
}

// SystemID returns the registry identifier of a date's calendar system, or
// the empty string for a type outside the registry.
func SystemID(a Almanac) string {
	switch a.(type) {
	case *Gregorian:
		return config.SystemGregorian
	case *Julian:
		return config.SystemJulian
	case *Hebrew:
		return config.SystemHebrew
	case *Islamic:
		return config.SystemIslamic
	case *Persian:
		return config.SystemPersian
	case *Maya:
		return config.SystemMaya
	default:
		return ""
	}
}
