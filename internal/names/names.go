// Package names serves the month and weekday name tables for every supported
// calendar system. Tables are embedded flat-JSON locale files loaded into a
// go-i18n bundle once at startup; they are read-only afterwards.
//
// Indices are 1-based at this boundary: MonthName(system, 1) is the first
// month. An index outside the system's count is an error, never a default.
package names

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-almanac/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// ErrOutOfRange signals a month or weekday index outside the calendar
// system's valid count.
var ErrOutOfRange = errors.New("name index out of range")

// ErrUnknownSystem signals a calendar system identifier with no name table.
var ErrUnknownSystem = errors.New("unknown calendar system")

// monthCounts holds the number of month names per calendar system.
// Hebrew carries 13 names (Adar II exists only in leap years but the table is
// static); Maya carries the 19 haab months, Wayeb included.
var monthCounts = map[string]int{
	config.SystemGregorian: 12,
	config.SystemJulian:    12,
	config.SystemHebrew:    13,
	config.SystemIslamic:   12,
	config.SystemPersian:   12,
	config.SystemMaya:      19,
}

// weekDayCounts holds the number of weekday names per calendar system.
// Maya uses the 20-name tzolk'in cycle instead of a 7-day week.
var weekDayCounts = map[string]int{
	config.SystemGregorian: 7,
	config.SystemJulian:    7,
	config.SystemHebrew:    7,
	config.SystemIslamic:   7,
	config.SystemPersian:   7,
	config.SystemMaya:      20,
}

// Table resolves name lookups for one language. English entries are the
// fallback for languages that only translate a subset.
type Table struct {
	lang      string
	localizer *i18n.Localizer
}

// NewTable loads the embedded locales and builds a lookup table for the
// given language tag (e.g. "en", "fr").
func NewTable(lang string) (*Table, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompNames,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompNames,
			config.LogKeyFile, name,
		)
	}

	return &Table{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang),
	}, nil
}

// MonthName returns the name of the 1-based month in the given system.
func (t *Table) MonthName(system string, month int) (string, error) {
	count, ok := monthCounts[system]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSystem, system)
	}
	if month < 1 || month > count {
		return "", fmt.Errorf("%w: %s month %d", ErrOutOfRange, system, month)
	}
	return t.lookup(fmt.Sprintf("%s_month_%d", system, month))
}

// WeekDayName returns the name of the 1-based weekday in the given system.
// Weekday 1 is the system's first named day (Sunday for the 7-day systems,
// Imix' for the Maya tzolk'in).
func (t *Table) WeekDayName(system string, day int) (string, error) {
	count, ok := weekDayCounts[system]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSystem, system)
	}
	if day < 1 || day > count {
		return "", fmt.Errorf("%w: %s weekday %d", ErrOutOfRange, system, day)
	}
	return t.lookup(fmt.Sprintf("%s_weekday_%d", system, day))
}

// lookup resolves a single message ID. A missing entry for an in-range index
// is a packaging defect and surfaces as an error rather than a default.
func (t *Table) lookup(id string) (string, error) {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return "", fmt.Errorf("name table entry %s: %w", id, err)
	}
	return msg, nil
}

// MonthCount returns the number of month names the system's table holds,
// or 0 for an unknown system.
func MonthCount(system string) int {
	return monthCounts[system]
}

// WeekDayCount returns the number of weekday names the system's table holds,
// or 0 for an unknown system.
func WeekDayCount(system string) int {
	return weekDayCounts[system]
}

// -----------------------------------------------------------------------------
// Process-wide default table
// -----------------------------------------------------------------------------

var (
	defaultMu    sync.Mutex
	defaultLang  = language.English.String()
	defaultTable *Table
)

// Configure selects the language of the process-wide default table.
// It must be called before the first lookup; later calls rebuild the table
// and are intended for startup wiring only.
func Configure(lang string) error {
	t, err := NewTable(lang)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultLang = lang
	defaultTable = t
	defaultMu.Unlock()
	return nil
}

// Default returns the process-wide table, building the English one on first
// use. The embedded locales are compiled in, so construction cannot fail at
// runtime once the package compiles with valid JSON.
func Default() *Table {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTable == nil {
		t, err := NewTable(defaultLang)
		if err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompNames,
				config.LogKeyError, err,
			)
			t = &Table{lang: defaultLang, localizer: i18n.NewLocalizer(i18n.NewBundle(language.English))}
		}
		defaultTable = t
	}
	return defaultTable
}

// Month resolves a month name against the default table.
func Month(system string, month int) (string, error) {
	return Default().MonthName(system, month)
}

// WeekDay resolves a weekday name against the default table.
func WeekDay(system string, day int) (string, error) {
	return Default().WeekDayName(system, day)
}
