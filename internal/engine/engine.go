// Package engine turns a vCard contact source into an iCalendar feed of
// anniversaries tracked in another calendar system: a birthday recurs on its
// Hebrew (or Islamic, Persian, ...) date, and each recurrence is mapped back
// to the Gregorian day calendar clients understand.
package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-almanac/internal/almanac"
	"github.com/tartampluch/go-almanac/internal/config"
)

// SyncConfig contains all parameters required to perform a synchronization.
type SyncConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string // Absolute path to the .vcf file
	WebURL    string // CardDAV or WebDAV URL
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
	Target    string // Calendar system anniversaries are tracked in
}

// Generator is the core service responsible for fetching contacts and
// producing the converted-anniversary feed.
type Generator struct {
	Clock   Clock        // Interface for time mocking.
	Fetcher VCardFetcher // Interface for network abstraction.
}

// occurrence is one projected anniversary: the Gregorian day it falls on and
// the target-calendar year it belongs to.
type occurrence struct {
	date       *almanac.Gregorian
	targetYear int
}

// RunSync executes the fetching, parsing, and generation pipeline.
// It returns the ICS data, the list of entries, the count of anniversaries
// falling today, and any error.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]byte, []Entry, int, error) {
	start := time.Now()

	target := cfg.Target
	if target == "" {
		target = config.DefaultTargetSystem
	}
	desc, err := almanac.Lookup(target)
	if err != nil {
		return nil, nil, 0, err
	}

	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
		config.LogKeySystem, target,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	reader, err := g.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	ics, entries, count, err := g.generateCalendar(ctx, reader, desc)

	if err == nil {
		log.Debug("Sync finished", config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return ics, entries, count, err
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// generateCalendar parses the vCard stream, converts each birthday into the
// target system, and constructs the iCalendar object plus the entry list.
func (g *Generator) generateCalendar(ctx context.Context, r io.Reader, desc *almanac.Descriptor) ([]byte, []Entry, int, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Anniversaries are civil days in the user's local calendar; UTC is only
	// for ICS stamping.
	now := g.Clock.Now()
	today := almanac.GregorianFromTime(now)
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, withBday, today int }{0, 0, 0}
	var entries []Entry

	for {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Continue to the next card to maximize data recovery.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		birth := almanac.GregorianFromTime(birthDate)
		converted := desc.FromJulianDay(birth.JulianDay())

		// Deterministic UID generation for stability across refreshes.
		input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		occs := anniversaries(desc, converted, today)

		next, ageNext := nextOccurrence(occs, converted, today, yearKnown)
		entries = append(entries, Entry{
			UID:            uidBase,
			Name:           name,
			DateOfBirth:    birthDate,
			YearKnown:      yearKnown,
			System:         desc.ID,
			Converted:      converted.Date(),
			NextOccurrence: next,
			AgeNext:        ageNext,
		})

		summary := fmt.Sprintf(config.FormatSummary, name, converted.Date())
		for _, occ := range occs {
			// Do not generate an event before the person is born.
			if yearKnown && occ.date.JulianDay().Before(birth.JulianDay()) {
				continue
			}
			if occ.date.Equal(today) {
				stats.today++
				slog.Info(config.MsgBdayToday,
					config.LogKeyComponent, config.CompEngine,
					config.LogKeyName, name,
					config.LogKeyLabel, converted.Date(),
					config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash))
			}

			event := ical.NewEvent()
			event.Props.SetText(config.PropUID,
				fmt.Sprintf(config.FormatUID, uidBase, occ.targetYear, config.ICalDomain))
			event.Props.SetText(config.PropSummary, summary)

			dtStartProp := ical.NewProp(config.PropDTStart)
			dtStartProp.SetDate(occ.date.Time())
			event.Props.Set(dtStartProp)
			event.Props.Set(dtStampProp)

			cal.Children = append(cal.Children, event.Component)
		}
	}

	// A valid, empty VCALENDAR keeps clients from flagging the feed.
	if len(cal.Children) == 0 {
		g.logSuccess(stats)
		return []byte(config.StubVCalendar), entries, 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(stats)
	return buf.Bytes(), entries, stats.today, nil
}

// logSuccess logs the final statistics of the generation process.
func (g *Generator) logSuccess(stats struct{ processed, withBday, today int }) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
}

// anniversaries projects the converted birth date onto the previous, current
// and next target-calendar year and maps each onto the Gregorian calendar.
//
// A month or day that does not exist in the projected year is clamped to the
// nearest valid one: Adar II in a non-leap Hebrew year becomes Adar, 30
// Heshvan becomes 29 Heshvan. Positional systems carry no year to recur in,
// so they fall back to the Gregorian anniversary and keep the target label.
func anniversaries(desc *almanac.Descriptor, converted almanac.Almanac, today *almanac.Gregorian) []occurrence {
	var out []occurrence

	dated, ok := converted.(almanac.Dated)
	if !ok {
		birth := almanac.ToGregorian(converted)
		for y := today.Year() - 1; y <= today.Year()+1; y++ {
			day := birth.Day()
			if n, err := almanac.GregorianDaysInMonth(y, birth.Month()); err == nil && day > n {
				day = n
			}
			out = append(out, occurrence{
				date:       almanac.NewGregorian(y, birth.Month(), day),
				targetYear: y,
			})
		}
		return out
	}

	todayTarget, err := almanac.Convert(desc.ID, today)
	if err != nil {
		return nil
	}
	year := todayTarget.(almanac.Dated).Year()

	for y := year - 1; y <= year+1; y++ {
		month := dated.Month()
		if n := desc.MonthsInYear(y); month > n {
			month = n
		}
		day := dated.Day()
		if n, err := desc.DaysInMonth(y, month); err == nil && day > n {
			day = n
		}
		out = append(out, occurrence{
			date:       almanac.ToGregorian(desc.NewDate(y, month, day)),
			targetYear: y,
		})
	}
	return out
}

// nextOccurrence picks the first projected anniversary on or after today and
// the completed target-calendar years at that point.
func nextOccurrence(occs []occurrence, converted almanac.Almanac, today *almanac.Gregorian, yearKnown bool) (time.Time, int) {
	for _, occ := range occs {
		if occ.date.JulianDay().Before(today.JulianDay()) {
			continue
		}
		age := 0
		if dated, ok := converted.(almanac.Dated); ok && yearKnown {
			age = occ.targetYear - dated.Year()
		}
		return occ.date.Time(), age
	}
	return time.Time{}, 0
}

// parseDate handles the vCard date formats in the wild.
func parseDate(value string) (time.Time, bool, error) {
	// Full dates (year known).
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates (year unknown), anchored to a leap year so Feb 29
	// stays representable.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
