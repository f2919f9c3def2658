package engine

import "time"

// Entry is one contact's birthday re-expressed in the target calendar
// system, in a shape the CLI and server can render without touching the
// vCard layer again.
type Entry struct {
	// UID is a deterministic identifier (hash) stable across refreshes.
	UID string

	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the original parsed Gregorian date.
	DateOfBirth time.Time

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool

	// System is the target calendar system identifier.
	System string

	// Converted is the birth date's label in the target system,
	// e.g. "23 Tevet, 5760".
	Converted string

	// NextOccurrence is the Gregorian date of the next target-calendar
	// anniversary. Primary sorting key for the upcoming list.
	NextOccurrence time.Time

	// AgeNext is the number of completed target-calendar years at
	// NextOccurrence. Only meaningful if YearKnown is true.
	AgeNext int
}
