// Package intent — dates contains pure calendar heuristics used by the
// normalizer. Everything here is deterministic given the supplied "today".
package intent

import (
	"strings"
	"time"

	"rupeetravel/internal/types"
)

// monthsByName maps lower-cased full English month names to their index.
// Abbreviations are deliberately excluded: "may" aside, short forms collide
// with ordinary words far too often ("mar", "jun").
var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ResolveRelative maps the tokens "today" and "tomorrow" to concrete dates.
// The second return value is false for any other token.
func ResolveRelative(token string, today types.Date) (types.Date, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDays(1), true
	default:
		return types.Date{}, false
	}
}

// ResolveMonth returns the first and last day of the next occurrence of the
// named month: months earlier in the calendar than today's month roll over
// to next year. Returns false when name is not a full month name.
//
// Note the boundary: the current month resolves to this year even when today
// is already mid-month, matching how "in November" reads on November 15th.
func ResolveMonth(name string, today types.Date) (first, last types.Date, ok bool) {
	month, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return types.Date{}, types.Date{}, false
	}

	year := today.Year
	if month < today.Month {
		year++
	}

	first = types.NewDate(year, month, 1)
	last = types.NewDate(year, month, daysIn(year, month))
	return first, last, true
}

// daysIn returns the length of a month, leap years included. Day 0 of the
// following month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
