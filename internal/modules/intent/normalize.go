// README: Guardrail normalizer — deterministic corrections applied after the
// unreliable extraction step.
package intent

import (
	"strings"

	"rupeetravel/internal/types"
)

// Normalize returns a corrected copy of raw. It only fills fields the
// extractor left empty; populated fields are trusted and never overwritten.
// The transform is idempotent: normalizing an already-normalized intent is a
// no-op, because the month scan only runs while DepartureStart is unset.
//
// queryText is the original user query; matching is case-insensitive.
func Normalize(raw TripIntent, queryText string, today types.Date) TripIntent {
	out := raw.Clone()

	if out.LimitPerLeg <= 0 {
		out.LimitPerLeg = 1
	}

	// Guardrail: the extractor routinely misses month-only dates ("in
	// December"). First full month name in the query wins; multiple month
	// mentions are not aggregated.
	if out.DepartureStart == nil {
		for _, token := range tokenize(queryText) {
			first, last, ok := ResolveMonth(token, today)
			if !ok {
				continue
			}
			out.DepartureStart = &first
			out.DepartureEnd = &last
			break
		}
	}

	// ClarificationNeeded passes through untouched: the normalizer neither
	// invents questions nor clears one the extractor asked.
	return out
}

// tokenize lower-cases the query and splits it into alphanumeric runs, so
// "December?" and "december," both match the month table.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		return !isAlnum
	})
}
