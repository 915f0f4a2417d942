// README: Wire shape of the model's JSON output and its decoding into a
// TripIntent.
package ai

import (
	"encoding/json"
	"fmt"

	"rupeetravel/internal/modules/intent"
	"rupeetravel/internal/types"
)

// rawIntent mirrors the JSON schema the model is instructed to emit. Every
// field is optional on the wire; decoding tolerates gaps and garbage, that is
// what the guardrail layer is for.
type rawIntent struct {
	TripType           string  `json:"trip_type"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	DepartureDateStart *string `json:"departure_date_start"`
	DepartureDateEnd   *string `json:"departure_date_end"`
	TripDurationDays   *int    `json:"trip_duration_days"`
	LimitPerLeg        int     `json:"limit_per_leg"`
	Clarification      *string `json:"clarification_needed"`
}

// decodeIntent parses the model's JSON into a TripIntent.
//
// Returns ErrUnparseable when the payload is not JSON at all, or when the
// minimum shape is missing: no origin, no destination, no resolvable trip
// type, and no clarification question either. Malformed date strings are
// dropped rather than failing the request — a missing date is a legal intent
// ("cheapest overall") and the normalizer may still repair it from the query
// text.
func decodeIntent(payload []byte) (intent.TripIntent, error) {
	var raw rawIntent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return intent.TripIntent{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	ti := intent.TripIntent{
		TripType:         intent.ParseTripType(raw.TripType),
		Origin:           raw.Origin,
		Destination:      raw.Destination,
		TripDurationDays: raw.TripDurationDays,
		LimitPerLeg:      raw.LimitPerLeg,
	}
	if raw.Clarification != nil {
		ti.ClarificationNeeded = *raw.Clarification
	}

	ti.DepartureStart = parseOptionalDate(raw.DepartureDateStart)
	ti.DepartureEnd = parseOptionalDate(raw.DepartureDateEnd)

	// A dangling end bound without a start is extractor noise; drop it so
	// downstream code only ever sees start-anchored ranges.
	if ti.DepartureStart == nil {
		ti.DepartureEnd = nil
	}
	// Repair an inverted range instead of propagating it.
	if ti.DepartureStart != nil && ti.DepartureEnd != nil && ti.DepartureEnd.Before(*ti.DepartureStart) {
		ti.DepartureStart, ti.DepartureEnd = ti.DepartureEnd, ti.DepartureStart
	}

	// Durations cannot be negative; treat them as unknown.
	if ti.TripDurationDays != nil && *ti.TripDurationDays < 0 {
		ti.TripDurationDays = nil
	}

	if ti.Origin == "" && ti.Destination == "" && ti.TripType == intent.TripUnknown && ti.ClarificationNeeded == "" {
		return intent.TripIntent{}, ErrUnparseable
	}
	return ti, nil
}

func parseOptionalDate(s *string) *types.Date {
	if s == nil || *s == "" {
		return nil
	}
	d, err := types.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}
