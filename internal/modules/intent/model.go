// README: TripIntent model — the structured flight-search request.
package intent

import "rupeetravel/internal/types"

// TripType classifies the requested itinerary shape.
type TripType string

const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
	// TripUnknown marks an intent the extractor could not resolve. Planning
	// never proceeds on it.
	TripUnknown TripType = "unknown"
)

// ParseTripType maps the extractor's raw string onto a TripType, folding
// anything unrecognised into TripUnknown.
func ParseTripType(s string) TripType {
	switch TripType(s) {
	case TripOneWay, TripRoundTrip:
		return TripType(s)
	default:
		return TripUnknown
	}
}

// TripIntent is the extractor's view of one request. It is produced once per
// request, corrected exactly once by Normalize, and read-only afterwards.
// Never persisted.
type TripIntent struct {
	TripType    TripType
	Origin      string
	Destination string

	// DepartureStart/DepartureEnd bound the outbound departure date. Nil
	// means the user gave no date ("cheapest overall"), not "today".
	// Invariant: when both are set, DepartureStart <= DepartureEnd.
	DepartureStart *types.Date
	DepartureEnd   *types.Date

	// TripDurationDays is meaningful only for round trips.
	TripDurationDays *int

	// LimitPerLeg caps results per leg; "cheapest" means 1.
	LimitPerLeg int

	// ClarificationNeeded carries a question for the user. When non-empty,
	// planning stops and the question is surfaced verbatim.
	ClarificationNeeded string
}

// Clone returns a copy with fresh pointers so corrections never alias the
// extractor's output.
func (ti TripIntent) Clone() TripIntent {
	cp := ti
	if ti.DepartureStart != nil {
		d := *ti.DepartureStart
		cp.DepartureStart = &d
	}
	if ti.DepartureEnd != nil {
		d := *ti.DepartureEnd
		cp.DepartureEnd = &d
	}
	if ti.TripDurationDays != nil {
		n := *ti.TripDurationDays
		cp.TripDurationDays = &n
	}
	return cp
}
