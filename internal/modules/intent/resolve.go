// README: Date constraint resolvers — map a normalized intent's date fields
// onto the store's DateConstraint contract.
package intent

import "rupeetravel/internal/types"

// OutboundConstraint derives the outbound leg's date filter.
//
// An unspecified date resolves to Unconstrained, never to "today": defaulting
// to the current date used to return nothing whenever no flight happened to
// exist on that day. No date means "search all dates, cheapest wins".
func OutboundConstraint(ti TripIntent) types.DateConstraint {
	switch {
	case ti.DepartureStart != nil && ti.DepartureEnd != nil:
		// Between collapses start == end to an exact match.
		return types.Between(*ti.DepartureStart, *ti.DepartureEnd)
	case ti.DepartureStart != nil:
		return types.Exact(*ti.DepartureStart)
	default:
		return types.Unconstrained()
	}
}

// InboundConstraint derives the return leg's date filter from the realized
// outbound departure — the date of the cheapest outbound match actually
// returned, not the date the user originally asked for. With a known trip
// duration the return day is exact; otherwise it is the cheapest flight
// strictly after the outbound date, with no upper bound.
func InboundConstraint(actualOutbound types.Date, durationDays *int) types.DateConstraint {
	if durationDays != nil {
		return types.Exact(actualOutbound.AddDays(*durationDays))
	}
	return types.After(actualOutbound)
}
