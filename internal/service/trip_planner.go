// README: Trip leg planner — orchestrates gate, extraction, guardrails and
// the one-or-two store lookups behind a flight query.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"rupeetravel/internal/ai"
	"rupeetravel/internal/modules/flights"
	"rupeetravel/internal/modules/intent"
	"rupeetravel/internal/types"
)

// DomainGate is the boolean pre-check consulted once per request. False
// short-circuits the whole pipeline before any extraction work.
type DomainGate interface {
	IsInDomain(text string) bool
}

// FlightFinder is the store contract the planner depends on: ranked matches
// for a route under a typed date constraint, empty slice when nothing
// matches.
type FlightFinder interface {
	QueryByRoute(ctx context.Context, origin, destination string, c types.DateConstraint, limit int) ([]flights.Flight, error)
}

// OutcomeRecorder receives one event per finished plan, best-effort.
type OutcomeRecorder interface {
	Record(ctx context.Context, event string)
}

// OutcomeKind enumerates the terminal states of a plan.
type OutcomeKind string

const (
	// OutcomeRejected: the gate classified the query as out of domain.
	// A routing decision, not an error.
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomeMisunderstood: the extractor could not produce the minimum
	// required fields and offered no clarification. Recovered locally with a
	// "please restate" response; never propagated as a fault.
	OutcomeMisunderstood OutcomeKind = "misunderstood"
	// OutcomeClarify: the extractor asked the user a question; it is
	// surfaced verbatim and no store query is issued.
	OutcomeClarify OutcomeKind = "clarify"
	// OutcomeEmpty: the outbound leg matched nothing.
	OutcomeEmpty OutcomeKind = "empty"
	// OutcomeFlights: at least the outbound leg matched.
	OutcomeFlights OutcomeKind = "flights"
	// OutcomeInternalError: a collaborator failed unexpectedly. Surfaced as
	// one opaque outcome, never retried — re-invoking an LLM-backed
	// extractor would double-bill and may answer differently.
	OutcomeInternalError OutcomeKind = "internal_error"
)

// PlanOutcome is the planner's sole result type. Kind decides which of the
// payload fields is meaningful.
type PlanOutcome struct {
	Kind     OutcomeKind
	Question string           // set for OutcomeClarify
	Flights  []flights.Flight // set for OutcomeFlights, outbound ++ inbound
}

// TripPlanner holds no per-request state; one instance serves all requests
// concurrently.
type TripPlanner struct {
	gate      DomainGate
	extractor ai.IntentExtractor
	store     FlightFinder
	usage     OutcomeRecorder
	logger    *zap.Logger
}

// NewTripPlanner wires the planner. usage may be nil when accounting is not
// configured.
func NewTripPlanner(gate DomainGate, extractor ai.IntentExtractor, store FlightFinder, usage OutcomeRecorder, logger *zap.Logger) *TripPlanner {
	return &TripPlanner{
		gate:      gate,
		extractor: extractor,
		store:     store,
		usage:     usage,
		logger:    logger,
	}
}

// Plan processes one query. Steps are strictly sequential: the inbound
// constraint depends on the realized outbound result, so there is nothing to
// parallelize.
func (p *TripPlanner) Plan(ctx context.Context, queryText string, today types.Date) PlanOutcome {
	if !p.gate.IsInDomain(queryText) {
		return p.finish(ctx, PlanOutcome{Kind: OutcomeRejected})
	}

	raw, err := p.extractor.Extract(ctx, queryText, today)
	if err != nil {
		if errors.Is(err, ai.ErrUnparseable) {
			p.logger.Info("extractor could not parse query", zap.Error(err))
			return p.finish(ctx, PlanOutcome{Kind: OutcomeMisunderstood})
		}
		p.logger.Error("extractor failed", zap.Error(err))
		return p.finish(ctx, PlanOutcome{Kind: OutcomeInternalError})
	}

	ti := intent.Normalize(raw, queryText, today)
	if raw.DepartureStart == nil && ti.DepartureStart != nil {
		p.logger.Info("guardrail filled departure window from query text",
			zap.Stringer("start", *ti.DepartureStart),
			zap.Stringer("end", *ti.DepartureEnd))
	}

	// A clarification question always halts planning, whatever else was
	// extracted.
	if ti.ClarificationNeeded != "" {
		return p.finish(ctx, PlanOutcome{Kind: OutcomeClarify, Question: ti.ClarificationNeeded})
	}
	if ti.Origin == "" || ti.Destination == "" || ti.TripType == intent.TripUnknown {
		return p.finish(ctx, PlanOutcome{Kind: OutcomeMisunderstood})
	}

	outbound, err := p.store.QueryByRoute(ctx, ti.Origin, ti.Destination, intent.OutboundConstraint(ti), ti.LimitPerLeg)
	if err != nil {
		p.logger.Error("outbound query failed", zap.Error(err))
		return p.finish(ctx, PlanOutcome{Kind: OutcomeInternalError})
	}
	if len(outbound) == 0 {
		// Nothing to anchor a return date to; the inbound leg is skipped.
		return p.finish(ctx, PlanOutcome{Kind: OutcomeEmpty})
	}

	if ti.TripType == intent.TripOneWay {
		return p.finish(ctx, PlanOutcome{Kind: OutcomeFlights, Flights: outbound})
	}

	// Round trip: anchor the return to the cheapest outbound match actually
	// found, not to the dates the user asked for.
	anchor := outbound[0].Date
	inboundConstraint := intent.InboundConstraint(anchor, ti.TripDurationDays)
	inbound, err := p.store.QueryByRoute(ctx, ti.Destination, ti.Origin, inboundConstraint, ti.LimitPerLeg)
	if err != nil {
		p.logger.Error("inbound query failed", zap.Error(err))
		return p.finish(ctx, PlanOutcome{Kind: OutcomeInternalError})
	}

	// An empty inbound leg does not invalidate the outbound result; each leg
	// is reported independently, outbound first.
	result := outbound
	if len(inbound) > 0 {
		result = append(result, inbound...)
	}
	return p.finish(ctx, PlanOutcome{Kind: OutcomeFlights, Flights: result})
}

func (p *TripPlanner) finish(ctx context.Context, out PlanOutcome) PlanOutcome {
	if p.usage != nil {
		p.usage.Record(ctx, string(out.Kind))
	}
	return out
}
