// README: DateConstraint sum type shared by the resolver and the flight store.
package types

import "fmt"

// ConstraintKind discriminates the DateConstraint variants.
type ConstraintKind string

const (
	// ConstraintNone applies no date filter at all ("cheapest overall").
	ConstraintNone ConstraintKind = "none"
	// ConstraintExact matches a single calendar date.
	ConstraintExact ConstraintKind = "exact"
	// ConstraintRange matches dates within [Start, End], inclusive.
	ConstraintRange ConstraintKind = "range"
	// ConstraintAfter matches dates strictly greater than Start.
	ConstraintAfter ConstraintKind = "after"
)

// DateConstraint is the single date-filter contract between the planner and
// the flight store. Immutable; build one through the constructors below.
type DateConstraint struct {
	Kind  ConstraintKind
	Start Date
	End   Date
}

// Unconstrained matches every date.
func Unconstrained() DateConstraint {
	return DateConstraint{Kind: ConstraintNone}
}

// Exact matches d only.
func Exact(d Date) DateConstraint {
	return DateConstraint{Kind: ConstraintExact, Start: d}
}

// Between matches [start, end] inclusive. A degenerate range with
// start == end collapses to Exact so no downstream code ever needs a
// separate path for it.
func Between(start, end Date) DateConstraint {
	if start == end {
		return Exact(start)
	}
	return DateConstraint{Kind: ConstraintRange, Start: start, End: end}
}

// After matches dates strictly later than d.
func After(d Date) DateConstraint {
	return DateConstraint{Kind: ConstraintAfter, Start: d}
}

// Matches reports whether d satisfies the constraint. The SQL store applies
// the same semantics in WHERE clauses; in-memory fixtures use this directly.
func (c DateConstraint) Matches(d Date) bool {
	switch c.Kind {
	case ConstraintNone:
		return true
	case ConstraintExact:
		return d == c.Start
	case ConstraintRange:
		return !d.Before(c.Start) && !d.After(c.End)
	case ConstraintAfter:
		return d.After(c.Start)
	default:
		return false
	}
}

func (c DateConstraint) String() string {
	switch c.Kind {
	case ConstraintExact:
		return fmt.Sprintf("exact(%s)", c.Start)
	case ConstraintRange:
		return fmt.Sprintf("range(%s..%s)", c.Start, c.End)
	case ConstraintAfter:
		return fmt.Sprintf("after(%s)", c.Start)
	default:
		return "unconstrained"
	}
}
