// README: Flight store backed by PostgreSQL.
package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rupeetravel/internal/types"
)

const selectColumns = `id, uuid, date, origin, destination, airline, duration,
       flight_type, price_inr, origin_country, destination_country, link,
       rain_probability, free_meal`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// QueryByRoute returns up to limit flights on the given route satisfying the
// date constraint, cheapest first with id as the deterministic tie-break.
// No rows is an empty slice, never an error.
//
// Inputs are always an origin, a destination, a typed constraint and a limit;
// caller-supplied text is never interpolated into SQL. This is the security
// boundary between the untrusted extractor and the database.
func (s *Store) QueryByRoute(ctx context.Context, origin, destination string, c types.DateConstraint, limit int) ([]Flight, error) {
	if limit <= 0 {
		limit = 1
	}

	where, args := buildDateClause(c, 3)
	query := fmt.Sprintf(`
        SELECT %s
        FROM flights
        WHERE origin = $1 AND destination = $2%s
        ORDER BY price_inr ASC, id ASC
        LIMIT %d`, selectColumns, where, limit)

	allArgs := append([]any{origin, destination}, args...)
	rows, err := s.db.Query(ctx, query, allArgs...)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	results := []Flight{}
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, f)
	}
	return results, rows.Err()
}

// Count returns the number of stored flights; the loader uses it to decide
// whether seeding is needed.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&n)
	return n, err
}

// Insert persists one flight and returns its assigned id.
func (s *Store) Insert(ctx context.Context, f *Flight) error {
	return s.db.QueryRow(ctx, `
        INSERT INTO flights (
            uuid, date, origin, destination, airline, duration, flight_type,
            price_inr, origin_country, destination_country, link,
            rain_probability, free_meal
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`,
		f.UUID, f.Date.Time(), f.Origin, f.Destination, f.Airline, f.Duration,
		f.FlightType, f.PriceINR, f.OriginCountry, f.DestinationCountry,
		f.Link, f.RainProbability, f.FreeMeal,
	).Scan(&f.ID)
}

// buildDateClause renders the constraint as an AND-fragment with placeholders
// starting at startIdx. Unconstrained renders nothing. Between collapsed
// degenerate ranges upstream, so Exact and Range stay mutually exclusive
// here.
func buildDateClause(c types.DateConstraint, startIdx int) (string, []any) {
	switch c.Kind {
	case types.ConstraintExact:
		return fmt.Sprintf(" AND date = $%d", startIdx), []any{c.Start.Time()}
	case types.ConstraintRange:
		return fmt.Sprintf(" AND date BETWEEN $%d AND $%d", startIdx, startIdx+1),
			[]any{c.Start.Time(), c.End.Time()}
	case types.ConstraintAfter:
		return fmt.Sprintf(" AND date > $%d", startIdx), []any{c.Start.Time()}
	default:
		return "", nil
	}
}

// rowScanner is the subset of pgx.Rows used by scanFlight.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlight(row rowScanner) (Flight, error) {
	var (
		f    Flight
		date time.Time
	)
	err := row.Scan(
		&f.ID, &f.UUID, &date, &f.Origin, &f.Destination, &f.Airline,
		&f.Duration, &f.FlightType, &f.PriceINR, &f.OriginCountry,
		&f.DestinationCountry, &f.Link, &f.RainProbability, &f.FreeMeal,
	)
	if err != nil {
		return Flight{}, fmt.Errorf("scan flight: %w", err)
	}
	f.Date = types.DateOf(date.UTC())
	return f, nil
}
