// README: Usage service — best-effort request accounting.
package usage

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Events tracked per month. These mirror the planner's outcome taxonomy so
// the stats endpoint can answer "how often do we reject / clarify / find
// nothing" without touching request logs.
var Events = []string{
	"rejected",
	"misunderstood",
	"clarify",
	"empty",
	"flights",
	"internal_error",
}

// Service records planner outcomes. Recording is strictly best-effort: a
// Redis outage must never fail a user request, so errors are logged and
// swallowed here.
type Service struct {
	store  *Store
	logger *zap.Logger
}

func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Record bumps the monthly counter for event.
func (s *Service) Record(ctx context.Context, event string) {
	if err := s.store.Incr(ctx, event, time.Now()); err != nil {
		s.logger.Warn("usage counter update failed",
			zap.String("event", event), zap.Error(err))
	}
}

// MonthlyStats returns the current month's counter per event.
func (s *Service) MonthlyStats(ctx context.Context) (map[string]int64, error) {
	now := time.Now()
	stats := make(map[string]int64, len(Events))
	for _, ev := range Events {
		n, err := s.store.Count(ctx, ev, now)
		if err != nil {
			return nil, err
		}
		stats[ev] = n
	}
	return stats, nil
}
