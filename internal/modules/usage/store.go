// README: Usage store — monthly outcome counters backed by Redis.
package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "usage:%s:%s" // usage:<event>:<YYYY-MM>
	// Counters are kept for roughly 13 months so month-over-month
	// comparisons survive a year.
	keyTTL = 400 * 24 * time.Hour

	monthLayout = "2006-01"
)

// Store persists per-event monthly counters.
type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Incr bumps the counter for event in the month containing now.
func (s *Store) Incr(ctx context.Context, event string, now time.Time) error {
	key := counterKey(event, now)
	pipe := s.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, keyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Count returns the counter for event in the month containing now; a missing
// key reads as zero.
func (s *Store) Count(ctx context.Context, event string, now time.Time) (int64, error) {
	val, err := s.redis.Get(ctx, counterKey(event, now)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

func counterKey(event string, now time.Time) string {
	return fmt.Sprintf(keyPrefix, event, now.UTC().Format(monthLayout))
}
