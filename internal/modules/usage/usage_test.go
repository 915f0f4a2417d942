package usage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestStoreIncrAndCount(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, time.November, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Incr(ctx, "flights", now))
	require.NoError(t, store.Incr(ctx, "flights", now))

	n, err := store.Count(ctx, "flights", now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Counters carry a TTL so stale months age out.
	ttl := mr.TTL("usage:flights:2025-11")
	assert.Greater(t, ttl, time.Duration(0))
}

func TestStoreCountMissingKeyIsZero(t *testing.T) {
	store, _ := newTestStore(t)

	n, err := store.Count(context.Background(), "rejected", time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStoreMonthsAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	nov := time.Date(2025, time.November, 30, 23, 0, 0, 0, time.UTC)
	dec := time.Date(2025, time.December, 1, 1, 0, 0, 0, time.UTC)

	require.NoError(t, store.Incr(ctx, "empty", nov))

	n, err := store.Count(ctx, "empty", dec)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestServiceRecordSwallowsStoreErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	svc := NewService(NewStore(client), zap.NewNop())

	mr.Close()

	// Must not panic or propagate.
	svc.Record(context.Background(), "flights")
}

func TestServiceMonthlyStats(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	svc := NewService(NewStore(client), zap.NewNop())
	ctx := context.Background()

	svc.Record(ctx, "flights")
	svc.Record(ctx, "flights")
	svc.Record(ctx, "rejected")

	stats, err := svc.MonthlyStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats["flights"])
	assert.Equal(t, int64(1), stats["rejected"])
	assert.Equal(t, int64(0), stats["clarify"])
	assert.Len(t, stats, len(Events))
}
