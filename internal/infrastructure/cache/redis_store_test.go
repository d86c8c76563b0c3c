package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), server
}

func TestRedisStore_SetGetAndInvalidate(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "home", &Snapshot{Status: 200, ContentType: "application/json", Body: []byte(`{"a":1}`)}, []RouteTag{RouteHome, DataTours}, time.Minute))
	require.NoError(t, store.Set(ctx, "detail-2", &Snapshot{Status: 200}, []RouteTag{TourDetailRoute(2)}, time.Minute))

	got, found, err := store.Get(ctx, "home")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "application/json", got.ContentType)
	assert.JSONEq(t, `{"a":1}`, string(got.Body))

	require.NoError(t, store.InvalidateTags(ctx, DataTours))
	require.NoError(t, store.InvalidateTags(ctx, DataTours))

	_, found, err = store.Get(ctx, "home")
	require.NoError(t, err)
	assert.False(t, found)
	_, found, _ = store.Get(ctx, "detail-2")
	assert.True(t, found)

	gens, err := store.Generations(ctx, []RouteTag{DataTours, RouteHome})
	require.NoError(t, err)
	assert.Equal(t, Generations{DataTours: 2, RouteHome: 0}, gens)
}

func TestRedisStore_SetIfCurrent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)
	tags := []RouteTag{RouteTourList, DataTours}

	seen, err := store.Generations(ctx, tags)
	require.NoError(t, err)

	require.NoError(t, store.InvalidateTags(ctx, RouteTourList))
	err = store.SetIfCurrent(ctx, "list", &Snapshot{Status: 200}, tags, time.Minute, seen)
	assert.ErrorIs(t, err, ErrStaleSnapshot)
	_, found, _ := store.Get(ctx, "list")
	assert.False(t, found)

	seen, err = store.Generations(ctx, tags)
	require.NoError(t, err)
	require.NoError(t, store.SetIfCurrent(ctx, "list", &Snapshot{Status: 200}, tags, time.Minute, seen))
	_, found, _ = store.Get(ctx, "list")
	assert.True(t, found)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, server := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "k", &Snapshot{Status: 200}, nil, time.Second))
	server.FastForward(2 * time.Second)

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_PingFailsWhenServerDown(t *testing.T) {
	store, server := newTestRedisStore(t)
	require.NoError(t, store.Ping(context.Background()))

	server.Close()
	assert.Error(t, store.Ping(context.Background()))
}
