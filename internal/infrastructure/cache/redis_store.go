package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	snapshotKeyPrefix = "snapshot:"
	tagKeyPrefix      = "snapshot-tag:"
	genKeyPrefix      = "snapshot-gen:"
)

// RedisStore keeps snapshots in Redis. Each tag is a set of snapshot keys plus
// a counter, so invalidation is INCR, SMEMBERS and DEL. Conditional writes
// WATCH the counters.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Snapshot, bool, error) {
	val, err := s.Client.Get(ctx, snapshotKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return &snapshot, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, snapshot *Snapshot, tags []RouteTag, ttl time.Duration) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		queueSet(ctx, pipe, key, payload, tags, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) SetIfCurrent(ctx context.Context, key string, snapshot *Snapshot, tags []RouteTag, ttl time.Duration, seen Generations) error {
	if len(tags) == 0 {
		return s.Set(ctx, key, snapshot, tags, ttl)
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	genKeys := generationKeys(tags)
	err = s.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGenerations(ctx, tx, tags, genKeys)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			if current[tag] != seen[tag] {
				return ErrStaleSnapshot
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			queueSet(ctx, pipe, key, payload, tags, ttl)
			return nil
		})
		return err
	}, genKeys...)

	switch {
	case errors.Is(err, ErrStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		return ErrStaleSnapshot
	case err != nil:
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Generations(ctx context.Context, tags []RouteTag) (Generations, error) {
	if len(tags) == 0 {
		return Generations{}, nil
	}
	return readGenerations(ctx, s.Client, tags, generationKeys(tags))
}

func queueSet(ctx context.Context, pipe redis.Pipeliner, key string, payload []byte, tags []RouteTag, ttl time.Duration) {
	pipe.Set(ctx, snapshotKeyPrefix+key, payload, ttl)
	for _, tag := range tags {
		tagKey := tagKeyPrefix + string(tag)
		pipe.SAdd(ctx, tagKey, key)
		// Tag sets outlive their members by one TTL at most.
		pipe.Expire(ctx, tagKey, 2*ttl)
	}
}

func generationKeys(tags []RouteTag) []string {
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = genKeyPrefix + string(tag)
	}
	return keys
}

// mgetter is satisfied by both *redis.Client and *redis.Tx.
type mgetter interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

func readGenerations(ctx context.Context, c mgetter, tags []RouteTag, genKeys []string) (Generations, error) {
	vals, err := c.MGet(ctx, genKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget generations: %w", err)
	}
	gens := make(Generations, len(tags))
	for i, tag := range tags {
		raw, ok := vals[i].(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("generation of %s: %w", tag, err)
		}
		gens[tag] = n
	}
	return gens, nil
}

func (s *RedisStore) InvalidateTags(ctx context.Context, tags ...RouteTag) error {
	for _, tag := range tags {
		if err := s.Client.Incr(ctx, genKeyPrefix+string(tag)).Err(); err != nil {
			return fmt.Errorf("redis incr generation %s: %w", tag, err)
		}

		tagKey := tagKeyPrefix + string(tag)
		members, err := s.Client.SMembers(ctx, tagKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("redis smembers %s: %w", tagKey, err)
		}

		keys := make([]string, 0, len(members)+1)
		for _, member := range members {
			keys = append(keys, snapshotKeyPrefix+member)
		}
		keys = append(keys, tagKey)

		if err := s.Client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("redis del for tag %s: %w", tag, err)
		}
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
