package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	snapshot   Snapshot
	tags       []RouteTag
	expiration time.Time
}

// MemoryStore is an in-process SnapshotStore used when Redis is disabled.
type MemoryStore struct {
	sync.RWMutex
	items map[string]memoryEntry
	byTag map[RouteTag]map[string]struct{}
	gens  Generations
	now   func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryEntry),
		byTag: make(map[RouteTag]map[string]struct{}),
		gens:  make(Generations),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (*Snapshot, bool, error) {
	s.RLock()
	entry, found := s.items[key]
	s.RUnlock()

	if !found || !entry.expiration.After(s.now()) {
		return nil, false, nil
	}
	snapshot := entry.snapshot
	snapshot.Body = append([]byte(nil), entry.snapshot.Body...)
	return &snapshot, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, snapshot *Snapshot, tags []RouteTag, ttl time.Duration) error {
	s.Lock()
	defer s.Unlock()
	s.setLocked(key, snapshot, tags, ttl)
	return nil
}

func (s *MemoryStore) SetIfCurrent(ctx context.Context, key string, snapshot *Snapshot, tags []RouteTag, ttl time.Duration, seen Generations) error {
	s.Lock()
	defer s.Unlock()
	for _, tag := range tags {
		if s.gens[tag] != seen[tag] {
			return ErrStaleSnapshot
		}
	}
	s.setLocked(key, snapshot, tags, ttl)
	return nil
}

func (s *MemoryStore) Generations(ctx context.Context, tags []RouteTag) (Generations, error) {
	s.RLock()
	defer s.RUnlock()
	gens := make(Generations, len(tags))
	for _, tag := range tags {
		gens[tag] = s.gens[tag]
	}
	return gens, nil
}

func (s *MemoryStore) setLocked(key string, snapshot *Snapshot, tags []RouteTag, ttl time.Duration) {
	s.removeLocked(key)

	stored := *snapshot
	stored.Body = append([]byte(nil), snapshot.Body...)
	s.items[key] = memoryEntry{
		snapshot:   stored,
		tags:       append([]RouteTag(nil), tags...),
		expiration: s.now().Add(ttl),
	}
	for _, tag := range tags {
		keys, ok := s.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

func (s *MemoryStore) InvalidateTags(ctx context.Context, tags ...RouteTag) error {
	s.Lock()
	defer s.Unlock()

	for _, tag := range tags {
		s.gens[tag]++
		for key := range s.byTag[tag] {
			s.removeLocked(key)
		}
		delete(s.byTag, tag)
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Len counts live and expired entries not yet purged.
func (s *MemoryStore) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.items)
}

// PurgeExpired drops expired entries.
func (s *MemoryStore) PurgeExpired() {
	now := s.now()

	s.Lock()
	defer s.Unlock()

	for key, entry := range s.items {
		if entry.expiration.Before(now) {
			s.removeLocked(key)
		}
	}
}

// StartJanitor purges expired entries every interval until ctx is done.
func (s *MemoryStore) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.PurgeExpired()
			}
		}
	}()
}

func (s *MemoryStore) removeLocked(key string) {
	entry, found := s.items[key]
	if !found {
		return
	}
	for _, tag := range entry.tags {
		if keys, ok := s.byTag[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(s.byTag, tag)
			}
		}
	}
	delete(s.items, key)
}
