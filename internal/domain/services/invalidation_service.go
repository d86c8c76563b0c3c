package services

import (
	"context"
	"sync"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"
)

const invalidationTimeout = 5 * time.Second

// InterfaceInvalidationService drops cached page snapshots after a mutation.
type InterfaceInvalidationService interface {
	Invalidate(tags ...cache.RouteTag)
	Wait()
}

// InvalidationService invalidates snapshot tags in the background. A failure
// is logged and never reaches the caller; the mutation has already succeeded.
type InvalidationService struct {
	store   cache.SnapshotStore
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewInvalidationService creates an invalidation service over a snapshot store.
func NewInvalidationService(store cache.SnapshotStore) *InvalidationService {
	return &InvalidationService{store: store, timeout: invalidationTimeout}
}

// Invalidate returns immediately.
func (s *InvalidationService) Invalidate(tags ...cache.RouteTag) {
	if s.store == nil || len(tags) == 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.store.InvalidateTags(ctx, tags...); err != nil {
			Logger.Warning("invalidate snapshots %v: %v", tags, err)
		}
	}()
}

// Wait blocks until every pending invalidation has finished.
func (s *InvalidationService) Wait() {
	s.wg.Wait()
}

// TourMutationTags are the views affected by creating, replacing or deleting a tour.
func TourMutationTags(id uint) []cache.RouteTag {
	return []cache.RouteTag{
		cache.RouteTourList,
		cache.RouteHome,
		cache.DataTours,
		cache.TourDetailRoute(id),
	}
}
