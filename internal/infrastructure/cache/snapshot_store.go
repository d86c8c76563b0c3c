package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStaleSnapshot is returned by SetIfCurrent when a tag was invalidated
// after its generations were read.
var ErrStaleSnapshot = errors.New("snapshot is stale")

// Generations holds the invalidation counter of each tag. A missing tag is
// generation zero.
type Generations map[RouteTag]int64

// RouteTag names a rendered view or dataset whose snapshots can be invalidated.
type RouteTag string

const (
	// RouteHome is the site root, which embeds the recent tours widget.
	RouteHome RouteTag = "/"
	// RouteTourList is the public tour listing.
	RouteTourList RouteTag = "/tours"
	// DataTours covers any view that shows tour data.
	DataTours RouteTag = "tours"
)

// TourDetailRoute is the tag of a single tour's detail view.
func TourDetailRoute(id uint) RouteTag {
	return RouteTag(fmt.Sprintf("/tours/%d", id))
}

// Snapshot is a cached response body.
type Snapshot struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// SnapshotStore keeps response snapshots and the tags that invalidate them.
type SnapshotStore interface {
	// Get returns found=false on a miss or an expired entry.
	Get(ctx context.Context, key string) (*Snapshot, bool, error)
	Set(ctx context.Context, key string, snapshot *Snapshot, tags []RouteTag, ttl time.Duration) error
	// InvalidateTags removes every snapshot carrying any of the tags. It is
	// idempotent.
	InvalidateTags(ctx context.Context, tags ...RouteTag) error
	// Generations reads the current counters of tags. InvalidateTags bumps
	// the counter of every tag it is given.
	Generations(ctx context.Context, tags []RouteTag) (Generations, error)
	// SetIfCurrent stores the snapshot only when no tag moved past seen.
	SetIfCurrent(ctx context.Context, key string, snapshot *Snapshot, tags []RouteTag, ttl time.Duration, seen Generations) error
	Ping(ctx context.Context) error
}
