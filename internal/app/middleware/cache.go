package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CacheStatusHeader reports whether a response came from a snapshot.
const CacheStatusHeader = "X-Cache"

// TagFunc returns the route tags a response depends on.
type TagFunc func(*gin.Context) []cache.RouteTag

// StaticTags always returns tags.
func StaticTags(tags ...cache.RouteTag) TagFunc {
	return func(*gin.Context) []cache.RouteTag {
		return tags
	}
}

// NoCache stops browsers and proxies from storing API reads, so an admin sees
// a mutation on the next request.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}

// Snapshot serves GET responses from store and records 200 responses under
// the tags returned by tagFunc. A response is only recorded when none of its
// tags were invalidated while it was being rendered. A store failure degrades
// to an uncached response.
func Snapshot(store cache.SnapshotStore, ttl time.Duration, tagFunc TagFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := snapshotKey(c)

		snap, found, err := store.Get(c.Request.Context(), key)
		if err != nil {
			Logger.Warning("snapshot get %s: %v", c.Request.URL.Path, err)
		}
		if found {
			c.Header(CacheStatusHeader, "HIT")
			c.Data(snap.Status, snap.ContentType, snap.Body)
			c.Abort()
			return
		}

		c.Header(CacheStatusHeader, "MISS")

		tags := tagFunc(c)
		seen, err := store.Generations(c.Request.Context(), tags)
		if err != nil {
			Logger.Warning("snapshot generations %s: %v", c.Request.URL.Path, err)
			c.Next()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if writer.Status() != http.StatusOK || len(c.Errors) > 0 {
			return
		}

		snap = &cache.Snapshot{
			Status:      http.StatusOK,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}
		err = store.SetIfCurrent(c.Request.Context(), key, snap, tags, ttl, seen)
		if err != nil && !errors.Is(err, cache.ErrStaleSnapshot) {
			Logger.Warning("snapshot set %s: %v", c.Request.URL.Path, err)
		}
	}
}

// snapshotKey hashes the path and the sorted query.
func snapshotKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var query strings.Builder
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			query.WriteString(key + "=" + value + "&")
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + query.String()))
	return hex.EncodeToString(hasher.Sum(nil))
}

// responseWriter copies the body while writing it through.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
