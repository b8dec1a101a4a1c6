package geometry

import (
	"hash/fnv"
	"math"
	"sync/atomic"

	"github.com/gogpu/gg/cache"
)

// DefaultCacheCapacity is the per-shard entry limit of the default
// intersection cache.
const DefaultCacheCapacity = 256

// segmentPair is the cache key: both segments' endpoints, first segment
// first, start before end.
type segmentPair [8]float64

func newSegmentPair(a, b Segment) segmentPair {
	return segmentPair{
		a.Start.X, a.Start.Y, a.End.X, a.End.Y,
		b.Start.X, b.Start.Y, b.End.X, b.End.Y,
	}
}

func hashSegmentPair(k segmentPair) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range k {
		bits := math.Float64bits(v)
		for i := range buf {
			buf[i] = byte(bits >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// intersection is a cached outcome. A miss is stored as found=false so it is
// never confused with an absent entry.
type intersection struct {
	coords Coords
	found  bool
}

// IntersectionCache memoizes Intersect behind a bounded LRU.
type IntersectionCache struct {
	entries *cache.ShardedCache[segmentPair, intersection]
}

// NewIntersectionCache creates a cache holding up to capacity entries per
// shard. A non-positive capacity selects the library default.
func NewIntersectionCache(capacity int) *IntersectionCache {
	return &IntersectionCache{
		entries: cache.NewSharded[segmentPair, intersection](capacity, hashSegmentPair),
	}
}

// Intersect returns the cached result for the pair, computing it on a miss.
func (c *IntersectionCache) Intersect(a, b Segment) (Coords, bool) {
	r := c.entries.GetOrCreate(newSegmentPair(a, b), func() intersection {
		coords, found := Intersect(a, b)
		return intersection{coords: coords, found: found}
	})
	return r.coords, r.found
}

// Len returns the number of cached pairs.
func (c *IntersectionCache) Len() int {
	return c.entries.Len()
}

// Stats reports hit, miss and eviction counters.
func (c *IntersectionCache) Stats() cache.Stats {
	return c.entries.Stats()
}

var defaultCache atomic.Pointer[IntersectionCache]

func init() {
	defaultCache.Store(NewIntersectionCache(DefaultCacheCapacity))
}

// SetDefaultCacheCapacity replaces the process-wide cache used by
// LineIntersection.
func SetDefaultCacheCapacity(capacity int) {
	defaultCache.Store(NewIntersectionCache(capacity))
}

// DefaultCache returns the process-wide intersection cache.
func DefaultCache() *IntersectionCache {
	return defaultCache.Load()
}

// LineIntersection is Intersect through the process-wide cache.
func LineIntersection(a, b Segment) (Coords, bool) {
	return defaultCache.Load().Intersect(a, b)
}
