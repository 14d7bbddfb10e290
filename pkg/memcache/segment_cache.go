// pkg/memcache/segment_cache.go
package memcache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
)

// SegmentCacheStore caches computed segmentations keyed by itinerary content.
// Entries are advisory: a miss just recomputes, a stale hit is dropped.
type SegmentCacheStore interface {
	Get(key string) (response_models.ItinerarySegments, bool)
	Set(key string, segments response_models.ItinerarySegments, ttl time.Duration)
}

type cacheEntry struct {
	segments  response_models.ItinerarySegments
	expiresAt time.Time
}

type SegmentCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
}

func NewSegmentCache() *SegmentCache {
	return &SegmentCache{
		data: make(map[string]cacheEntry),
	}
}

// SegmentCacheKey hashes the inputs that determine a segmentation: the
// destination string and the full day list.
func SegmentCacheKey(destination string, days []request_models.ItineraryDay) string {
	h := sha256.New()
	h.Write([]byte(destination))
	h.Write([]byte{0})
	// Encoding failures cannot happen for these plain structs.
	raw, _ := json.Marshal(days)
	h.Write(raw)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func (s *SegmentCache) Get(key string) (response_models.ItinerarySegments, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return response_models.ItinerarySegments{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return response_models.ItinerarySegments{}, false
	}
	return e.segments, true
}

func (s *SegmentCache) Set(key string, segments response_models.ItinerarySegments, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = cacheEntry{
		segments:  segments,
		expiresAt: time.Now().Add(ttl),
	}

	// Bound memory: when the map grows past 1000 entries, drop whatever has
	// already expired.
	if len(s.data) > 1000 {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}
