package rendering

import (
	"sync"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/raycast"
)

// Cache size constants - proactive limits prevent GC spikes from bulk eviction
const (
	frameCacheMaxSize    = 64
	frameCacheTargetSize = 48 // Target after eviction (75% of max)
)

// PoseKey identifies one rendered frame. Two frames with the same player
// position and heading are pixel-identical, so the key covers the full
// render input for a static level.
type PoseKey struct {
	X, Y    uint16
	Heading uint16
}

// FrameCache provides thread-safe caching of fully rendered frames. A
// standing-still player re-renders the same pose every tick; the cache
// turns those frames into a map lookup. Memory usage is controlled through
// FIFO eviction when the size limit is reached.
type FrameCache struct {
	cache      map[PoseKey][][]raycast.Color
	mutex      sync.RWMutex
	cacheOrder []PoseKey // FIFO order tracking for eviction
}

// NewFrameCache creates an empty frame cache ready for concurrent access.
func NewFrameCache() *FrameCache {
	return &FrameCache{
		cache:      make(map[PoseKey][][]raycast.Color, frameCacheMaxSize),
		cacheOrder: make([]PoseKey, 0, frameCacheMaxSize),
	}
}

// GetOrRender returns the cached frame for key, or runs renderFunc and
// caches its result. Cached frames are shared; callers must treat the
// returned columns as read-only.
func (fc *FrameCache) GetOrRender(key PoseKey, renderFunc func() [][]raycast.Color) [][]raycast.Color {
	// First attempt: read lock allows concurrent hits
	fc.mutex.RLock()
	if frame, exists := fc.cache[key]; exists {
		fc.mutex.RUnlock()
		return frame
	}
	fc.mutex.RUnlock()

	// Cache miss: render outside the lock
	frame := renderFunc()

	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	// Check again in case another goroutine added it while we were rendering
	if cached, exists := fc.cache[key]; exists {
		return cached
	}

	// Proactive eviction: evict before we exceed max size to avoid large
	// batch deletions and the GC spike they cause
	if len(fc.cache) >= frameCacheMaxSize {
		evictCount := len(fc.cacheOrder) - frameCacheTargetSize
		if evictCount > 0 && evictCount <= len(fc.cacheOrder) {
			for i := 0; i < evictCount; i++ {
				delete(fc.cache, fc.cacheOrder[i])
			}
			fc.cacheOrder = fc.cacheOrder[evictCount:]
		}
	}

	fc.cache[key] = frame
	fc.cacheOrder = append(fc.cacheOrder, key)
	return frame
}

// Invalidate drops every cached frame. Call it when the level changes.
func (fc *FrameCache) Invalidate() {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.cache = make(map[PoseKey][][]raycast.Color, frameCacheMaxSize)
	fc.cacheOrder = fc.cacheOrder[:0]
}

// Len reports the number of cached frames.
func (fc *FrameCache) Len() int {
	fc.mutex.RLock()
	defer fc.mutex.RUnlock()
	return len(fc.cache)
}
