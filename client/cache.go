package client

import (
	"sync"
	"time"
)

// readCache is a best-effort TTL cache for GET responses, keyed by
// request path and query. Entries expire after the configured window;
// there is no server-driven invalidation.
type readCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	body    []byte
	expires time.Time
}

func newReadCache(ttl time.Duration) *readCache {
	return &readCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (rc *readCache) get(key string) ([]byte, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	entry, ok := rc.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		delete(rc.entries, key)
		return nil, false
	}
	return entry.body, true
}

func (rc *readCache) set(key string, body []byte) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.entries[key] = cacheEntry{
		body:    body,
		expires: time.Now().Add(rc.ttl),
	}
}

func (rc *readCache) clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.entries = make(map[string]cacheEntry)
}
