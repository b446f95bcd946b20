package cache

import (
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Manager handles in-memory caching of lookup responses.
// It is safe for concurrent use.
type Manager struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewManager creates a cache manager whose entries expire after ttl.
// Expired entries are purged every 2*ttl.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		panic("cache ttl must be positive")
	}
	return &Manager{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// TTL returns the lifetime of new entries.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Get retrieves a cache entry by key.
// Returns ErrCacheMiss if the key doesn't exist or the entry has expired.
func (m *Manager) Get(key Key) (*Entry, error) {
	v, ok := m.store.Get(key.String())
	if !ok {
		lookupMisses.Inc()
		return nil, ErrCacheMiss
	}

	entry, ok := v.(*Entry)
	if !ok {
		m.Delete(key)
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidEntry, v)
	}

	if entry.Negative() {
		lookupHits.WithLabelValues("negative").Inc()
	} else {
		lookupHits.WithLabelValues("positive").Inc()
	}
	return entry, nil
}

// Set stores a cache entry for the manager's TTL. Entries whose status is
// not Cacheable are rejected.
func (m *Manager) Set(key Key, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}
	if !Cacheable(entry.StatusCode) {
		return fmt.Errorf("%w: status %d is not cacheable", ErrInvalidEntry, entry.StatusCode)
	}

	m.store.SetDefault(key.String(), entry)
	lookupEntries.Set(float64(m.store.ItemCount()))
	return nil
}

// Delete removes a cache entry.
func (m *Manager) Delete(key Key) {
	m.store.Delete(key.String())
	lookupEntries.Set(float64(m.store.ItemCount()))
}

// Flush removes all entries.
func (m *Manager) Flush() {
	m.store.Flush()
	lookupEntries.Set(0)
}

// Len returns the number of entries held, including expired entries that
// have not been purged yet.
func (m *Manager) Len() int {
	return m.store.ItemCount()
}
