// package framecache provides the keyed store of rendered snapshot surfaces.
// A cache lives and dies with its owning session; there is no eviction, only
// explicit deletion.
package framecache

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"
)

// Entry is one stored snapshot. Immutable once stored; replaced only by an
// explicit re-Set under the same id.
type Entry struct {
	// ID is the entry's key, caller-supplied or generated via CreateID.
	ID string

	// Payload is the captured surface.
	Payload *image.RGBA

	// CreatedAt is the time the entry was stored.
	CreatedAt time.Time
}

// Cache is a keyed snapshot store. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	counter atomic.Uint64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// CreateID generates a key unique within this cache: the prefix joined with a
// monotonically incremented counter shared across all prefixes.
//
// Parameters:
//   - prefix: a human-readable key prefix
//
// Returns:
//   - string: the generated key
func (c *Cache) CreateID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, c.counter.Add(1))
}

// Set stores payload under id, replacing any previous entry.
//
// Parameters:
//   - id: the entry key
//   - payload: the surface to store
//
// Returns:
//   - Entry: the stored entry, including its creation time
func (c *Cache) Set(id string, payload *image.RGBA) Entry {
	entry := Entry{
		ID:        id,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	c.mu.Lock()
	c.entries[id] = entry
	c.mu.Unlock()
	return entry
}

// Get returns the entry stored under id.
//
// Returns:
//   - Entry: the stored entry (zero value when absent)
//   - bool: true if the entry exists
func (c *Cache) Get(id string) (Entry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	return entry, ok
}

// Delete removes the entry stored under id, if any.
func (c *Cache) Delete(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// Clear removes every entry. Generated ids keep incrementing afterward.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
