package storage

import (
	"fmt"
	"sync"
	"time"

	"asset-scout/models"
)

// MemoryStore is an in-process AssetStore for offline runs and tests. It
// enforces the same constraints as the assets table (required fields,
// positive price) and the same all-or-nothing batch semantics.
type MemoryStore struct {
	mu     sync.Mutex
	assets []models.StoredAsset
	nextID int64
	closed bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// InsertBatch inserts all listings or none. A constraint violation anywhere
// in the batch leaves the store unchanged.
func (ms *MemoryStore) InsertBatch(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.closed {
		return fmt.Errorf("memory: store is closed")
	}

	// Validate the whole batch before mutating anything.
	for i, l := range listings {
		if l.Title == "" || l.Link == "" {
			return fmt.Errorf("memory: listing %d violates NOT NULL constraint", i)
		}
		if l.Price <= 0 {
			return fmt.Errorf("memory: listing %d has non-positive price %.2f", i, l.Price)
		}
	}

	now := time.Now()
	for _, l := range listings {
		ms.assets = append(ms.assets, models.StoredAsset{
			ID:        ms.nextID,
			Title:     l.Title,
			Price:     l.Price,
			Link:      l.Link,
			DateAdded: now,
		})
		ms.nextID++
	}
	return nil
}

// Snapshot returns all stored assets in insertion order.
func (ms *MemoryStore) Snapshot() ([]models.StoredAsset, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]models.StoredAsset, len(ms.assets))
	copy(out, ms.assets)
	return out, nil
}

// Close marks the store closed. Safe to call more than once.
func (ms *MemoryStore) Close() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.closed = true
	return nil
}
