package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// InventoryStore holds the stock items. Writes stamp LastUpdated so the stock
// movement report can show when an item last changed.
type InventoryStore struct {
	mu     sync.RWMutex
	items  []domain.InventoryItem
	nextID int
	now    func() time.Time
}

func NewInventoryStore(seed []domain.InventoryItem) *InventoryStore {
	s := &InventoryStore{nextID: 1, now: time.Now}
	for _, item := range seed {
		if item.ID >= s.nextID {
			s.nextID = item.ID + 1
		}
		s.items = append(s.items, item)
	}
	return s
}

func (s *InventoryStore) Snapshot(_ context.Context) ([]domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.InventoryItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *InventoryStore) Add(_ context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == 0 {
		item.ID = s.nextID
	}
	if item.ID >= s.nextID {
		s.nextID = item.ID + 1
	}
	item.LastUpdated = s.now().UTC().Format(time.RFC3339)
	s.items = append(s.items, item)
	return item, nil
}

func (s *InventoryStore) Update(_ context.Context, id int, item domain.InventoryItem) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item.ID = id
			item.LastUpdated = s.now().UTC().Format(time.RFC3339)
			s.items[i] = item
			return item, nil
		}
	}
	return domain.InventoryItem{}, ErrNotFound
}

func (s *InventoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
