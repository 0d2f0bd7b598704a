package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// LedgerStore holds the ordered sequence of ledger entries. Reports read a
// snapshot; the insertion order is chronological and must be preserved, since
// the balance sheet and cash flow rely on first/last entry balances.
type LedgerStore struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func NewLedgerStore(seed []domain.LedgerEntry) *LedgerStore {
	s := &LedgerStore{}
	s.entries = append(s.entries, seed...)
	return s
}

func (s *LedgerStore) Snapshot(_ context.Context) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LedgerEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Add appends an entry. The running balance is derived from the current net
// position (sum of credits minus debits), not from the last stored balance.
func (s *LedgerStore) Add(_ context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	if entry.Debit == 0 && entry.Credit == 0 {
		return domain.LedgerEntry{}, fmt.Errorf("ledger entry needs a debit or credit amount")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Category == "" {
		entry.Category = "General"
	}
	entry.Balance = s.netBalance() + entry.Credit - entry.Debit
	s.entries = append(s.entries, entry)
	return entry, nil
}

func (s *LedgerStore) Update(_ context.Context, id string, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			entry.ID = id
			s.entries[i] = entry
			return entry, nil
		}
	}
	return domain.LedgerEntry{}, ErrNotFound
}

func (s *LedgerStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Balance returns the current net position.
func (s *LedgerStore) Balance(_ context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.netBalance(), nil
}

func (s *LedgerStore) netBalance() float64 {
	var total float64
	for _, e := range s.entries {
		total += e.Credit - e.Debit
	}
	return total
}
