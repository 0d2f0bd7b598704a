package memory

import (
	"context"
	"sync"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// InvoiceStore holds sales and purchase invoices. Amount is recomputed from
// the line items on every write so the stored total can never drift.
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices []domain.Invoice
	nextID   int
}

func NewInvoiceStore(seed []domain.Invoice) *InvoiceStore {
	s := &InvoiceStore{nextID: 1}
	for _, inv := range seed {
		if inv.ID >= s.nextID {
			s.nextID = inv.ID + 1
		}
		s.invoices = append(s.invoices, inv)
	}
	return s
}

func (s *InvoiceStore) Snapshot(_ context.Context) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out, nil
}

func (s *InvoiceStore) Add(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inv.ID == 0 {
		inv.ID = s.nextID
	}
	if inv.ID >= s.nextID {
		s.nextID = inv.ID + 1
	}
	inv.Amount = itemsTotal(inv.Items)
	s.invoices = append(s.invoices, inv)
	return inv, nil
}

func (s *InvoiceStore) Update(_ context.Context, id int, inv domain.Invoice) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID == id {
			inv.ID = id
			inv.Amount = itemsTotal(inv.Items)
			s.invoices[i] = inv
			return inv, nil
		}
	}
	return domain.Invoice{}, ErrNotFound
}

func (s *InvoiceStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func itemsTotal(items []domain.InvoiceItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount()
	}
	return total
}
