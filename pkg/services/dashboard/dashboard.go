package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/tallyweb/backoffice/pkg/models/domain"
	"github.com/tallyweb/backoffice/pkg/services/report"
)

const recentInvoiceCount = 4

// Service aggregates the landing-page figures from the three stores.
type Service struct {
	ledger    report.LedgerReader
	invoices  report.InvoiceReader
	inventory report.InventoryReader
}

func NewService(ledger report.LedgerReader, invoices report.InvoiceReader, inventory report.InventoryReader) *Service {
	return &Service{ledger: ledger, invoices: invoices, inventory: inventory}
}

func (s *Service) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	entries, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("read ledger: %w", err)
	}
	invoices, err := s.invoices.Snapshot(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("read invoices: %w", err)
	}
	items, err := s.inventory.Snapshot(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("read inventory: %w", err)
	}

	summary := domain.DashboardSummary{RecentInvoices: []domain.Invoice{}}
	for _, e := range entries {
		summary.TotalRevenue += e.Credit
	}
	for _, inv := range invoices {
		if inv.Type == domain.InvoiceTypeSales &&
			(inv.Status == domain.InvoiceStatusPending || inv.Status == domain.InvoiceStatusOverdue) {
			summary.OutstandingAmount += inv.Amount
		}
	}
	for _, item := range items {
		summary.InventoryValue += item.StockValue()
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date > invoices[j].Date
	})
	if len(invoices) > recentInvoiceCount {
		invoices = invoices[:recentInvoiceCount]
	}
	summary.RecentInvoices = invoices
	return summary, nil
}
