package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// DateRange bounds a report, inclusive on both ends, as YYYY-MM-DD strings.
// Ledger-based reports compare parsed timestamps; invoice-based reports
// compare the raw strings, which agree with chronology only for strict
// YYYY-MM-DD formatting. Both behaviors are deliberate.
type DateRange struct {
	Start string
	End   string
}

type StatusFilter string

const (
	StatusAll     StatusFilter = "All"
	StatusPaid    StatusFilter = "Paid"
	StatusPending StatusFilter = "Pending"
	StatusOverdue StatusFilter = "Overdue"
)

func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case StatusAll, StatusPaid, StatusPending, StatusOverdue:
		return StatusFilter(s), nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

type LedgerReader interface {
	Snapshot(ctx context.Context) ([]domain.LedgerEntry, error)
}

type InvoiceReader interface {
	Snapshot(ctx context.Context) ([]domain.Invoice, error)
}

type InventoryReader interface {
	Snapshot(ctx context.Context) ([]domain.InventoryItem, error)
}

// Service generates report payloads from store snapshots. Each call reads the
// stores once and hands the copies to a pure aggregation function; nothing is
// cached and nothing is written back.
type Service struct {
	ledger    LedgerReader
	invoices  InvoiceReader
	inventory InventoryReader
	now       func() time.Time
}

func NewService(ledger LedgerReader, invoices InvoiceReader, inventory InventoryReader) *Service {
	return &Service{
		ledger:    ledger,
		invoices:  invoices,
		inventory: inventory,
		now:       time.Now,
	}
}

func (s *Service) Generate(
	ctx context.Context,
	reportType domain.ReportType,
	rng DateRange,
	status StatusFilter,
) (domain.ReportPayload, error) {
	switch reportType {
	case domain.ReportProfitLoss:
		entries, err := s.ledger.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read ledger: %w", err)
		}
		return ProfitLoss(entries, rng), nil

	case domain.ReportBalanceSheet:
		entries, err := s.ledger.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read ledger: %w", err)
		}
		invoices, err := s.invoices.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read invoices: %w", err)
		}
		items, err := s.inventory.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read inventory: %w", err)
		}
		return BalanceSheet(entries, invoices, items, rng), nil

	case domain.ReportCashFlow:
		entries, err := s.ledger.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read ledger: %w", err)
		}
		return CashFlow(entries, rng), nil

	case domain.ReportVATSummary:
		invoices, err := s.invoices.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read invoices: %w", err)
		}
		return VATSummary(invoices, rng), nil

	case domain.ReportCorporateTax:
		invoices, err := s.invoices.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read invoices: %w", err)
		}
		return CorporateTax(invoices, rng), nil

	case domain.ReportSalesInvoice:
		invoices, err := s.invoices.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read invoices: %w", err)
		}
		return InvoiceSummary(invoices, domain.InvoiceTypeSales, rng, status), nil

	case domain.ReportPurchaseInvoice:
		invoices, err := s.invoices.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read invoices: %w", err)
		}
		return InvoiceSummary(invoices, domain.InvoiceTypePurchase, rng, status), nil

	case domain.ReportStockSummary:
		items, err := s.inventory.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read inventory: %w", err)
		}
		return StockSummary(items), nil

	case domain.ReportStockMovement:
		items, err := s.inventory.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("read inventory: %w", err)
		}
		return StockMovement(items, s.now()), nil
	}

	return nil, fmt.Errorf("unknown report type %q", reportType)
}
