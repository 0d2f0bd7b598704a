package report

import (
	"strings"
	"time"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

const (
	msgNoAccountingData = "No accounting data available"
	msgNoLedgerForBS    = "No ledger data available to generate Balance Sheet"
	msgNoLedgerForCF    = "No ledger data available to generate Cash Flow Statement"
	msgNoEntriesInRange = "No ledger entries found in the selected date range"
	msgNoInvoiceData    = "No invoice data available"
	msgNoInventoryData  = "No inventory data available"
)

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// filterEntriesByDate keeps entries whose parsed date falls inside the range,
// preserving chronological insertion order. Unparsable dates — on the range or
// on an entry — fail the comparison and drop out, they do not error.
func filterEntriesByDate(entries []domain.LedgerEntry, rng DateRange) []domain.LedgerEntry {
	filtered := make([]domain.LedgerEntry, 0, len(entries))
	start, okStart := parseDate(rng.Start)
	end, okEnd := parseDate(rng.End)
	if !okStart || !okEnd {
		return filtered
	}
	for _, e := range entries {
		t, ok := parseDate(e.Date)
		if !ok {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// descriptionKey is the grouping key for P&L category buckets. The entry's
// description doubles as the category; the stored Category field is not
// consulted here.
func descriptionKey(e domain.LedgerEntry) string {
	if e.Description == "" {
		return "Uncategorized"
	}
	return e.Description
}

func accumulate(m *domain.OrderedMap[float64], key string, amount float64) {
	current, _ := m.Get(key)
	m.Set(key, current+amount)
}

// ProfitLoss sums credits into income and debits into expenses over the date
// window, bucketed by entry description. Only a completely empty ledger gets
// the no-data message; an empty window yields a zero-valued statement.
func ProfitLoss(entries []domain.LedgerEntry, rng DateRange) *domain.ProfitLossReport {
	r := &domain.ProfitLossReport{
		IncomeByCategory:   domain.NewOrderedMap[float64](),
		ExpensesByCategory: domain.NewOrderedMap[float64](),
		Transactions:       []domain.LedgerEntry{},
	}
	if len(entries) == 0 {
		r.Message = msgNoAccountingData
		return r
	}

	filtered := filterEntriesByDate(entries, rng)
	for _, e := range filtered {
		r.Income += e.Credit
		r.Expenses += e.Debit
		if e.Credit > 0 {
			accumulate(r.IncomeByCategory, descriptionKey(e), e.Credit)
		}
		if e.Debit > 0 {
			accumulate(r.ExpensesByCategory, descriptionKey(e), e.Debit)
		}
	}
	r.NetProfit = r.Income - r.Expenses
	r.Transactions = filtered
	return r
}

// BalanceSheet reads cash from the last in-range entry's stored balance and
// values receivables/payables from pending invoices. Inventory is valued over
// the whole stock regardless of the date window.
//
// TODO(product): the receivable/payable filters compare status against
// lowercase "pending" while stored statuses are capitalized, so both always
// come out zero. Kept as-is pending sign-off; see the regression test.
func BalanceSheet(
	entries []domain.LedgerEntry,
	invoices []domain.Invoice,
	items []domain.InventoryItem,
	rng DateRange,
) *domain.BalanceSheetReport {
	r := &domain.BalanceSheetReport{Date: rng.End}
	if len(entries) == 0 {
		r.Message = msgNoLedgerForBS
		return r
	}

	filtered := filterEntriesByDate(entries, rng)
	if len(filtered) == 0 {
		r.Message = msgNoEntriesInRange
		return r
	}

	r.Assets.Cash = filtered[len(filtered)-1].Balance
	for _, inv := range invoices {
		if inv.Status != "pending" {
			continue
		}
		switch inv.Type {
		case domain.InvoiceTypeSales:
			r.Assets.AccountsReceivable += inv.Amount
		case domain.InvoiceTypePurchase:
			r.Liabilities.AccountsPayable += inv.Amount
		}
	}
	for _, item := range items {
		r.Assets.Inventory += item.StockValue()
	}

	r.TotalAssets = r.Assets.Cash + r.Assets.AccountsReceivable + r.Assets.Inventory
	r.TotalLiabilities = r.Liabilities.AccountsPayable
	r.Equity = r.TotalAssets - r.TotalLiabilities
	return r
}

func matchesAny(description string, keywords ...string) bool {
	d := strings.ToLower(description)
	for _, k := range keywords {
		if strings.Contains(d, k) {
			return true
		}
	}
	return false
}

// CashFlow classifies in-range entries into operating, investing and financing
// buckets by keyword match on the description. An entry may land in several
// buckets or none; the classification is substring-based, not exclusive.
func CashFlow(entries []domain.LedgerEntry, rng DateRange) *domain.CashFlowReport {
	r := &domain.CashFlowReport{Date: rng.End}
	if len(entries) == 0 {
		r.Message = msgNoLedgerForCF
		return r
	}

	filtered := filterEntriesByDate(entries, rng)
	if len(filtered) == 0 {
		r.Message = msgNoEntriesInRange
		return r
	}

	for _, e := range filtered {
		if e.Credit > 0 {
			if matchesAny(e.Description, "sales") {
				r.OperatingActivities.Inflows += e.Credit
			}
			if matchesAny(e.Description, "asset sale", "investment return") {
				r.InvestingActivities.Inflows += e.Credit
			}
			if matchesAny(e.Description, "loan", "capital") {
				r.FinancingActivities.Inflows += e.Credit
			}
		}
		if e.Debit > 0 {
			if matchesAny(e.Description, "expense", "purchase", "salary", "rent") {
				r.OperatingActivities.Outflows += e.Debit
			}
			if matchesAny(e.Description, "asset purchase", "investment") {
				r.InvestingActivities.Outflows += e.Debit
			}
			if matchesAny(e.Description, "loan repayment", "dividend") {
				r.FinancingActivities.Outflows += e.Debit
			}
		}
	}

	r.NetOperatingCashFlow = r.OperatingActivities.Net()
	r.NetInvestingCashFlow = r.InvestingActivities.Net()
	r.NetFinancingCashFlow = r.FinancingActivities.Net()
	r.NetCashFlow = r.NetOperatingCashFlow + r.NetInvestingCashFlow + r.NetFinancingCashFlow

	// The first entry's stored balance already includes its own movement;
	// back it out to get the opening position.
	first := filtered[0]
	r.BeginningCashBalance = first.Balance - first.Credit + first.Debit
	r.EndingCashBalance = filtered[len(filtered)-1].Balance
	return r
}
