package report

import "github.com/tallyweb/backoffice/pkg/models/domain"

// filterInvoices compares dates as raw strings; the range is inclusive. This
// only agrees with chronology for YYYY-MM-DD dates (documented precondition).
func filterInvoices(invoices []domain.Invoice, invType domain.InvoiceType, rng DateRange) []domain.Invoice {
	filtered := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Type == invType && inv.Date >= rng.Start && inv.Date <= rng.End {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

func sumAmounts(invoices []domain.Invoice) float64 {
	var total float64
	for _, inv := range invoices {
		total += inv.Amount
	}
	return total
}

func sumVAT(invoices []domain.Invoice) float64 {
	var total float64
	for _, inv := range invoices {
		total += inv.VAT()
	}
	return total
}

// VATSummary totals VAT collected on sales against VAT paid on purchases for
// the period and carries the filtered invoice lists for display.
func VATSummary(invoices []domain.Invoice, rng DateRange) *domain.VATSummaryReport {
	r := &domain.VATSummaryReport{
		SalesInvoices:    []domain.Invoice{},
		PurchaseInvoices: []domain.Invoice{},
	}
	if len(invoices) == 0 {
		r.Message = msgNoInvoiceData
		return r
	}

	r.SalesInvoices = filterInvoices(invoices, domain.InvoiceTypeSales, rng)
	r.PurchaseInvoices = filterInvoices(invoices, domain.InvoiceTypePurchase, rng)
	r.SalesVAT = sumVAT(r.SalesInvoices)
	r.PurchaseVAT = sumVAT(r.PurchaseInvoices)
	r.NetVATPayable = r.SalesVAT - r.PurchaseVAT
	r.TotalSales = sumAmounts(r.SalesInvoices)
	r.TotalPurchases = sumAmounts(r.PurchaseInvoices)
	return r
}

// CorporateTax checks sales revenue for the period against the AED 375,000
// threshold (strictly greater-than) and projects three months ahead from the
// average monthly revenue.
func CorporateTax(invoices []domain.Invoice, rng DateRange) *domain.CorporateTaxReport {
	r := &domain.CorporateTaxReport{
		RevenueByCustomer: domain.NewOrderedMap[float64](),
		MonthlyRevenue:    domain.NewOrderedMap[float64](),
	}
	if len(invoices) == 0 {
		r.Message = msgNoInvoiceData
		return r
	}

	sales := filterInvoices(invoices, domain.InvoiceTypeSales, rng)
	for _, inv := range sales {
		r.TotalRevenue += inv.Amount
		accumulate(r.RevenueByCustomer, inv.Customer, inv.Amount)
		accumulate(r.MonthlyRevenue, monthKey(inv.Date), inv.Amount)
	}

	r.IsEligible = r.TotalRevenue > domain.CorporateTaxThreshold
	if r.IsEligible {
		r.TaxAmount = r.TotalRevenue * domain.CorporateTaxRate
	}

	months := r.MonthlyRevenue.Len()
	if months == 0 {
		months = 1
	}
	r.ProjectedRevenue = r.TotalRevenue / float64(months) * 3
	return r
}

// monthKey is the YYYY-MM prefix of an ISO date string.
func monthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// InvoiceSummary lists invoices of one type for the period, optionally
// narrowed to a single status, with totals and per-customer groups.
func InvoiceSummary(
	invoices []domain.Invoice,
	invType domain.InvoiceType,
	rng DateRange,
	status StatusFilter,
) *domain.InvoiceReport {
	r := &domain.InvoiceReport{
		Invoices:        []domain.Invoice{},
		GroupedInvoices: domain.NewOrderedMap[*domain.InvoiceGroup](),
	}
	if len(invoices) == 0 {
		r.Message = msgNoInvoiceData
		return r
	}

	filtered := filterInvoices(invoices, invType, rng)
	if status != StatusAll {
		kept := filtered[:0]
		for _, inv := range filtered {
			if inv.Status == string(status) {
				kept = append(kept, inv)
			}
		}
		filtered = kept
	}

	for _, inv := range filtered {
		r.TotalAmount += inv.Amount
		r.TotalVAT += inv.VAT()

		group, ok := r.GroupedInvoices.Get(inv.Customer)
		if !ok {
			group = &domain.InvoiceGroup{Invoices: []domain.Invoice{}}
			r.GroupedInvoices.Set(inv.Customer, group)
		}
		group.Invoices = append(group.Invoices, inv)
		group.TotalAmount += inv.Amount
		group.TotalVAT += inv.VAT()
	}
	r.Invoices = filtered
	return r
}
