package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

func testInvoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: 1, Number: "INV-001", Customer: "ABC Corp", Date: "2023-10-01", Amount: 15000, Status: domain.InvoiceStatusPaid, TaxRate: 5, Type: domain.InvoiceTypeSales},
		{ID: 2, Number: "INV-002", Customer: "XYZ Ltd", Date: "2023-10-15", Amount: 20000, Status: domain.InvoiceStatusPending, TaxRate: 5, Type: domain.InvoiceTypeSales},
		{ID: 3, Number: "INV-003", Customer: "ABC Corp", Date: "2023-11-01", Amount: 10000, Status: domain.InvoiceStatusOverdue, TaxRate: 5, Type: domain.InvoiceTypeSales},
		{ID: 4, Number: "PINV-001", Customer: "Supplier One", Date: "2023-10-05", Amount: 8000, Status: domain.InvoiceStatusPaid, TaxRate: 5, Type: domain.InvoiceTypePurchase},
	}
}

func TestVATSummary(t *testing.T) {
	r := VATSummary(testInvoices(), fullYear())

	assert.Empty(t, r.Message)
	assert.Equal(t, 45000.0, r.TotalSales)
	assert.Equal(t, 8000.0, r.TotalPurchases)
	assert.Equal(t, 2250.0, r.SalesVAT)
	assert.Equal(t, 400.0, r.PurchaseVAT)
	assert.Equal(t, 1850.0, r.NetVATPayable)
	assert.Len(t, r.SalesInvoices, 3)
	assert.Len(t, r.PurchaseInvoices, 1)
}

func TestVATSummary_NoData(t *testing.T) {
	r := VATSummary(nil, fullYear())
	assert.Equal(t, "No invoice data available", r.Message)
	assert.NotNil(t, r.SalesInvoices)
	assert.NotNil(t, r.PurchaseInvoices)
}

func TestCorporateTax(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		wantEligible bool
		wantTax      float64
	}{
		{name: "below threshold", amount: 100000, wantEligible: false, wantTax: 0},
		{name: "exactly at threshold", amount: 375000, wantEligible: false, wantTax: 0},
		{name: "above threshold", amount: 400000, wantEligible: true, wantTax: 36000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			invoices := []domain.Invoice{
				{ID: 1, Customer: "ABC Corp", Date: "2023-10-01", Amount: tc.amount, Type: domain.InvoiceTypeSales},
			}

			r := CorporateTax(invoices, fullYear())

			assert.Equal(t, tc.amount, r.TotalRevenue)
			assert.Equal(t, tc.wantEligible, r.IsEligible)
			assert.Equal(t, tc.wantTax, r.TaxAmount)
		})
	}
}

func TestCorporateTax_Breakdowns(t *testing.T) {
	r := CorporateTax(testInvoices(), fullYear())

	assert.Equal(t, 45000.0, r.TotalRevenue)
	assert.False(t, r.IsEligible)

	assert.Equal(t, []string{"ABC Corp", "XYZ Ltd"}, r.RevenueByCustomer.Keys())
	abc, ok := r.RevenueByCustomer.Get("ABC Corp")
	require.True(t, ok)
	assert.Equal(t, 25000.0, abc)

	assert.Equal(t, []string{"2023-10", "2023-11"}, r.MonthlyRevenue.Keys())
	oct, ok := r.MonthlyRevenue.Get("2023-10")
	require.True(t, ok)
	assert.Equal(t, 35000.0, oct)

	// Average monthly revenue projected three months ahead.
	assert.InDelta(t, 45000.0/2*3, r.ProjectedRevenue, 1e-9)
}

func TestCorporateTax_NoSalesInWindow(t *testing.T) {
	r := CorporateTax(testInvoices(), DateRange{Start: "2022-01-01", End: "2022-12-31"})

	// Projection divides by one month when no monthly buckets exist.
	assert.Empty(t, r.Message)
	assert.Equal(t, 0.0, r.TotalRevenue)
	assert.Equal(t, 0.0, r.ProjectedRevenue)
}

func TestInvoiceSummary(t *testing.T) {
	r := InvoiceSummary(testInvoices(), domain.InvoiceTypeSales, fullYear(), StatusAll)

	assert.Empty(t, r.Message)
	assert.Len(t, r.Invoices, 3)
	assert.Equal(t, 45000.0, r.TotalAmount)
	assert.Equal(t, 2250.0, r.TotalVAT)

	assert.Equal(t, []string{"ABC Corp", "XYZ Ltd"}, r.GroupedInvoices.Keys())
	group, ok := r.GroupedInvoices.Get("ABC Corp")
	require.True(t, ok)
	assert.Len(t, group.Invoices, 2)
	assert.Equal(t, 25000.0, group.TotalAmount)
	assert.Equal(t, 1250.0, group.TotalVAT)
}

func TestInvoiceSummary_StatusFilter(t *testing.T) {
	r := InvoiceSummary(testInvoices(), domain.InvoiceTypeSales, fullYear(), StatusPaid)

	require.Len(t, r.Invoices, 1)
	assert.Equal(t, "INV-001", r.Invoices[0].Number)
	assert.Equal(t, 15000.0, r.TotalAmount)
}

func TestInvoiceSummary_DateRangeIsInclusive(t *testing.T) {
	r := InvoiceSummary(testInvoices(), domain.InvoiceTypeSales, DateRange{Start: "2023-10-01", End: "2023-10-15"}, StatusAll)

	require.Len(t, r.Invoices, 2)
	assert.Equal(t, "INV-001", r.Invoices[0].Number)
	assert.Equal(t, "INV-002", r.Invoices[1].Number)
}

func TestParseStatusFilter(t *testing.T) {
	got, err := ParseStatusFilter("Paid")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, got)

	// Casing matters: stored statuses are capitalized.
	_, err = ParseStatusFilter("paid")
	assert.Error(t, err)
}
