package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyweb/backoffice/pkg/models/domain"
	"github.com/tallyweb/backoffice/pkg/services/report"
)

var testOpts = Options{
	StartDate: "2023-01-01",
	EndDate:   "2023-12-31",
	Status:    "All",
	Now:       time.Date(2023, 10, 20, 12, 0, 0, 0, time.UTC),
}

func testRange() report.DateRange {
	return report.DateRange{Start: testOpts.StartDate, End: testOpts.EndDate}
}

func testLedger() []domain.LedgerEntry {
	return []domain.LedgerEntry{
		{ID: "1", Date: "2023-10-01", Description: "Initial Investment", Credit: 100000, Balance: 100000},
		{ID: "2", Date: "2023-10-05", Description: "Office Rent", Debit: 15000, Balance: 85000},
		{ID: "3", Date: "2023-10-10", Description: "Sales Revenue", Credit: 35000, Balance: 120000},
	}
}

func testInvoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: 1, Number: "INV-001", Customer: "ABC Corp", Date: "2023-10-01", Amount: 15000, Status: domain.InvoiceStatusPaid, TaxRate: 5, Type: domain.InvoiceTypeSales},
		{ID: 2, Number: "INV-002", Customer: "XYZ Ltd", Date: "2023-10-15", Amount: 20000, Status: domain.InvoiceStatusPending, TaxRate: 5, Type: domain.InvoiceTypeSales},
		{ID: 3, Number: "INV-003", Customer: "ABC Corp", Date: "2023-11-01", Amount: 10000, Status: domain.InvoiceStatusOverdue, TaxRate: 5, Type: domain.InvoiceTypeSales},
	}
}

func testInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Product A", SKU: "SKU001", Category: "Electronics", Quantity: 50, Price: 5000, ReorderLevel: 10},
		{ID: 2, Name: "Product B", SKU: "SKU002", Category: "Furniture", Quantity: 30, Price: 3000, ReorderLevel: 40},
	}
}

func TestCSV_ProfitLoss(t *testing.T) {
	payload := report.ProfitLoss(testLedger(), testRange())

	got, err := CSV(domain.ReportProfitLoss, payload, testOpts)
	require.NoError(t, err)

	want := "Profit & Loss Statement\n" +
		"Period: 2023-01-01 to 2023-12-31\n\n" +
		"Summary\n" +
		"Total Income,135000\n" +
		"Total Expenses,15000\n" +
		"Net Profit/Loss,120000\n\n" +
		"\nIncome by Category\n" +
		"Category,Amount\n" +
		"Initial Investment,100000\n" +
		"Sales Revenue,35000\n" +
		"\nExpenses by Category\n" +
		"Category,Amount\n" +
		"Office Rent,15000\n"
	assert.Equal(t, want, got)
}

func TestCSV_BalanceSheet(t *testing.T) {
	payload := report.BalanceSheet(testLedger(), nil, testInventory()[:1], testRange())

	got, err := CSV(domain.ReportBalanceSheet, payload, testOpts)
	require.NoError(t, err)

	want := "Balance Sheet\n" +
		"As of: 2023-12-31\n\n" +
		"Assets\n" +
		"Category,Amount\n" +
		"Cash,120000\n" +
		"Accounts Receivable,0\n" +
		"Inventory,250000\n" +
		"Total Assets,370000\n\n" +
		"Liabilities\n" +
		"Category,Amount\n" +
		"Accounts Payable,0\n" +
		"Total Liabilities,0\n\n" +
		"Equity\n" +
		"Total Equity,370000\n"
	assert.Equal(t, want, got)
}

func TestCSV_CashFlowHasNoLayout(t *testing.T) {
	payload := report.CashFlow(testLedger(), testRange())

	got, err := CSV(domain.ReportCashFlow, payload, testOpts)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCSV_VATSummary(t *testing.T) {
	invoices := append(testInvoices(),
		domain.Invoice{ID: 4, Number: "PINV-001", Customer: "Supplier One", Date: "2023-10-05", Amount: 8000, Status: domain.InvoiceStatusPaid, TaxRate: 5, Type: domain.InvoiceTypePurchase})
	payload := report.VATSummary(invoices, testRange())

	got, err := CSV(domain.ReportVATSummary, payload, testOpts)
	require.NoError(t, err)

	want := "VAT Summary Report\n" +
		"Period: 2023-01-01 to 2023-12-31\n\n" +
		"Category,Net Amount,VAT Amount,Total Amount\n" +
		"Sales,45000,2250,47250\n" +
		"Purchases,8000,400,8400\n" +
		"\nNet VAT Payable/Refundable,1850\n"
	assert.Equal(t, want, got)
}

func TestCSV_CorporateTax(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: 1, Customer: "ABC Corp", Date: "2023-10-01", Amount: 400000, Type: domain.InvoiceTypeSales},
	}
	payload := report.CorporateTax(invoices, testRange())

	got, err := CSV(domain.ReportCorporateTax, payload, testOpts)
	require.NoError(t, err)

	want := "Corporate Tax Eligibility Report\n" +
		"Period: 2023-01-01 to 2023-12-31\n\n" +
		"Total Revenue,400000\n" +
		"Tax Eligibility Threshold,375000\n" +
		"Eligible for Corporate Tax,Yes\n" +
		"Estimated Tax Amount (9%),36000\n\n" +
		"\nRevenue by Customer\n" +
		"Customer,Revenue\n" +
		"ABC Corp,400000\n" +
		"\nMonthly Revenue Trend\n" +
		"Month,Revenue\n" +
		"2023-10,400000\n" +
		"\nProjected Revenue (3 months),1200000\n"
	assert.Equal(t, want, got)
}

func TestCSV_SalesInvoice(t *testing.T) {
	payload := report.InvoiceSummary(testInvoices(), domain.InvoiceTypeSales, testRange(), report.StatusAll)

	got, err := CSV(domain.ReportSalesInvoice, payload, testOpts)
	require.NoError(t, err)

	want := "Sales Invoice Report\n" +
		"Period: 2023-01-01 to 2023-12-31\n" +
		"Status Filter: All\n\n" +
		"Summary\n" +
		"Total Invoices,3\n" +
		"Total Amount,45000\n" +
		"Total VAT,2250\n\n" +
		"Customer/Vendor,Invoice Number,Date,Amount,VAT Amount,Total Amount,Status\n" +
		"ABC Corp,INV-001,2023-10-01,15000,750,15750,Paid\n" +
		"ABC Corp,INV-003,2023-11-01,10000,500,10500,Overdue\n" +
		"XYZ Ltd,INV-002,2023-10-15,20000,1000,21000,Pending\n" +
		"\nSubtotals by Customer/Vendor\n" +
		"Customer/Vendor,Total Amount,Total VAT\n" +
		"ABC Corp,25000,1250\n" +
		"XYZ Ltd,20000,1000\n"
	assert.Equal(t, want, got)
}

func TestCSV_StockSummary(t *testing.T) {
	payload := report.StockSummary(testInventory())

	got, err := CSV(domain.ReportStockSummary, payload, testOpts)
	require.NoError(t, err)

	want := "Inventory Stock Summary Report\n" +
		"Date: 2023-10-20\n\n" +
		"Summary\n" +
		"Total Products,2\n" +
		"Total Stock Value,340000\n" +
		"Low Stock Items,1\n\n" +
		"Product Name,SKU,Category,Quantity,Unit Price,Total Value\n" +
		"Product A,SKU001,Electronics,50,5000,250000\n" +
		"Product B,SKU002,Furniture,30,3000,90000\n" +
		"\nCategory Breakdown\n" +
		"Category,Total Products,Total Quantity,Total Value\n" +
		"Electronics,1,50,250000\n" +
		"Furniture,1,30,90000\n"
	assert.Equal(t, want, got)
}

func TestCSV_StockMovement(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: 1, Name: "Product A", SKU: "SKU001", Category: "Electronics", Quantity: 50, Price: 5000, ReorderLevel: 10,
			IncomingStock: 20, OutgoingStock: 5, LastUpdated: "2023-10-18T09:00:00Z"},
		{ID: 2, Name: "Product B", SKU: "SKU002", Category: "Electronics", Quantity: 15, Price: 3000,
			OutgoingStock: 10},
	}
	payload := report.StockMovement(items, testOpts.Now)

	got, err := CSV(domain.ReportStockMovement, payload, testOpts)
	require.NoError(t, err)

	want := "Inventory Stock Movement Report\n" +
		"Date: 2023-10-20\n\n" +
		"Summary\n" +
		"Total Products,2\n" +
		"Low Stock Alerts,1\n\n" +
		"Product Name,SKU,Category,Current Quantity,Incoming Stock,Outgoing Stock,Net Movement,Last Updated\n" +
		"Product A,SKU001,Electronics,50,20,5,15,2023-10-18T09:00:00Z\n" +
		"Product B,SKU002,Electronics,15,0,10,-10,2023-10-20T12:00:00Z\n" +
		"\nCategory Movement Breakdown\n" +
		"Category,Total Products,Net Movement\n" +
		"Electronics,2,5\n"
	assert.Equal(t, want, got)
}

func TestCSV_PayloadMismatch(t *testing.T) {
	payload := report.StockSummary(testInventory())

	_, err := CSV(domain.ReportProfitLoss, payload, testOpts)
	assert.Error(t, err)
}

func TestCSV_UnknownReportType(t *testing.T) {
	_, err := CSV(domain.ReportType("bogus"), report.StockSummary(nil), testOpts)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	got := Filename(domain.ReportProfitLoss, "2023-01-01", "2023-12-31")
	assert.Equal(t, "profitLoss_2023-01-01_to_2023-12-31.csv", got)
}

func TestNum(t *testing.T) {
	assert.Equal(t, "120000", num(120000))
	assert.Equal(t, "2250.5", num(2250.5))
	assert.Equal(t, "0", num(0))
}
