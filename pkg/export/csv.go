// Package export serializes report payloads into the spreadsheet-importable
// CSV layouts the product has always produced. Layouts are hand-authored per
// report type; consumers diff exported files, so row order, section headers
// and blank-line separators are part of the contract.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// Options carries the report parameters echoed into CSV headers. Now stamps
// the date-range-agnostic stock reports; the zero value means time.Now.
type Options struct {
	StartDate string
	EndDate   string
	Status    string
	Now       time.Time
}

func (o Options) today() string {
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}
	return now.UTC().Format("2006-01-02")
}

// Filename returns the download name for an exported report.
func Filename(t domain.ReportType, startDate, endDate string) string {
	return fmt.Sprintf("%s_%s_to_%s.csv", t, startDate, endDate)
}

// CSV renders the payload for the given report type. Numbers are plain
// decimals with no currency symbol or thousands separators. The cash flow
// statement has no CSV layout; exporting it yields an empty document.
func CSV(t domain.ReportType, payload domain.ReportPayload, opts Options) (string, error) {
	switch t {
	case domain.ReportProfitLoss:
		p, ok := payload.(*domain.ProfitLossReport)
		if !ok {
			return "", payloadMismatch(t, payload)
		}
		return profitLossCSV(p, opts), nil
	case domain.ReportBalanceSheet:
		p, ok := payload.(*domain.BalanceSheetReport)
		if !ok {
			return "", payloadMismatch(t, payload)
		}
		return balanceSheetCSV(p), nil
	case domain.ReportCashFlow:
		if _, ok := payload.(*domain.CashFlowReport); !ok {
			return "", payloadMismatch(t, payload)
		}
		return "", nil
	case domain.ReportVATSummary:
		p, ok := payload.(*domain.VATSummaryReport)
		if !ok {
			return "", payloadMismatch(t, payload)
		}
		return vatSummaryCSV(p, opts), nil
	case domain.ReportCorporateTax:
		p, ok := payload.(*domain.CorporateTaxReport)
		if !ok {
			return "", payloadMismatch(t, payload)
		}
		return corporateTaxCSV(p, opts), nil
	case domain.ReportSalesInvoice, domain.ReportPurchaseInvoice:
		p, ok := payload.(*domain.InvoiceReport)
		if !ok {
			return "", payloadMismatch(t, payload)
		}
		return invoiceCSV(t, p, opts), nil
	case domain.ReportStockSummary:
		p, ok := payload.(*domain.StockSummaryReport)
		if !ok {
			return "", payloadMismatch(t, payload)
		}
		return stockSummaryCSV(p, opts), nil
	case domain.ReportStockMovement:
		p, ok := payload.(*domain.StockMovementReport)
		if !ok {
			return "", payloadMismatch(t, payload)
		}
		return stockMovementCSV(p, opts), nil
	}
	return "", fmt.Errorf("unknown report type %q", t)
}

func payloadMismatch(t domain.ReportType, payload domain.ReportPayload) error {
	return fmt.Errorf("payload %T does not match report type %q", payload, t)
}

// num formats like a JS template literal: shortest decimal that round-trips.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func profitLossCSV(p *domain.ProfitLossReport, opts Options) string {
	var b strings.Builder
	b.WriteString("Profit & Loss Statement\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", opts.StartDate, opts.EndDate)
	b.WriteString("Summary\n")
	fmt.Fprintf(&b, "Total Income,%s\n", num(p.Income))
	fmt.Fprintf(&b, "Total Expenses,%s\n", num(p.Expenses))
	fmt.Fprintf(&b, "Net Profit/Loss,%s\n\n", num(p.NetProfit))

	b.WriteString("\nIncome by Category\n")
	b.WriteString("Category,Amount\n")
	for _, category := range p.IncomeByCategory.Keys() {
		amount, _ := p.IncomeByCategory.Get(category)
		fmt.Fprintf(&b, "%s,%s\n", category, num(amount))
	}

	b.WriteString("\nExpenses by Category\n")
	b.WriteString("Category,Amount\n")
	for _, category := range p.ExpensesByCategory.Keys() {
		amount, _ := p.ExpensesByCategory.Get(category)
		fmt.Fprintf(&b, "%s,%s\n", category, num(amount))
	}
	return b.String()
}

func balanceSheetCSV(p *domain.BalanceSheetReport) string {
	var b strings.Builder
	b.WriteString("Balance Sheet\n")
	fmt.Fprintf(&b, "As of: %s\n\n", p.Date)

	b.WriteString("Assets\n")
	b.WriteString("Category,Amount\n")
	fmt.Fprintf(&b, "Cash,%s\n", num(p.Assets.Cash))
	fmt.Fprintf(&b, "Accounts Receivable,%s\n", num(p.Assets.AccountsReceivable))
	fmt.Fprintf(&b, "Inventory,%s\n", num(p.Assets.Inventory))
	fmt.Fprintf(&b, "Total Assets,%s\n\n", num(p.TotalAssets))

	b.WriteString("Liabilities\n")
	b.WriteString("Category,Amount\n")
	fmt.Fprintf(&b, "Accounts Payable,%s\n", num(p.Liabilities.AccountsPayable))
	fmt.Fprintf(&b, "Total Liabilities,%s\n\n", num(p.TotalLiabilities))

	b.WriteString("Equity\n")
	fmt.Fprintf(&b, "Total Equity,%s\n", num(p.Equity))
	return b.String()
}

func vatSummaryCSV(p *domain.VATSummaryReport, opts Options) string {
	var b strings.Builder
	b.WriteString("VAT Summary Report\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", opts.StartDate, opts.EndDate)
	b.WriteString("Category,Net Amount,VAT Amount,Total Amount\n")
	fmt.Fprintf(&b, "Sales,%s,%s,%s\n", num(p.TotalSales), num(p.SalesVAT), num(p.TotalSales+p.SalesVAT))
	fmt.Fprintf(&b, "Purchases,%s,%s,%s\n", num(p.TotalPurchases), num(p.PurchaseVAT), num(p.TotalPurchases+p.PurchaseVAT))
	fmt.Fprintf(&b, "\nNet VAT Payable/Refundable,%s\n", num(p.NetVATPayable))
	return b.String()
}

func corporateTaxCSV(p *domain.CorporateTaxReport, opts Options) string {
	var b strings.Builder
	b.WriteString("Corporate Tax Eligibility Report\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", opts.StartDate, opts.EndDate)
	fmt.Fprintf(&b, "Total Revenue,%s\n", num(p.TotalRevenue))
	fmt.Fprintf(&b, "Tax Eligibility Threshold,%s\n", num(domain.CorporateTaxThreshold))
	fmt.Fprintf(&b, "Eligible for Corporate Tax,%s\n", yesNo(p.IsEligible))
	fmt.Fprintf(&b, "Estimated Tax Amount (9%%),%s\n\n", num(p.TaxAmount))

	b.WriteString("\nRevenue by Customer\n")
	b.WriteString("Customer,Revenue\n")
	for _, customer := range p.RevenueByCustomer.Keys() {
		revenue, _ := p.RevenueByCustomer.Get(customer)
		fmt.Fprintf(&b, "%s,%s\n", customer, num(revenue))
	}

	b.WriteString("\nMonthly Revenue Trend\n")
	b.WriteString("Month,Revenue\n")
	for _, month := range p.MonthlyRevenue.Keys() {
		revenue, _ := p.MonthlyRevenue.Get(month)
		fmt.Fprintf(&b, "%s,%s\n", month, num(revenue))
	}

	fmt.Fprintf(&b, "\nProjected Revenue (3 months),%s\n", num(p.ProjectedRevenue))
	return b.String()
}

func invoiceCSV(t domain.ReportType, p *domain.InvoiceReport, opts Options) string {
	kind := "Sales"
	if t == domain.ReportPurchaseInvoice {
		kind = "Purchase"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Invoice Report\n", kind)
	fmt.Fprintf(&b, "Period: %s to %s\n", opts.StartDate, opts.EndDate)
	fmt.Fprintf(&b, "Status Filter: %s\n\n", opts.Status)

	b.WriteString("Summary\n")
	fmt.Fprintf(&b, "Total Invoices,%d\n", len(p.Invoices))
	fmt.Fprintf(&b, "Total Amount,%s\n", num(p.TotalAmount))
	fmt.Fprintf(&b, "Total VAT,%s\n\n", num(p.TotalVAT))

	b.WriteString("Customer/Vendor,Invoice Number,Date,Amount,VAT Amount,Total Amount,Status\n")
	for _, customer := range p.GroupedInvoices.Keys() {
		group, _ := p.GroupedInvoices.Get(customer)
		for _, inv := range group.Invoices {
			vat := inv.VAT()
			fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s\n",
				customer, inv.Number, inv.Date, num(inv.Amount), num(vat), num(inv.Amount+vat), inv.Status)
		}
	}

	b.WriteString("\nSubtotals by Customer/Vendor\n")
	b.WriteString("Customer/Vendor,Total Amount,Total VAT\n")
	for _, customer := range p.GroupedInvoices.Keys() {
		group, _ := p.GroupedInvoices.Get(customer)
		fmt.Fprintf(&b, "%s,%s,%s\n", customer, num(group.TotalAmount), num(group.TotalVAT))
	}
	return b.String()
}

func stockSummaryCSV(p *domain.StockSummaryReport, opts Options) string {
	var b strings.Builder
	b.WriteString("Inventory Stock Summary Report\n")
	fmt.Fprintf(&b, "Date: %s\n\n", opts.today())

	b.WriteString("Summary\n")
	fmt.Fprintf(&b, "Total Products,%d\n", len(p.Inventory))
	fmt.Fprintf(&b, "Total Stock Value,%s\n", num(p.TotalValue))
	fmt.Fprintf(&b, "Low Stock Items,%d\n\n", len(p.LowStockItems))

	b.WriteString("Product Name,SKU,Category,Quantity,Unit Price,Total Value\n")
	for _, item := range p.Inventory {
		category := item.Category
		if category == "" {
			category = "Uncategorized"
		}
		fmt.Fprintf(&b, "%s,%s,%s,%d,%s,%s\n",
			item.Name, item.SKU, category, item.Quantity, num(item.Price), num(item.StockValue()))
	}

	b.WriteString("\nCategory Breakdown\n")
	b.WriteString("Category,Total Products,Total Quantity,Total Value\n")
	for _, category := range p.ByCategory.Keys() {
		group, _ := p.ByCategory.Get(category)
		fmt.Fprintf(&b, "%s,%d,%d,%s\n", category, len(group.Items), group.TotalQuantity, num(group.TotalValue))
	}
	return b.String()
}

func stockMovementCSV(p *domain.StockMovementReport, opts Options) string {
	var b strings.Builder
	b.WriteString("Inventory Stock Movement Report\n")
	fmt.Fprintf(&b, "Date: %s\n\n", opts.today())

	b.WriteString("Summary\n")
	fmt.Fprintf(&b, "Total Products,%d\n", p.TotalProducts)
	fmt.Fprintf(&b, "Low Stock Alerts,%d\n\n", p.LowStockAlert)

	b.WriteString("Product Name,SKU,Category,Current Quantity,Incoming Stock,Outgoing Stock,Net Movement,Last Updated\n")
	for _, m := range p.Movements {
		fmt.Fprintf(&b, "%s,%s,%s,%d,%d,%d,%d,%s\n",
			m.ProductName, m.SKU, m.Category, m.CurrentQuantity, m.IncomingStock, m.OutgoingStock, m.NetMovement(), m.LastUpdated)
	}

	b.WriteString("\nCategory Movement Breakdown\n")
	b.WriteString("Category,Total Products,Net Movement\n")
	for _, category := range p.ByCategory.Keys() {
		group, _ := p.ByCategory.Get(category)
		fmt.Fprintf(&b, "%s,%d,%d\n", category, len(group.Items), group.TotalMovement)
	}
	return b.String()
}
