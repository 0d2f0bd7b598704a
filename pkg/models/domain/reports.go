package domain

import "fmt"

type ReportType string

const (
	ReportProfitLoss      ReportType = "profitLoss"
	ReportBalanceSheet    ReportType = "balanceSheet"
	ReportCashFlow        ReportType = "cashFlow"
	ReportVATSummary      ReportType = "vatSummary"
	ReportCorporateTax    ReportType = "corporateTax"
	ReportSalesInvoice    ReportType = "salesInvoice"
	ReportPurchaseInvoice ReportType = "purchaseInvoice"
	ReportStockSummary    ReportType = "stockSummary"
	ReportStockMovement   ReportType = "stockMovement"
)

// ReportTypes lists every supported report type in menu order.
func ReportTypes() []ReportType {
	return []ReportType{
		ReportProfitLoss,
		ReportBalanceSheet,
		ReportCashFlow,
		ReportVATSummary,
		ReportCorporateTax,
		ReportSalesInvoice,
		ReportPurchaseInvoice,
		ReportStockSummary,
		ReportStockMovement,
	}
}

func ParseReportType(s string) (ReportType, error) {
	for _, t := range ReportTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

// Title returns the display name shown on the report header.
func (t ReportType) Title() string {
	switch t {
	case ReportProfitLoss:
		return "Profit & Loss Statement"
	case ReportBalanceSheet:
		return "Balance Sheet"
	case ReportCashFlow:
		return "Cash Flow Statement"
	case ReportVATSummary:
		return "VAT Summary Report"
	case ReportCorporateTax:
		return "Corporate Tax Eligibility Report"
	case ReportSalesInvoice:
		return "Sales Invoice Report"
	case ReportPurchaseInvoice:
		return "Purchase Invoice Report"
	case ReportStockSummary:
		return "Stock Summary Report"
	case ReportStockMovement:
		return "Stock Movement Report"
	}
	return string(t)
}

// ReportPayload is the closed set of report result shapes. A payload with a
// non-empty Message is the "no data" variant; renderers must check it before
// reading detail fields.
type ReportPayload interface {
	reportPayload()
}

type ProfitLossReport struct {
	Income             float64              `json:"income"`
	Expenses           float64              `json:"expenses"`
	NetProfit          float64              `json:"netProfit"`
	IncomeByCategory   *OrderedMap[float64] `json:"incomeByCategory"`
	ExpensesByCategory *OrderedMap[float64] `json:"expensesByCategory"`
	Transactions       []LedgerEntry        `json:"transactions"`
	Message            string               `json:"message,omitempty"`
}

type BalanceSheetAssets struct {
	Cash               float64 `json:"cash"`
	AccountsReceivable float64 `json:"accountsReceivable"`
	Inventory          float64 `json:"inventory"`
}

type BalanceSheetLiabilities struct {
	AccountsPayable float64 `json:"accountsPayable"`
}

type BalanceSheetReport struct {
	Assets           BalanceSheetAssets      `json:"assets"`
	Liabilities      BalanceSheetLiabilities `json:"liabilities"`
	Equity           float64                 `json:"equity"`
	TotalAssets      float64                 `json:"totalAssets"`
	TotalLiabilities float64                 `json:"totalLiabilities"`
	Date             string                  `json:"date"`
	Message          string                  `json:"message,omitempty"`
}

type CashFlowActivity struct {
	Inflows  float64 `json:"inflows"`
	Outflows float64 `json:"outflows"`
}

func (a CashFlowActivity) Net() float64 {
	return a.Inflows - a.Outflows
}

type CashFlowReport struct {
	OperatingActivities  CashFlowActivity `json:"operatingActivities"`
	InvestingActivities  CashFlowActivity `json:"investingActivities"`
	FinancingActivities  CashFlowActivity `json:"financingActivities"`
	NetOperatingCashFlow float64          `json:"netOperatingCashFlow"`
	NetInvestingCashFlow float64          `json:"netInvestingCashFlow"`
	NetFinancingCashFlow float64          `json:"netFinancingCashFlow"`
	NetCashFlow          float64          `json:"netCashFlow"`
	BeginningCashBalance float64          `json:"beginningCashBalance"`
	EndingCashBalance    float64          `json:"endingCashBalance"`
	Date                 string           `json:"date"`
	Message              string           `json:"message,omitempty"`
}

type VATSummaryReport struct {
	SalesVAT         float64   `json:"salesVAT"`
	PurchaseVAT      float64   `json:"purchaseVAT"`
	NetVATPayable    float64   `json:"netVATPayable"`
	TotalSales       float64   `json:"totalSales"`
	TotalPurchases   float64   `json:"totalPurchases"`
	SalesInvoices    []Invoice `json:"salesInvoices"`
	PurchaseInvoices []Invoice `json:"purchaseInvoices"`
	Message          string    `json:"message,omitempty"`
}

// CorporateTaxThreshold is the AED revenue above which a business becomes
// liable for corporate tax. The comparison is strictly greater-than.
const (
	CorporateTaxThreshold = 375000.0
	CorporateTaxRate      = 0.09
)

type CorporateTaxReport struct {
	TotalRevenue      float64              `json:"totalRevenue"`
	IsEligible        bool                 `json:"isEligible"`
	TaxAmount         float64              `json:"taxAmount"`
	RevenueByCustomer *OrderedMap[float64] `json:"revenueByCustomer"`
	MonthlyRevenue    *OrderedMap[float64] `json:"monthlyRevenue"`
	ProjectedRevenue  float64              `json:"projectedRevenue"`
	Message           string               `json:"message,omitempty"`
}

type InvoiceGroup struct {
	Invoices    []Invoice `json:"invoices"`
	TotalAmount float64   `json:"totalAmount"`
	TotalVAT    float64   `json:"totalVAT"`
}

type InvoiceReport struct {
	Invoices        []Invoice                  `json:"invoices"`
	TotalAmount     float64                    `json:"totalAmount"`
	TotalVAT        float64                    `json:"totalVAT"`
	GroupedInvoices *OrderedMap[*InvoiceGroup] `json:"groupedInvoices"`
	Message         string                     `json:"message,omitempty"`
}

type StockCategorySummary struct {
	Items         []InventoryItem `json:"items"`
	TotalValue    float64         `json:"totalValue"`
	TotalQuantity int             `json:"totalQuantity"`
}

type StockSummaryReport struct {
	Inventory     []InventoryItem                    `json:"inventory"`
	TotalValue    float64                            `json:"totalValue"`
	LowStockItems []InventoryItem                    `json:"lowStockItems"`
	ByCategory    *OrderedMap[*StockCategorySummary] `json:"byCategory"`
	Message       string                             `json:"message,omitempty"`
}

// StockMovement is one inventory item flattened into a movement record.
type StockMovement struct {
	ProductName     string `json:"productName"`
	SKU             string `json:"sku"`
	CurrentQuantity int    `json:"currentQuantity"`
	ReorderLevel    int    `json:"reorderLevel"`
	LastUpdated     string `json:"lastUpdated"`
	IncomingStock   int    `json:"incomingStock"`
	OutgoingStock   int    `json:"outgoingStock"`
	Category        string `json:"category"`
}

// NetMovement returns incoming minus outgoing stock.
func (m StockMovement) NetMovement() int {
	return m.IncomingStock - m.OutgoingStock
}

type StockMovementCategory struct {
	Items         []StockMovement `json:"items"`
	TotalMovement int             `json:"totalMovement"`
}

type StockMovementReport struct {
	Movements     []StockMovement                     `json:"movements"`
	TotalProducts int                                 `json:"totalProducts"`
	LowStockAlert int                                 `json:"lowStockAlert"`
	ByCategory    *OrderedMap[*StockMovementCategory] `json:"byCategory"`
	Message       string                              `json:"message,omitempty"`
}

func (*ProfitLossReport) reportPayload()    {}
func (*BalanceSheetReport) reportPayload()  {}
func (*CashFlowReport) reportPayload()      {}
func (*VATSummaryReport) reportPayload()    {}
func (*CorporateTaxReport) reportPayload()  {}
func (*InvoiceReport) reportPayload()       {}
func (*StockSummaryReport) reportPayload()  {}
func (*StockMovementReport) reportPayload() {}
