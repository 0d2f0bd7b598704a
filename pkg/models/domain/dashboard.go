package domain

// DashboardSummary backs the landing-page cards: revenue collected so far,
// sales amounts still outstanding, total stock value, and the latest invoices.
type DashboardSummary struct {
	TotalRevenue      float64   `json:"totalRevenue"`
	OutstandingAmount float64   `json:"outstandingAmount"`
	InventoryValue    float64   `json:"inventoryValue"`
	RecentInvoices    []Invoice `json:"recentInvoices"`
}
