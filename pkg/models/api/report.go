package api

// ReportTypeInfo describes one entry of the report catalogue. DateFiltered is
// false for the stock reports, which always run over the full inventory.
type ReportTypeInfo struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	DateFiltered bool   `json:"dateFiltered"`
	StatusFilter bool   `json:"statusFilter"`
}
