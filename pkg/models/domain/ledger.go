package domain

// LedgerEntry is one bookkeeping line. Balance is the running total captured
// when the entry was written; reports trust it and never recompute it.
type LedgerEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Balance     float64 `json:"balance"`
	Category    string  `json:"category"`
}
