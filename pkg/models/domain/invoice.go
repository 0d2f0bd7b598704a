package domain

type InvoiceType string

const (
	InvoiceTypeSales    InvoiceType = "sales"
	InvoiceTypePurchase InvoiceType = "purchase"
)

// Invoice statuses as stored. Note the capitalization: report filters compare
// against these values verbatim.
const (
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusPending = "Pending"
	InvoiceStatusOverdue = "Overdue"
)

type InvoiceItem struct {
	ID           int     `json:"id"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	Rate         float64 `json:"rate"`
	DeliveryDate string  `json:"deliveryDate,omitempty"`
}

// Amount returns quantity x rate for the line.
func (i InvoiceItem) Amount() float64 {
	return i.Quantity * i.Rate
}

// Invoice is a billable document. Amount is the sum of item amounts; the
// store recomputes it on every write, the report engine only reads it.
type Invoice struct {
	ID            int           `json:"id"`
	Number        string        `json:"number"`
	Customer      string        `json:"customer"`
	Date          string        `json:"date"`
	Amount        float64       `json:"amount"`
	Status        string        `json:"status"`
	TaxRate       float64       `json:"taxRate"`
	Type          InvoiceType   `json:"type"`
	Items         []InvoiceItem `json:"items"`
	Address       string        `json:"address,omitempty"`
	ContactNumber string        `json:"contactNumber,omitempty"`
	Terms         string        `json:"terms,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// VAT returns the flat-percentage tax on the invoice amount.
func (inv Invoice) VAT() float64 {
	return inv.Amount * inv.TaxRate / 100
}
