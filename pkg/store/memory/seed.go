package memory

import "github.com/tallyweb/backoffice/pkg/models/domain"

const defaultTerms = "Payment is due within 15 days. Please make the payment via bank transfer or cheque."
const defaultNotes = "Thank you for your business!"

// SeedLedgerEntries returns the fixture book the application starts with.
func SeedLedgerEntries() []domain.LedgerEntry {
	return []domain.LedgerEntry{
		{ID: "1", Date: "2023-10-01", Description: "Initial Investment", Debit: 0, Credit: 100000, Balance: 100000, Category: "Investment"},
		{ID: "2", Date: "2023-10-05", Description: "Office Rent", Debit: 15000, Credit: 0, Balance: 85000, Category: "Expenses"},
		{ID: "3", Date: "2023-10-10", Description: "Sales Revenue", Debit: 0, Credit: 35000, Balance: 120000, Category: "Revenue"},
	}
}

func SeedInvoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: 1, Number: "INV-001", Customer: "ABC Corp", Date: "2023-10-01", Amount: 15000, Status: domain.InvoiceStatusPaid, TaxRate: 5, Type: domain.InvoiceTypeSales,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Product A", Quantity: 3, Rate: 5000, DeliveryDate: "2023-10-05"}}, Terms: defaultTerms, Notes: defaultNotes},
		{ID: 2, Number: "INV-002", Customer: "XYZ Ltd", Date: "2023-10-05", Amount: 8500, Status: domain.InvoiceStatusPending, TaxRate: 5, Type: domain.InvoiceTypeSales,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Service B", Quantity: 1, Rate: 8500, DeliveryDate: "2023-10-10"}}, Terms: defaultTerms, Notes: defaultNotes},
		{ID: 3, Number: "INV-003", Customer: "123 Industries", Date: "2023-10-10", Amount: 12000, Status: domain.InvoiceStatusOverdue, TaxRate: 5, Type: domain.InvoiceTypeSales,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Product C", Quantity: 2, Rate: 6000, DeliveryDate: "2023-10-15"}}, Terms: defaultTerms, Notes: defaultNotes},
		{ID: 4, Number: "INV-004", Customer: "Tech Solutions", Date: "2023-10-15", Amount: 9000, Status: domain.InvoiceStatusPaid, TaxRate: 5, Type: domain.InvoiceTypeSales,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Service D", Quantity: 1, Rate: 9000, DeliveryDate: "2023-10-20"}}, Terms: defaultTerms, Notes: defaultNotes},
		{ID: 5, Number: "INV-005", Customer: "Global Traders", Date: "2023-10-20", Amount: 11500, Status: domain.InvoiceStatusPending, TaxRate: 5, Type: domain.InvoiceTypeSales,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Product E", Quantity: 5, Rate: 2300, DeliveryDate: "2023-10-25"}}, Terms: defaultTerms, Notes: defaultNotes},
		{ID: 6, Number: "PINV-001", Customer: "Supplier A", Date: "2023-10-02", Amount: 7500, Status: domain.InvoiceStatusPaid, TaxRate: 5, Type: domain.InvoiceTypePurchase,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Raw Material X", Quantity: 10, Rate: 750, DeliveryDate: "2023-10-07"}}, Terms: defaultTerms, Notes: defaultNotes},
		{ID: 7, Number: "PINV-002", Customer: "Supplier B", Date: "2023-10-07", Amount: 12300, Status: domain.InvoiceStatusPending, TaxRate: 5, Type: domain.InvoiceTypePurchase,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Equipment Y", Quantity: 1, Rate: 12300, DeliveryDate: "2023-10-12"}}, Terms: defaultTerms, Notes: defaultNotes},
		{ID: 8, Number: "PINV-003", Customer: "Supplier C", Date: "2023-10-12", Amount: 5600, Status: domain.InvoiceStatusOverdue, TaxRate: 5, Type: domain.InvoiceTypePurchase,
			Items: []domain.InvoiceItem{{ID: 1, Description: "Office Supplies", Quantity: 4, Rate: 1400, DeliveryDate: "2023-10-17"}}, Terms: defaultTerms, Notes: defaultNotes},
	}
}

func SeedInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Product A", SKU: "SKU001", Category: "Electronics", Quantity: 50, Price: 5000, ReorderLevel: 10},
		{ID: 2, Name: "Product B", SKU: "SKU002", Category: "Furniture", Quantity: 30, Price: 8500, ReorderLevel: 5},
		{ID: 3, Name: "Product C", SKU: "SKU003", Category: "Electronics", Quantity: 15, Price: 6000, ReorderLevel: 5},
		{ID: 4, Name: "Product D", SKU: "SKU004", Category: "Office Supplies", Quantity: 100, Price: 500, ReorderLevel: 20},
		{ID: 5, Name: "Product E", SKU: "SKU005", Category: "Furniture", Quantity: 10, Price: 12000, ReorderLevel: 2},
	}
}
