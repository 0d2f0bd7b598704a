package domain

// DefaultReorderLevel applies when an item has no reorder level set.
const DefaultReorderLevel = 20

type InventoryItem struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	ReorderLevel  int     `json:"reorderLevel"`
	IncomingStock int     `json:"incomingStock,omitempty"`
	OutgoingStock int     `json:"outgoingStock,omitempty"`
	LastUpdated   string  `json:"lastUpdated,omitempty"`
}

// StockValue returns quantity x unit price.
func (i InventoryItem) StockValue() float64 {
	return float64(i.Quantity) * i.Price
}

// EffectiveReorderLevel falls back to DefaultReorderLevel when unset.
func (i InventoryItem) EffectiveReorderLevel() int {
	if i.ReorderLevel == 0 {
		return DefaultReorderLevel
	}
	return i.ReorderLevel
}

// LowStock reports whether quantity has fallen below the reorder level.
func (i InventoryItem) LowStock() bool {
	return i.Quantity < i.EffectiveReorderLevel()
}
