package report

import (
	"time"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

func categoryKey(category string) string {
	if category == "" {
		return "Uncategorized"
	}
	return category
}

// StockSummary values the whole stock (no date filter), flags low-stock items
// and breaks value and quantity down by category.
func StockSummary(items []domain.InventoryItem) *domain.StockSummaryReport {
	r := &domain.StockSummaryReport{
		Inventory:     []domain.InventoryItem{},
		LowStockItems: []domain.InventoryItem{},
		ByCategory:    domain.NewOrderedMap[*domain.StockCategorySummary](),
	}
	if len(items) == 0 {
		r.Message = msgNoInventoryData
		return r
	}

	r.Inventory = items
	for _, item := range items {
		r.TotalValue += item.StockValue()
		if item.LowStock() {
			r.LowStockItems = append(r.LowStockItems, item)
		}

		key := categoryKey(item.Category)
		group, ok := r.ByCategory.Get(key)
		if !ok {
			group = &domain.StockCategorySummary{Items: []domain.InventoryItem{}}
			r.ByCategory.Set(key, group)
		}
		group.Items = append(group.Items, item)
		group.TotalValue += item.StockValue()
		group.TotalQuantity += item.Quantity
	}
	return r
}

// StockMovement flattens every item into a movement record, counting low-stock
// alerts and netting incoming against outgoing stock per category. Items that
// were never updated get now as their last-updated timestamp.
func StockMovement(items []domain.InventoryItem, now time.Time) *domain.StockMovementReport {
	r := &domain.StockMovementReport{
		Movements:  []domain.StockMovement{},
		ByCategory: domain.NewOrderedMap[*domain.StockMovementCategory](),
	}
	if len(items) == 0 {
		r.Message = msgNoInventoryData
		return r
	}

	r.TotalProducts = len(items)
	for _, item := range items {
		lastUpdated := item.LastUpdated
		if lastUpdated == "" {
			lastUpdated = now.UTC().Format(time.RFC3339)
		}
		m := domain.StockMovement{
			ProductName:     item.Name,
			SKU:             item.SKU,
			CurrentQuantity: item.Quantity,
			ReorderLevel:    item.EffectiveReorderLevel(),
			LastUpdated:     lastUpdated,
			IncomingStock:   item.IncomingStock,
			OutgoingStock:   item.OutgoingStock,
			Category:        categoryKey(item.Category),
		}
		r.Movements = append(r.Movements, m)

		if m.CurrentQuantity < m.ReorderLevel {
			r.LowStockAlert++
		}

		group, ok := r.ByCategory.Get(m.Category)
		if !ok {
			group = &domain.StockMovementCategory{Items: []domain.StockMovement{}}
			r.ByCategory.Set(m.Category, group)
		}
		group.Items = append(group.Items, m)
		group.TotalMovement += m.NetMovement()
	}
	return r
}
