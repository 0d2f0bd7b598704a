package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

func testInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Product A", SKU: "SKU001", Category: "Electronics", Quantity: 50, Price: 5000, ReorderLevel: 10},
		{ID: 2, Name: "Product B", SKU: "SKU002", Category: "Furniture", Quantity: 30, Price: 3000, ReorderLevel: 40},
	}
}

func TestStockSummary(t *testing.T) {
	items := testInventory()

	r := StockSummary(items)

	assert.Empty(t, r.Message)
	assert.Equal(t, items, r.Inventory)
	assert.Equal(t, 340000.0, r.TotalValue)

	require.Len(t, r.LowStockItems, 1)
	assert.Equal(t, "Product B", r.LowStockItems[0].Name)

	assert.Equal(t, []string{"Electronics", "Furniture"}, r.ByCategory.Keys())
	electronics, ok := r.ByCategory.Get("Electronics")
	require.True(t, ok)
	assert.Equal(t, 250000.0, electronics.TotalValue)
	assert.Equal(t, 50, electronics.TotalQuantity)
	assert.Len(t, electronics.Items, 1)
}

func TestStockSummary_NoData(t *testing.T) {
	r := StockSummary(nil)
	assert.Equal(t, "No inventory data available", r.Message)
	assert.NotNil(t, r.Inventory)
	assert.NotNil(t, r.LowStockItems)
}

func TestStockMovement(t *testing.T) {
	now := time.Date(2023, 10, 20, 12, 0, 0, 0, time.UTC)
	items := []domain.InventoryItem{
		{ID: 1, Name: "Product A", SKU: "SKU001", Category: "Electronics", Quantity: 50, Price: 5000, ReorderLevel: 10,
			IncomingStock: 20, OutgoingStock: 5, LastUpdated: "2023-10-18T09:00:00Z"},
		{ID: 2, Name: "Product B", SKU: "SKU002", Category: "Electronics", Quantity: 15, Price: 3000,
			IncomingStock: 0, OutgoingStock: 10},
	}

	r := StockMovement(items, now)

	assert.Empty(t, r.Message)
	assert.Equal(t, 2, r.TotalProducts)
	require.Len(t, r.Movements, 2)

	first := r.Movements[0]
	assert.Equal(t, "Product A", first.ProductName)
	assert.Equal(t, 10, first.ReorderLevel)
	assert.Equal(t, "2023-10-18T09:00:00Z", first.LastUpdated)
	assert.Equal(t, 15, first.NetMovement())

	// Missing reorder level defaults to 20, missing timestamp to now.
	second := r.Movements[1]
	assert.Equal(t, 20, second.ReorderLevel)
	assert.Equal(t, "2023-10-20T12:00:00Z", second.LastUpdated)

	// Product B sits below its effective reorder level.
	assert.Equal(t, 1, r.LowStockAlert)

	assert.Equal(t, []string{"Electronics"}, r.ByCategory.Keys())
	group, ok := r.ByCategory.Get("Electronics")
	require.True(t, ok)
	assert.Equal(t, 5, group.TotalMovement)
	assert.Len(t, group.Items, 2)
}

func TestStockMovement_NoData(t *testing.T) {
	r := StockMovement(nil, time.Now())
	assert.Equal(t, "No inventory data available", r.Message)
}
