package analytics

import (
	"github.com/straye-as/bizdesk-api/internal/domain"
)

// DeriveInventoryStatus computes the stock level from quantity and reorder point
func DeriveInventoryStatus(item domain.InventoryItem) domain.InventoryStatus {
	switch {
	case item.Quantity <= 0:
		return domain.InventoryStatusOutOfStock
	case item.Quantity <= item.ReorderPoint:
		return domain.InventoryStatusLowStock
	default:
		return domain.InventoryStatusInStock
	}
}

// ReorderCandidates returns items at or below their reorder point
func ReorderCandidates(items []domain.InventoryItem) []domain.InventoryItem {
	var out []domain.InventoryItem
	for _, item := range items {
		if item.Quantity <= item.ReorderPoint {
			out = append(out, item)
		}
	}
	return out
}

// InventoryValue is the stock value at cost and at selling price
type InventoryValue struct {
	AtCost    float64 `json:"atCost"`
	AtSelling float64 `json:"atSelling"`
}

// StockValue sums the value of all stocked quantities
func StockValue(items []domain.InventoryItem) InventoryValue {
	var v InventoryValue
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		v.AtCost += item.CostPrice * float64(item.Quantity)
		v.AtSelling += item.SellingPrice * float64(item.Quantity)
	}
	return v
}
