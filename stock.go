package partsledger

import (
	"slices"

	"github.com/etnz/partsledger/date"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the quantity under which an item is reported
// as low on stock.
const DefaultLowStockThreshold = 5

// position accumulates the purchases and sales of a single part.
type position struct {
	part      PartKey
	quantity  int64
	totalCost decimal.Decimal
	units     int64 // purchased units, sales excluded
}

// DeriveStock computes the stock view from the ledgers.
//
// There is one StockItem per distinct part purchased, in order of first
// purchase. The average purchase price is the total cost of all purchases
// divided by the total purchased units: selling does not change it. Sales of
// parts that were never purchased are ignored. Items are kept even when their
// quantity reaches zero or below.
//
// DeriveStock never fails and does not modify its arguments.
func DeriveStock(purchases []Purchase, sales []Sale) []StockItem {
	index := make(map[PartKey]int, len(purchases))
	positions := make([]position, 0, len(purchases))

	for _, p := range purchases {
		i, exists := index[p.PartKey]
		if !exists {
			i = len(positions)
			index[p.PartKey] = i
			positions = append(positions, position{part: p.PartKey})
		}
		pos := &positions[i]
		pos.quantity += p.Quantity
		pos.totalCost = pos.totalCost.Add(p.Cost())
		pos.units += p.Quantity
	}

	for _, s := range sales {
		if i, exists := index[s.PartKey]; exists {
			positions[i].quantity -= s.Quantity
		}
	}

	stock := make([]StockItem, 0, len(positions))
	for _, pos := range positions {
		avg := decimal.Zero
		if pos.units > 0 {
			avg = pos.totalCost.Div(decimal.NewFromInt(pos.units))
		}
		stock = append(stock, StockItem{
			PartKey:          pos.part,
			Quantity:         pos.quantity,
			AvgPurchasePrice: avg,
		})
	}
	return stock
}

// FindStock returns the stock item of part.
func FindStock(stock []StockItem, part PartKey) (StockItem, bool) {
	return lo.Find(stock, func(item StockItem) bool { return item.PartKey == part })
}

// LowStock returns the items whose quantity is below threshold, including
// items at zero or negative quantity.
func LowStock(stock []StockItem, threshold int64) []StockItem {
	return lo.Filter(stock, func(item StockItem, _ int) bool { return item.Quantity < threshold })
}

// AvailableStock returns the items that can be sold, those with a positive quantity.
func AvailableStock(stock []StockItem) []StockItem {
	return lo.Filter(stock, func(item StockItem, _ int) bool { return item.Quantity > 0 })
}

// SortStock returns a copy of stock ordered by part.
func SortStock(stock []StockItem) []StockItem {
	sorted := slices.Clone(stock)
	slices.SortStableFunc(sorted, func(a, b StockItem) int { return a.PartKey.Compare(b.PartKey) })
	return sorted
}

// LastSalePrice returns the unit price of the most recent sale of part.
//
// Among sales sharing the latest date, the first recorded wins. ok is false
// when the part was never sold.
func LastSalePrice(sales []Sale, part PartKey) (price decimal.Decimal, on date.Date, ok bool) {
	for _, s := range sales {
		if s.PartKey != part {
			continue
		}
		if !ok || s.Date.After(on) {
			price, on, ok = s.SalePrice, s.Date, true
		}
	}
	return price, on, ok
}
