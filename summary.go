package partsledger

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// TotalItemsInStock returns the number of units on hand across all parts.
// It is negative when more units were sold than purchased.
func TotalItemsInStock(stock []StockItem) int64 {
	return lo.SumBy(stock, func(item StockItem) int64 { return item.Quantity })
}

// TotalStockValue returns the stock valued at average purchase prices.
func TotalStockValue(stock []StockItem) decimal.Decimal {
	return lo.Reduce(stock, func(total decimal.Decimal, item StockItem, _ int) decimal.Decimal {
		return total.Add(item.Value())
	}, decimal.Zero)
}

// TotalSalesValue returns the revenue of all sales.
func TotalSalesValue(sales []Sale) decimal.Decimal {
	return lo.Reduce(sales, func(total decimal.Decimal, s Sale, _ int) decimal.Decimal {
		return total.Add(s.Value())
	}, decimal.Zero)
}

// TotalProfit returns the margin of all sales over the average purchase price
// of the part sold. Sales of parts absent from stock are skipped.
func TotalProfit(sales []Sale, stock []StockItem) decimal.Decimal {
	avg := make(map[PartKey]decimal.Decimal, len(stock))
	for _, item := range stock {
		avg[item.PartKey] = item.AvgPurchasePrice
	}
	total := decimal.Zero
	for _, s := range sales {
		cost, ok := avg[s.PartKey]
		if !ok {
			continue
		}
		total = total.Add(s.SalePrice.Sub(cost).Mul(decimal.NewFromInt(s.Quantity)))
	}
	return total
}

// Summary holds the dashboard metrics of a ledger.
type Summary struct {
	TotalItemsInStock int64       `json:"totalItemsInStock"`
	TotalStockValue   Money       `json:"totalStockValue"`
	TotalSalesValue   Money       `json:"totalSalesValue"`
	TotalProfit       Money       `json:"totalProfit"`
	LowStock          []StockItem `json:"lowStock"`
}

// NewSummary computes the summary of the ledgers. Money amounts are reported
// in currency, items below threshold are listed in LowStock.
func NewSummary(purchases []Purchase, sales []Sale, currency string, threshold int64) Summary {
	stock := DeriveStock(purchases, sales)
	return Summary{
		TotalItemsInStock: TotalItemsInStock(stock),
		TotalStockValue:   M(TotalStockValue(stock), currency),
		TotalSalesValue:   M(TotalSalesValue(sales), currency),
		TotalProfit:       M(TotalProfit(sales, stock), currency),
		LowStock:          SortStock(LowStock(stock, threshold)),
	}
}

// Profitable reports whether the total profit is not a loss.
func (s Summary) Profitable() bool { return !s.TotalProfit.IsNegative() }
