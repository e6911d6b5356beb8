package renderer

import (
	"github.com/etnz/partsledger"
	"github.com/etnz/partsledger/date"
	"github.com/shopspring/decimal"
)

// StockRow is one line of the stock view.
type StockRow struct {
	Part             partsledger.PartKey
	Quantity         int64
	AvgPurchasePrice partsledger.Money
	Value            partsledger.Money
	Low              bool
}

func newStockRow(item partsledger.StockItem, currency string, threshold int64) StockRow {
	return StockRow{
		Part:             item.PartKey,
		Quantity:         item.Quantity,
		AvgPurchasePrice: partsledger.M(item.AvgPurchasePrice, currency),
		Value:            partsledger.M(item.Value(), currency),
		Low:              item.Quantity < threshold,
	}
}

// StockView is the stock sorted by part, with totals.
type StockView struct {
	Items         []StockRow
	TotalQuantity int64
	TotalValue    partsledger.Money
}

// NewStockView builds the view of stock. Items under threshold are flagged.
func NewStockView(stock []partsledger.StockItem, currency string, threshold int64) *StockView {
	v := &StockView{
		TotalQuantity: partsledger.TotalItemsInStock(stock),
		TotalValue:    partsledger.M(partsledger.TotalStockValue(stock), currency),
	}
	for _, item := range partsledger.SortStock(stock) {
		v.Items = append(v.Items, newStockRow(item, currency, threshold))
	}
	return v
}

// LedgerRow is one purchase or sale.
type LedgerRow struct {
	ID       string
	Date     date.Date
	Part     partsledger.PartKey
	Quantity int64
	Price    partsledger.Money
	Total    partsledger.Money
}

// LedgerView lists purchases or sales, most recent first.
type LedgerView struct {
	Title         string
	Period        string // empty for the whole ledger
	PriceLabel    string
	Rows          []LedgerRow
	TotalQuantity int64
	TotalValue    partsledger.Money
}

func (v *LedgerView) append(row LedgerRow) {
	v.Rows = append(v.Rows, row)
	v.TotalQuantity += row.Quantity
	v.TotalValue = partsledger.M(v.TotalValue.Decimal().Add(row.Total.Decimal()), row.Total.Currency())
}

// NewPurchasesView builds the listing of ps. period names the range ps was
// filtered on, if any.
func NewPurchasesView(ps partsledger.Purchases, currency, period string) *LedgerView {
	v := &LedgerView{Title: "Purchases", Period: period, PriceLabel: "Purchase Price", TotalValue: partsledger.M(decimal.Zero, currency)}
	for _, p := range ps.ByDateDesc() {
		v.append(LedgerRow{
			ID:       p.ID,
			Date:     p.Date,
			Part:     p.PartKey,
			Quantity: p.Quantity,
			Price:    partsledger.M(p.PurchasePrice, currency),
			Total:    partsledger.M(p.Cost(), currency),
		})
	}
	return v
}

// NewSalesView builds the listing of ss. period names the range ss was
// filtered on, if any.
func NewSalesView(ss partsledger.Sales, currency, period string) *LedgerView {
	v := &LedgerView{Title: "Sales", Period: period, PriceLabel: "Sale Price", TotalValue: partsledger.M(decimal.Zero, currency)}
	for _, s := range ss.ByDateDesc() {
		v.append(LedgerRow{
			ID:       s.ID,
			Date:     s.Date,
			Part:     s.PartKey,
			Quantity: s.Quantity,
			Price:    partsledger.M(s.SalePrice, currency),
			Total:    partsledger.M(s.Value(), currency),
		})
	}
	return v
}

// Dashboard holds the four metrics and the low stock alert.
type Dashboard struct {
	TotalStockValue   partsledger.Money
	TotalItemsInStock int64
	TotalSalesValue   partsledger.Money
	TotalProfit       partsledger.Money
	Profitable        bool
	Threshold         int64
	LowStock          []StockRow
}

// NewDashboard builds the dashboard of l.
func NewDashboard(l partsledger.Ledger, currency string, threshold int64) *Dashboard {
	s := l.Summary(currency, threshold)
	d := &Dashboard{
		TotalStockValue:   s.TotalStockValue,
		TotalItemsInStock: s.TotalItemsInStock,
		TotalSalesValue:   s.TotalSalesValue,
		TotalProfit:       s.TotalProfit,
		Profitable:        s.Profitable(),
		Threshold:         threshold,
	}
	for _, item := range s.LowStock {
		d.LowStock = append(d.LowStock, newStockRow(item, currency, threshold))
	}
	return d
}
