package partsledger

import (
	"fmt"

	"github.com/etnz/partsledger/date"
	"github.com/shopspring/decimal"
)

// Purchase records parts bought at a unit price.
type Purchase struct {
	ID string `json:"id"`
	PartKey
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"` // per unit
	Date          date.Date       `json:"date"`
}

// Part returns the part identity of the purchase.
func (p Purchase) Part() PartKey { return p.PartKey }

// Cost returns the total cost of the purchase.
func (p Purchase) Cost() decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(p.Quantity))
}

func (p Purchase) String() string {
	return fmt.Sprintf("%s buy %d x %s @%s", p.Date, p.Quantity, p.PartKey, p.PurchasePrice)
}

// Sale records parts sold at a unit price.
type Sale struct {
	ID string `json:"id"`
	PartKey
	Quantity  int64           `json:"quantity"`
	SalePrice decimal.Decimal `json:"salePrice"` // per unit
	Date      date.Date       `json:"date"`
}

// Part returns the part identity of the sale.
func (s Sale) Part() PartKey { return s.PartKey }

// Value returns the total value of the sale.
func (s Sale) Value() decimal.Decimal {
	return s.SalePrice.Mul(decimal.NewFromInt(s.Quantity))
}

func (s Sale) String() string {
	return fmt.Sprintf("%s sell %d x %s @%s", s.Date, s.Quantity, s.PartKey, s.SalePrice)
}

// StockItem is the derived position of one part. It is never persisted.
type StockItem struct {
	PartKey
	Quantity         int64           `json:"quantity"` // may be negative
	AvgPurchasePrice decimal.Decimal `json:"avgPurchasePrice"`
}

// Part returns the part identity of the item.
func (s StockItem) Part() PartKey { return s.PartKey }

// Value returns the quantity valued at the average purchase price.
func (s StockItem) Value() decimal.Decimal {
	return s.AvgPurchasePrice.Mul(decimal.NewFromInt(s.Quantity))
}
