package partsledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/etnz/partsledger/date"
)

// validateEntry checks the fields shared by purchases and sales.
func validateEntry(part PartKey, quantity int64, price decimal.Decimal, on date.Date) error {
	var errs []error
	if strings.TrimSpace(part.ItemName) == "" {
		errs = append(errs, errors.New("item name is required"))
	}
	if strings.TrimSpace(part.ModelName) == "" {
		errs = append(errs, errors.New("model name is required"))
	}
	if strings.TrimSpace(part.PartNumber) == "" {
		errs = append(errs, errors.New("part number is required"))
	}
	if quantity < 1 {
		errs = append(errs, fmt.Errorf("quantity must be a positive integer, got %d", quantity))
	}
	if price.IsNegative() {
		errs = append(errs, fmt.Errorf("price must not be negative, got %s", price))
	}
	if on.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidInput}, errs...)...)
}

// ValidatePurchase checks that p can be recorded.
func ValidatePurchase(p Purchase) error {
	return validateEntry(p.PartKey, p.Quantity, p.PurchasePrice, p.Date)
}

// ValidateSale checks that s can be recorded against the current stock: the
// part must be available and the quantity must not exceed what is on hand.
//
// DeriveStock itself accepts any sale, this check belongs to the entry points.
func ValidateSale(stock []StockItem, s Sale) error {
	if err := validateEntry(s.PartKey, s.Quantity, s.SalePrice, s.Date); err != nil {
		return err
	}
	item, ok := FindStock(AvailableStock(stock), s.PartKey)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPart, s.PartKey)
	}
	if s.Quantity > item.Quantity {
		return fmt.Errorf("%w: only %d items in stock", ErrInsufficientStock, item.Quantity)
	}
	return nil
}
