package cmd

import (
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/etnz/partsledger"
	"github.com/etnz/partsledger/date"
)

// entryFlags are the flags shared by the commands that record a purchase or a sale.
type entryFlags struct {
	item   string
	model  string
	number string
	qty    int64
	price  string
	date   string
}

func (e *entryFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.item, "item", "", "Item name, e.g. \"Brake Pad\".")
	f.StringVar(&e.model, "model", "", "Model name the part fits.")
	f.StringVar(&e.number, "part", "", "Part number.")
	f.Int64Var(&e.qty, "qty", 0, "Quantity, at least 1.")
	f.StringVar(&e.price, "price", "", "Unit price.")
	f.StringVar(&e.date, "d", "", "Date of the transaction, defaults to today.")
}

func (e *entryFlags) part() partsledger.PartKey {
	return partsledger.NewPartKey(e.item, e.model, e.number)
}

// on parses the -d flag.
func (e *entryFlags) on() (date.Date, error) {
	if e.date == "" {
		return date.Today(), nil
	}
	return date.Parse(e.date)
}

// unitPrice parses the -price flag.
func (e *entryFlags) unitPrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(e.price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", e.price, err)
	}
	return price, nil
}

// visited returns the names of the flags set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}
