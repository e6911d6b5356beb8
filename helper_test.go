package partsledger

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/etnz/partsledger/date"
)

// part returns a part identity built from a short item name.
func part(item string) PartKey { return NewPartKey(item, "M1", "P-"+item) }

// D is a short decimal factory for tests.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func buy(id, item string, qty int64, price float64, on string) Purchase {
	return Purchase{ID: id, PartKey: part(item), Quantity: qty, PurchasePrice: D(price), Date: date.MustParse(on)}
}

func sell(id, item string, qty int64, price float64, on string) Sale {
	return Sale{ID: id, PartKey: part(item), Quantity: qty, SalePrice: D(price), Date: date.MustParse(on)}
}

// cmpOpts lets cmp compare decimals by value and dates.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// randomLedger generates purchases and sales over a small set of parts, so
// that parts repeat. Some sales reference parts never purchased.
func randomLedger(f *gofakeit.Faker) (Purchases, Sales) {
	items := make([]string, f.IntRange(1, 6))
	for i := range items {
		items[i] = f.Noun() + fmt.Sprint(i)
	}
	on := date.New(2024, 1, 1)

	var ps Purchases
	for i := range f.IntRange(0, 30) {
		ps = append(ps, Purchase{
			ID:            f.UUID(),
			PartKey:       part(f.RandomString(items)),
			Quantity:      int64(f.IntRange(1, 50)),
			PurchasePrice: D(f.Price(0, 1000)),
			Date:          on.Add(i),
		})
	}
	var ss Sales
	for i := range f.IntRange(0, 30) {
		item := f.RandomString(items)
		if f.Bool() && f.Bool() {
			item = "orphan-" + item
		}
		ss = append(ss, Sale{
			ID:        f.UUID(),
			PartKey:   part(item),
			Quantity:  int64(f.IntRange(1, 20)),
			SalePrice: D(f.Price(0, 1500)),
			Date:      on.Add(i),
		})
	}
	return ps, ss
}
