package partsledger

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

func TestAggregates(t *testing.T) {
	testCases := []struct {
		name       string
		purchases  []Purchase
		sales      []Sale
		items      int64
		stockValue decimal.Decimal
		salesValue decimal.Decimal
		profit     decimal.Decimal
	}{
		{
			name:       "empty",
			stockValue: D(0),
			salesValue: D(0),
			profit:     D(0),
		},
		{
			name:       "single purchase",
			purchases:  []Purchase{buy("1", "A", 10, 100, "2024-01-01")},
			items:      10,
			stockValue: D(1000),
			salesValue: D(0),
			profit:     D(0),
		},
		{
			name:       "profit on sale",
			purchases:  []Purchase{buy("1", "A", 10, 100, "2024-01-01")},
			sales:      []Sale{sell("s1", "A", 4, 150, "2024-01-02")},
			items:      6,
			stockValue: D(600),
			salesValue: D(600),
			profit:     D(200),
		},
		{
			name:       "loss on sale",
			purchases:  []Purchase{buy("1", "A", 10, 100, "2024-01-01")},
			sales:      []Sale{sell("s1", "A", 2, 80, "2024-01-02")},
			items:      8,
			stockValue: D(800),
			salesValue: D(160),
			profit:     D(-40),
		},
		{
			name:       "orphan sale counts in sales value only",
			sales:      []Sale{sell("s1", "B", 1, 50, "2024-01-02")},
			stockValue: D(0),
			salesValue: D(50),
			profit:     D(0),
		},
		{
			name:      "negative stock",
			purchases: []Purchase{buy("1", "A", 1, 10, "2024-01-01")},
			sales: []Sale{
				sell("s1", "A", 3, 10, "2024-01-02"),
			},
			items:      -2,
			stockValue: D(-20),
			salesValue: D(30),
			profit:     D(0),
		},
		{
			name: "profit uses average of all purchases",
			purchases: []Purchase{
				buy("1", "A", 10, 100, "2024-01-01"),
				buy("2", "A", 10, 200, "2024-01-02"),
			},
			sales:      []Sale{sell("s1", "A", 5, 160, "2024-01-03")},
			items:      15,
			stockValue: D(2250),
			salesValue: D(800),
			profit:     D(50),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stock := DeriveStock(tc.purchases, tc.sales)
			if got := TotalItemsInStock(stock); got != tc.items {
				t.Errorf("TotalItemsInStock() = %d, want %d", got, tc.items)
			}
			if got := TotalStockValue(stock); !got.Equal(tc.stockValue) {
				t.Errorf("TotalStockValue() = %v, want %v", got, tc.stockValue)
			}
			if got := TotalSalesValue(tc.sales); !got.Equal(tc.salesValue) {
				t.Errorf("TotalSalesValue() = %v, want %v", got, tc.salesValue)
			}
			if got := TotalProfit(tc.sales, stock); !got.Equal(tc.profit) {
				t.Errorf("TotalProfit() = %v, want %v", got, tc.profit)
			}
		})
	}
}

func TestTotalProfit_OrphanSalesIgnored(t *testing.T) {
	for seed := range uint64(20) {
		purchases, sales := randomLedger(gofakeit.New(seed))
		stock := DeriveStock(purchases, sales)

		var matched Sales
		for _, s := range sales {
			if _, ok := FindStock(stock, s.PartKey); ok {
				matched = append(matched, s)
			}
		}
		if got, want := TotalProfit(sales, stock), TotalProfit(matched, stock); !got.Equal(want) {
			t.Errorf("seed %d: TotalProfit(all sales) = %v, want %v (matched sales only)", seed, got, want)
		}
	}
}

func TestNewSummary(t *testing.T) {
	purchases := []Purchase{
		buy("1", "A", 10, 100, "2024-01-01"),
		buy("2", "B", 3, 20.5, "2024-01-01"),
	}
	sales := []Sale{sell("s1", "A", 4, 150, "2024-01-02")}

	s := NewSummary(purchases, sales, "INR", DefaultLowStockThreshold)
	if s.TotalItemsInStock != 9 {
		t.Errorf("TotalItemsInStock = %d, want 9", s.TotalItemsInStock)
	}
	if got, want := s.TotalStockValue.String(), "₹661.50"; got != want {
		t.Errorf("TotalStockValue = %q, want %q", got, want)
	}
	if got, want := s.TotalSalesValue.String(), "₹600.00"; got != want {
		t.Errorf("TotalSalesValue = %q, want %q", got, want)
	}
	if got, want := s.TotalProfit.String(), "₹200.00"; got != want {
		t.Errorf("TotalProfit = %q, want %q", got, want)
	}
	if !s.Profitable() {
		t.Errorf("Profitable() = false, want true")
	}
	if len(s.LowStock) != 1 || s.LowStock[0].PartKey != part("B") {
		t.Errorf("LowStock = %v, want only B", s.LowStock)
	}
}
