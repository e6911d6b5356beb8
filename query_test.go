package partsledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLedger_Query(t *testing.T) {
	l := Ledger{
		Purchases: Purchases{
			buy("1", "A", 10, 100, "2024-01-01"),
			buy("2", "B", 2, 20, "2024-01-02"),
		},
		Sales: Sales{sell("s1", "A", 4, 150, "2024-01-03")},
	}
	testCases := []struct {
		path    string
		want    any
		wantErr bool
	}{
		{"$.summary.totalItemsInStock", float64(8), false},
		{"$.summary.totalProfit", float64(200), false},
		{"$.stock[?(@.quantity < 5)].itemName", []any{"B"}, false},
		{"$.purchases[*].id", []any{"1", "2"}, false},
		{"$.sales[0].salePrice", float64(150), false},
		{"$.stock[0].avgPurchasePrice", float64(100), false},
		{"$.[", nil, true},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := l.Query(tc.path, DefaultCurrency, DefaultLowStockThreshold)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Query(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Query(%q) mismatch (-want +got):\n%s", tc.path, diff)
			}
		})
	}
}
