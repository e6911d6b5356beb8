package partsledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodePurchases(t *testing.T) {
	ps := Purchases{buy("2024-05-01T10:00:00.000Z", "Filter", 10, 100.5, "2024-05-01")}
	ps[0].PartKey = NewPartKey("Filter", "X200", "F-1")

	got, err := EncodePurchases(ps)
	if err != nil {
		t.Fatalf("EncodePurchases() unexpected error: %v", err)
	}
	want := `[{"id":"2024-05-01T10:00:00.000Z","itemName":"Filter","modelName":"X200","partNumber":"F-1","quantity":10,"purchasePrice":100.5,"date":"2024-05-01"}]`
	if string(got) != want {
		t.Errorf("EncodePurchases() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeSales_Empty(t *testing.T) {
	got, err := EncodeSales(nil)
	if err != nil {
		t.Fatalf("EncodeSales() unexpected error: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("EncodeSales(nil) = %s, want []", got)
	}
}

func TestDecodeSales(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Sales
		wantErr bool
	}{
		{"absent", "", nil, false},
		{"null", "null", nil, false},
		{"empty", "[]", Sales{}, false},
		{
			name: "browser record",
			in:   `[{"id":"1714557600000","itemName":"A","modelName":"M1","partNumber":"P-A","quantity":4,"salePrice":150,"date":"2024-5-1"}]`,
			want: Sales{sell("1714557600000", "A", 4, 150, "2024-05-01")},
		},
		{"price as string", `[{"id":"1","itemName":"A","modelName":"M1","partNumber":"P-A","quantity":1,"salePrice":"9.99","date":"2024-05-01"}]`,
			Sales{sell("1", "A", 1, 9.99, "2024-05-01")}, false},
		{"bad date", `[{"id":"1","date":"May 1st"}]`, nil, true},
		{"not a list", `{}`, nil, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeSales([]byte(tc.in))
			if (err != nil) != tc.wantErr {
				t.Fatalf("DecodeSales() error = %v, wantErr %v", err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got, cmpOpts); diff != "" {
				t.Errorf("DecodeSales() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodePurchases_RoundTrip(t *testing.T) {
	ps := Purchases{
		buy("1", "A", 3, 12.25, "2024-01-01"),
		buy("2", "B", 1, 0, "2024-01-02"),
	}
	data, err := EncodePurchases(ps)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodePurchases(data)
	if err != nil {
		t.Fatalf("DecodePurchases() unexpected error: %v", err)
	}
	if diff := cmp.Diff(ps, got, cmpOpts); diff != "" {
		t.Errorf("DecodePurchases(EncodePurchases()) mismatch (-want +got):\n%s", diff)
	}
}
