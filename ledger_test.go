package partsledger

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/etnz/partsledger/date"
)

func ids[T interface{ Purchase | Sale }](list []T) []string {
	out := make([]string, 0, len(list))
	for _, x := range list {
		switch v := any(x).(type) {
		case Purchase:
			out = append(out, v.ID)
		case Sale:
			out = append(out, v.ID)
		}
	}
	return out
}

func TestPurchases_AddOrUpdate(t *testing.T) {
	ps := Purchases{
		buy("1", "A", 1, 10, "2024-01-01"),
		buy("2", "B", 1, 10, "2024-01-02"),
		buy("3", "C", 1, 10, "2024-01-03"),
	}
	before := slices.Clone(ps)

	t.Run("update keeps position", func(t *testing.T) {
		edited := buy("2", "Z", 7, 11, "2024-02-01")
		got := ps.AddOrUpdate(edited)
		if want := []string{"1", "2", "3"}; !slices.Equal(ids(got), want) {
			t.Errorf("AddOrUpdate() ids = %v, want %v", ids(got), want)
		}
		if diff := cmp.Diff(edited, got[1], cmpOpts); diff != "" {
			t.Errorf("AddOrUpdate() record mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("append new id", func(t *testing.T) {
		got := ps.AddOrUpdate(buy("4", "D", 1, 10, "2024-01-04"))
		if want := []string{"1", "2", "3", "4"}; !slices.Equal(ids(got), want) {
			t.Errorf("AddOrUpdate() ids = %v, want %v", ids(got), want)
		}
	})

	if diff := cmp.Diff(before, ps, cmpOpts); diff != "" {
		t.Errorf("AddOrUpdate() modified the receiver (-before +after):\n%s", diff)
	}
}

func TestPurchases_AddOrUpdate_DoesNotShareBackingArray(t *testing.T) {
	ps := make(Purchases, 1, 10)
	ps[0] = buy("1", "A", 1, 10, "2024-01-01")

	a := ps.AddOrUpdate(buy("2", "B", 1, 10, "2024-01-01"))
	b := ps.AddOrUpdate(buy("3", "C", 1, 10, "2024-01-01"))
	if a[1].ID != "2" || b[1].ID != "3" {
		t.Errorf("AddOrUpdate() results share storage: a=%v b=%v", ids(a), ids(b))
	}
}

func TestPurchases_Delete(t *testing.T) {
	ps := Purchases{
		buy("1", "A", 1, 10, "2024-01-01"),
		buy("2", "A", 5, 20, "2024-01-02"),
		buy("3", "B", 1, 10, "2024-01-03"),
	}

	got := ps.Delete("2")
	if want := []string{"1", "3"}; !slices.Equal(ids(got), want) {
		t.Errorf("Delete(2) ids = %v, want %v", ids(got), want)
	}
	if len(ps) != 3 {
		t.Errorf("Delete(2) modified the receiver")
	}

	// the stock reflects the removal
	item, _ := FindStock(DeriveStock(got, nil), part("A"))
	if item.Quantity != 1 || !item.AvgPurchasePrice.Equal(D(10)) {
		t.Errorf("stock after Delete(2) = %+v, want quantity 1 at 10", item)
	}

	if got := ps.Delete("unknown"); !slices.Equal(ids(got), ids(ps)) {
		t.Errorf("Delete(unknown) ids = %v, want %v", ids(got), ids(ps))
	}
}

func TestSales_Add(t *testing.T) {
	ss := Sales{sell("1", "A", 1, 10, "2024-01-01")}
	got := ss.Add(sell("1", "A", 1, 10, "2024-01-01")) // same id still appends
	if len(got) != 2 || len(ss) != 1 {
		t.Errorf("Add() len = %d (receiver %d), want 2 (receiver 1)", len(got), len(ss))
	}
}

func TestByDateDesc(t *testing.T) {
	ps := Purchases{
		buy("1", "A", 1, 10, "2024-01-02"),
		buy("2", "A", 1, 10, "2024-03-01"),
		buy("3", "A", 1, 10, "2024-01-02"),
		buy("4", "A", 1, 10, "2023-12-31"),
	}
	if got, want := ids(ps.ByDateDesc()), []string{"2", "1", "3", "4"}; !slices.Equal(got, want) {
		t.Errorf("Purchases.ByDateDesc() = %v, want %v", got, want)
	}
	if ps[0].ID != "1" {
		t.Errorf("Purchases.ByDateDesc() modified the receiver")
	}

	ss := Sales{
		sell("a", "A", 1, 10, "2024-01-01"),
		sell("b", "A", 1, 10, "2024-02-01"),
	}
	if got, want := ids(ss.ByDateDesc()), []string{"b", "a"}; !slices.Equal(got, want) {
		t.Errorf("Sales.ByDateDesc() = %v, want %v", got, want)
	}
}

func TestBetween(t *testing.T) {
	may := date.NewRange(date.New(2024, time.May, 10), date.Monthly)
	ps := Purchases{
		buy("1", "A", 1, 10, "2024-04-30"),
		buy("2", "A", 1, 10, "2024-05-01"),
		buy("3", "A", 1, 10, "2024-05-31"),
		buy("4", "A", 1, 10, "2024-06-01"),
	}
	if got, want := ids(ps.Between(may)), []string{"2", "3"}; !slices.Equal(got, want) {
		t.Errorf("Purchases.Between(%v) = %v, want %v", may, got, want)
	}
	ss := Sales{
		sell("a", "A", 1, 10, "2024-05-15"),
		sell("b", "A", 1, 10, "2024-07-01"),
	}
	if got, want := ids(ss.Between(may)), []string{"a"}; !slices.Equal(got, want) {
		t.Errorf("Sales.Between(%v) = %v, want %v", may, got, want)
	}
}
