package partsledger

import (
	"slices"

	"github.com/etnz/partsledger/date"
	"github.com/samber/lo"
)

// Purchases is the purchases ledger.
//
// A Purchases value is never modified: AddOrUpdate and Delete return a new
// collection and leave the receiver untouched.
type Purchases []Purchase

// Find returns the purchase with that id.
func (ps Purchases) Find(id string) (Purchase, bool) {
	return lo.Find(ps, func(p Purchase) bool { return p.ID == id })
}

// AddOrUpdate returns a copy of the ledger where the purchase with the same
// id is replaced by p, keeping its position. If there is none, p is appended.
func (ps Purchases) AddOrUpdate(p Purchase) Purchases {
	_, i, found := lo.FindIndexOf(ps, func(x Purchase) bool { return x.ID == p.ID })
	if !found {
		return append(slices.Clone(ps), p)
	}
	updated := slices.Clone(ps)
	updated[i] = p
	return updated
}

// Delete returns a copy of the ledger without the purchase with that id.
// Deleting an unknown id returns an unchanged copy.
func (ps Purchases) Delete(id string) Purchases {
	return lo.Reject(ps, func(p Purchase, _ int) bool { return p.ID == id })
}

// ByDateDesc returns a copy of the ledger, most recent first. Purchases of
// the same day keep their recorded order.
func (ps Purchases) ByDateDesc() Purchases {
	sorted := slices.Clone(ps)
	slices.SortStableFunc(sorted, func(a, b Purchase) int { return b.Date.Compare(a.Date) })
	return sorted
}

// Between returns the purchases dated within r.
func (ps Purchases) Between(r date.Range) Purchases {
	return lo.Filter(ps, func(p Purchase, _ int) bool { return r.Contains(p.Date) })
}

// Sales is the sales ledger. Sales are only ever appended.
type Sales []Sale

// Add returns a copy of the ledger with s appended.
func (ss Sales) Add(s Sale) Sales {
	return append(slices.Clone(ss), s)
}

// ByDateDesc returns a copy of the ledger, most recent first. Sales of the
// same day keep their recorded order.
func (ss Sales) ByDateDesc() Sales {
	sorted := slices.Clone(ss)
	slices.SortStableFunc(sorted, func(a, b Sale) int { return b.Date.Compare(a.Date) })
	return sorted
}

// Between returns the sales dated within r.
func (ss Sales) Between(r date.Range) Sales {
	return lo.Filter(ss, func(s Sale, _ int) bool { return r.Contains(s.Date) })
}

// Ledger is a consistent snapshot of both ledgers.
type Ledger struct {
	Purchases Purchases `json:"purchases"`
	Sales     Sales     `json:"sales"`
}

// Stock derives the stock view of the snapshot.
func (l Ledger) Stock() []StockItem { return DeriveStock(l.Purchases, l.Sales) }

// Summary computes the dashboard metrics of the snapshot.
func (l Ledger) Summary(currency string, threshold int64) Summary {
	return NewSummary(l.Purchases, l.Sales, currency, threshold)
}
