package partsledger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/etnz/partsledger/kv"
)

// Book owns the purchases and sales ledgers and persists them in a kv.Store.
//
// Readers get immutable snapshots and never block. Mutations are serialized:
// each one starts from the ledgers as stored, persists the new ledger with a
// single Set and only then publishes it, so a failed write leaves the
// previous snapshot in place.
type Book struct {
	store  kv.Store
	logger *zap.Logger

	mu       sync.Mutex // serializes mutations
	snapshot atomic.Pointer[Ledger]
	cancels  []func()
}

// Option configures a Book.
type Option func(*Book)

// WithLogger sets the logger of the book.
func WithLogger(l *zap.Logger) Option {
	return func(b *Book) { b.logger = l }
}

// Open loads the ledgers from store. Absent keys are empty ledgers.
//
// The book subscribes to the ledger keys so that writes made through the same
// store value are picked up at once. Writes made by other processes on the
// same backend are picked up by Refresh and by the next mutation.
func Open(ctx context.Context, store kv.Store, opts ...Option) (*Book, error) {
	b := &Book{store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.Named("book")

	l, err := b.read(ctx)
	if err != nil {
		return nil, err
	}
	b.snapshot.Store(&l)
	b.logger.Debug("ledgers loaded",
		zap.Int("purchases", len(l.Purchases)),
		zap.Int("sales", len(l.Sales)))

	b.cancels = append(b.cancels,
		store.Subscribe(PurchasesKey, b.reloadPurchases),
		store.Subscribe(SalesKey, b.reloadSales),
	)
	return b, nil
}

// Close stops following the store. It does not close the store.
func (b *Book) Close() {
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
}

// Refresh reloads the ledgers from the store.
func (b *Book) Refresh(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, err := b.read(ctx)
	if err != nil {
		return err
	}
	b.snapshot.Store(&l)
	return nil
}

// Snapshot returns the current state of both ledgers.
func (b *Book) Snapshot() Ledger { return *b.snapshot.Load() }

// Stock derives the current stock view.
func (b *Book) Stock() []StockItem { return b.Snapshot().Stock() }

// AddOrUpdatePurchase records p, replacing the purchase with the same id if any.
func (b *Book) AddOrUpdatePurchase(ctx context.Context, p Purchase) error {
	return b.updatePurchases(ctx, func(ps Purchases) (Purchases, bool) { return ps.AddOrUpdate(p), true })
}

// UpdatePurchase replaces the purchase with the same id. It returns
// ErrNotFound if there is none.
func (b *Book) UpdatePurchase(ctx context.Context, p Purchase) error {
	var found bool
	err := b.updatePurchases(ctx, func(ps Purchases) (Purchases, bool) {
		if _, found = ps.Find(p.ID); !found {
			return ps, false
		}
		return ps.AddOrUpdate(p), true
	})
	if err == nil && !found {
		return fmt.Errorf("purchase %q: %w", p.ID, ErrNotFound)
	}
	return err
}

// DeletePurchase removes the purchase with that id. Unknown ids are a no-op.
//
// Callers are expected to confirm the delete with a DeleteGate first.
func (b *Book) DeletePurchase(ctx context.Context, id string) error {
	return b.updatePurchases(ctx, func(ps Purchases) (Purchases, bool) {
		if _, found := ps.Find(id); !found {
			return ps, false
		}
		return ps.Delete(id), true
	})
}

// AddSale appends s to the sales ledger. It performs no stock check, see Sell.
func (b *Book) AddSale(ctx context.Context, s Sale) error {
	return b.updateSales(ctx, func(Ledger) error { return nil }, s)
}

// Sell appends s to the sales ledger after checking it with ValidateSale
// against the stock as stored. Concurrent sells of the same book cannot
// oversell.
func (b *Book) Sell(ctx context.Context, s Sale) error {
	return b.updateSales(ctx, func(l Ledger) error { return ValidateSale(l.Stock(), s) }, s)
}

// read loads both ledgers from the store. Absent keys are empty ledgers.
func (b *Book) read(ctx context.Context) (Ledger, error) {
	var l Ledger
	data, _, err := b.store.Get(ctx, PurchasesKey)
	if err != nil {
		return l, fmt.Errorf("could not load purchases: %w", err)
	}
	if l.Purchases, err = DecodePurchases(data); err != nil {
		return l, err
	}
	data, _, err = b.store.Get(ctx, SalesKey)
	if err != nil {
		return l, fmt.Errorf("could not load sales: %w", err)
	}
	if l.Sales, err = DecodeSales(data); err != nil {
		return l, err
	}
	return l, nil
}

// updateSales appends s to the stored sales once check accepts the stored
// ledger, persists the result and publishes it.
func (b *Book) updateSales(ctx context.Context, check func(Ledger) error, s Sale) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.read(ctx)
	if err != nil {
		return err
	}
	if err := check(current); err != nil {
		return err
	}
	next := current.Sales.Add(s)
	data, err := EncodeSales(next)
	if err != nil {
		return err
	}
	if err := b.store.Set(ctx, SalesKey, data); err != nil {
		return fmt.Errorf("could not save sales: %w", err)
	}
	b.snapshot.Store(&Ledger{Purchases: current.Purchases, Sales: next})
	b.logger.Info("sale recorded",
		zap.String("id", s.ID),
		zap.Stringer("part", s.PartKey),
		zap.Int64("quantity", s.Quantity))
	return nil
}

// updatePurchases applies update to the stored purchases ledger and persists
// the result, unless update reports no change.
//
// Each write starts from the stored ledgers, not from the snapshot, so that
// records written by another process through the same backend are kept.
func (b *Book) updatePurchases(ctx context.Context, update func(Purchases) (Purchases, bool)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.read(ctx)
	if err != nil {
		return err
	}
	next, changed := update(current.Purchases)
	if !changed {
		b.snapshot.Store(&current)
		return nil
	}
	data, err := EncodePurchases(next)
	if err != nil {
		return err
	}
	if err := b.store.Set(ctx, PurchasesKey, data); err != nil {
		return fmt.Errorf("could not save purchases: %w", err)
	}
	b.snapshot.Store(&Ledger{Purchases: next, Sales: current.Sales})
	b.logger.Info("purchases saved", zap.Int("count", len(next)))
	return nil
}

func (b *Book) reloadPurchases(data []byte) {
	ps, err := DecodePurchases(data)
	if err != nil {
		b.logger.Error("ignoring purchases update", zap.Error(err))
		return
	}
	for {
		current := b.snapshot.Load()
		if b.snapshot.CompareAndSwap(current, &Ledger{Purchases: ps, Sales: current.Sales}) {
			return
		}
	}
}

func (b *Book) reloadSales(data []byte) {
	ss, err := DecodeSales(data)
	if err != nil {
		b.logger.Error("ignoring sales update", zap.Error(err))
		return
	}
	for {
		current := b.snapshot.Load()
		if b.snapshot.CompareAndSwap(current, &Ledger{Purchases: current.Purchases, Sales: ss}) {
			return
		}
	}
}
