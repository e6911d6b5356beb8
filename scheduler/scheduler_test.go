package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/etnz/partsledger"
)

type fixedStock []partsledger.StockItem

func (f fixedStock) Refresh(context.Context) error   { return nil }
func (f fixedStock) Stock() []partsledger.StockItem { return f }

func item(name string, qty int64) partsledger.StockItem {
	return partsledger.StockItem{PartKey: partsledger.NewPartKey(name, "M1", "P-"+name), Quantity: qty}
}

func TestCheckLowStock(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	s := New(fixedStock{item("Bolt", 10), item("Nut", 2), item("Gear", 0), item("Belt", -1)}, "@every 1h", 5, zap.New(core))

	low := s.CheckLowStock()
	require.Len(t, low, 3)
	assert.Equal(t, "Nut", low[0].ItemName)

	warnings := logs.FilterMessage("low stock").All()
	require.Len(t, warnings, 3)
	assert.Equal(t, int64(2), warnings[0].ContextMap()["quantity"])
}

func TestStart_InvalidSchedule(t *testing.T) {
	t.Parallel()

	s := New(fixedStock{}, "every tuesday", 5, nil)
	assert.Error(t, s.Start())
}

func TestStartStop(t *testing.T) {
	t.Parallel()

	s := New(fixedStock{}, "@every 1h", 5, nil)
	require.NoError(t, s.Start())
	s.Stop()
}

type failingStock struct{ fixedStock }

func (failingStock) Refresh(context.Context) error { return assert.AnError }

func TestCheckLowStock_RefreshFails(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	s := New(failingStock{fixedStock{item("Nut", 2)}}, "@every 1h", 5, zap.New(core))

	assert.Len(t, s.CheckLowStock(), 1)
	assert.Equal(t, 1, logs.FilterMessage("failed to reload the ledgers, checking the last known stock").Len())
}
