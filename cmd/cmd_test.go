package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/partsledger"
	"github.com/etnz/partsledger/config"
	"github.com/etnz/partsledger/date"
	"github.com/etnz/partsledger/kv"
)

func TestOpenStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := openStore(ctx, config.Store{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &kv.Memory{}, s)

	path := filepath.Join(t.TempDir(), "ledger.json")
	s, err = openStore(ctx, config.Store{Driver: config.DriverFile, DSN: path})
	require.NoError(t, err)
	assert.IsType(t, &kv.File{}, s)

	s, err = openStore(ctx, config.Store{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "ledger.db")})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = openStore(ctx, config.Store{Driver: "redis"})
	assert.Error(t, err)
}

func TestRangeFlags(t *testing.T) {
	t.Parallel()

	_, ok, err := (&rangeFlags{}).selected()
	require.NoError(t, err)
	assert.False(t, ok)

	rng, ok, err := (&rangeFlags{period: "month", date: "2025-02-14"}).selected()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2025-02", rng.String())

	_, _, err = (&rangeFlags{date: "2025-02-14"}).selected()
	assert.Error(t, err)

	_, _, err = (&rangeFlags{period: "fortnight"}).selected()
	assert.Error(t, err)
}

func TestEditApply(t *testing.T) {
	t.Parallel()

	current := partsledger.Purchase{
		ID:            "p1",
		PartKey:       partsledger.NewPartKey("Bolt", "M1", "B-1"),
		Quantity:      10,
		PurchasePrice: decimal.NewFromInt(100),
		Date:          date.MustParse("2025-01-10"),
	}

	c := &editCmd{}
	f := flag.NewFlagSet("edit", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-id", "p1", "-qty", "12", "-price", "95.5"}))

	got, err := c.apply(current, visited(f))
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, current.PartKey, got.PartKey)
	assert.Equal(t, int64(12), got.Quantity)
	assert.Equal(t, "95.5", got.PurchasePrice.String())
	assert.Equal(t, current.Date, got.Date)

	c = &editCmd{}
	f = flag.NewFlagSet("edit", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-id", "p1", "-qty", "0"}))
	_, err = c.apply(current, visited(f))
	assert.ErrorIs(t, err, partsledger.ErrInvalidInput)
}

func TestEntryFlags(t *testing.T) {
	t.Parallel()

	e := &entryFlags{}
	on, err := e.on()
	require.NoError(t, err)
	assert.Equal(t, date.Today(), on)

	e.price = "12,5"
	_, err = e.unitPrice()
	assert.Error(t, err)
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	c := Completion()
	for _, name := range []string{"buy", "edit", "delete", "sell", "stock", "purchases", "sales", "dashboard", "query", "serve", "topic"} {
		assert.Contains(t, c.Sub, name)
	}
}
