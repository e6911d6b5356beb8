// Package kvtest checks that a kv.Store implementation behaves as expected.
package kvtest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/partsledger/kv"
)

// Run runs the conformance tests against stores returned by open. Each test
// gets a fresh, empty store.
func Run(t *testing.T, open func(t *testing.T) kv.Store) {
	t.Helper()

	t.Run("absent key", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Get(context.Background(), "purchases")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "purchases", []byte(`[{"id":"1"}]`)))
		require.NoError(t, s.Set(ctx, "deletePassword", []byte(`"1234"`)))

		v, ok, err := s.Get(ctx, "purchases")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":"1"}]`, string(v))

		v, ok, err = s.Get(ctx, "deletePassword")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `"1234"`, string(v))
	})

	t.Run("overwrite", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "sales", []byte(`[]`)))
		require.NoError(t, s.Set(ctx, "sales", []byte(`[{"id":"2"}]`)))

		v, _, err := s.Get(ctx, "sales")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"2"}]`, string(v))
	})

	t.Run("subscribe", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		var mu sync.Mutex
		var got []string
		cancel := s.Subscribe("sales", func(v []byte) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, string(v))
		})

		require.NoError(t, s.Set(ctx, "sales", []byte(`[1]`)))
		require.NoError(t, s.Set(ctx, "purchases", []byte(`[2]`))) // other key
		cancel()
		require.NoError(t, s.Set(ctx, "sales", []byte(`[3]`))) // after cancel

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, got, 1)
		assert.JSONEq(t, `[1]`, got[0])
	})

	t.Run("canceled context", func(t *testing.T) {
		s := open(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, s.Set(ctx, "sales", []byte(`[]`)))
	})
}
