// Package kv defines the durable key-value store where the ledgers are
// persisted, and provides memory and JSON file backends.
//
// Values are opaque bytes (JSON documents in practice). A Set either fully
// succeeds or leaves the previous value in place.
package kv

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"sync"
)

// Store is a durable key-value store.
type Store interface {
	// Get returns the value of key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set replaces the value of key and notifies its subscribers.
	Set(ctx context.Context, key string, value []byte) error
	// Subscribe registers fn to be called with the new value after each
	// successful Set of key. The returned function cancels the subscription.
	Subscribe(key string, fn func(value []byte)) (cancel func())
	// Close releases the resources held by the store.
	Close() error
}

// Notifier dispatches change notifications. Its zero value is ready to use.
//
// Backends embed a Notifier to implement Store.Subscribe, and call Notify
// after a successful write.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func([]byte)
}

// Subscribe registers fn for key.
func (n *Notifier) Subscribe(key string, fn func(value []byte)) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[string]map[int]func([]byte))
	}
	if n.subs[key] == nil {
		n.subs[key] = make(map[int]func([]byte))
	}
	id := n.next
	n.next++
	n.subs[key][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs[key], id)
		})
	}
}

// Notify calls the subscribers of key with value, in subscription order.
// Subscribers are called outside of any lock and may call back into the store.
func (n *Notifier) Notify(key string, value []byte) {
	n.mu.Lock()
	subs := n.subs[key]
	ids := slices.Sorted(maps.Keys(subs))
	fns := make([]func([]byte), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, subs[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(bytes.Clone(value))
	}
}

// Memory is an in-memory Store, mostly useful for tests.
type Memory struct {
	Notifier
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return bytes.Clone(v), ok, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.values[key] = bytes.Clone(value)
	m.mu.Unlock()
	m.Notify(key, value)
	return nil
}

func (m *Memory) Close() error { return nil }
