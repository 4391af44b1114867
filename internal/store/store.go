// Package store holds the key-value persistence backends. A key maps to an
// opaque value; the packing store writes one JSON document per key.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// KV is a persistent key-value store. Get reports ok=false when the key is
// absent. Set replaces the whole value.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend names accepted by config and the --backend flag.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Opener builds a backend rooted at dir. Backends register themselves from
// their own packages so this package stays free of driver imports.
type Opener func(dir string) (KV, error)

var (
	openersMu sync.RWMutex
	openers   = map[string]Opener{
		BackendMemory: func(string) (KV, error) { return NewMemory(), nil },
	}
)

// Register makes a backend available to Open.
func Register(name string, fn Opener) {
	openersMu.Lock()
	defer openersMu.Unlock()
	openers[strings.ToLower(name)] = fn
}

// Open returns the named backend.
func Open(name, dir string) (KV, error) {
	openersMu.RLock()
	fn, ok := openers[strings.ToLower(strings.TrimSpace(name))]
	openersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown storage backend %q", name)
	}
	return fn(dir)
}

// Memory is an in-process KV used by tests and --backend memory.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites makes Set return this error, for exercising write failures.
	FailWrites error
	Writes     int
}

func NewMemory() *Memory { return &Memory{data: map[string][]byte{}} }

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = append([]byte(nil), value...)
	m.Writes++
	return nil
}

func (m *Memory) Close() error { return nil }
