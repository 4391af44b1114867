package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/idilsaglam/packlist/internal/store"
	"github.com/idilsaglam/packlist/internal/store/storetest"
)

func TestMemory_Contract(t *testing.T) {
	storetest.Run(t, store.NewMemory())
}

func TestMemory_FailWrites(t *testing.T) {
	m := store.NewMemory()
	m.FailWrites = errors.New("quota exceeded")
	if err := m.Set(context.Background(), "k", []byte("v")); err == nil {
		t.Fatalf("expected write failure")
	}
	if _, ok, _ := m.Get(context.Background(), "k"); ok {
		t.Fatalf("failed write must not store a value")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := store.Open("floppy", t.TempDir()); err == nil {
		t.Fatalf("expected unknown backend error")
	}
	kv, err := store.Open("Memory", "")
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	_ = kv.Close()
}
