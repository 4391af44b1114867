// Package storetest holds the behavior every store.KV backend must share.
package storetest

import (
	"context"
	"testing"

	"github.com/idilsaglam/packlist/internal/store"
)

// Run exercises absent reads, overwrite and key isolation against kv.
func Run(t *testing.T, kv store.KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "packingListTrips"); err != nil || ok {
		t.Fatalf("expected absent key; ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "packingListTrips", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "packingListTrips", []byte(`[{"id":"t"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := kv.Get(ctx, "packingListTrips")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"t"}]` {
		t.Fatalf("expected overwritten value, got %q", got)
	}

	if err := kv.Set(ctx, "other", []byte(`x`)); err != nil {
		t.Fatalf("set other: %v", err)
	}
	got, _, _ = kv.Get(ctx, "packingListTrips")
	if string(got) != `[{"id":"t"}]` {
		t.Fatalf("keys are not isolated, got %q", got)
	}
}
