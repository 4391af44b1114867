package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/packlist/internal/store"
	"github.com/idilsaglam/packlist/internal/store/storetest"
)

func TestJSONStore_Contract(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	storetest.Run(t, s)
}

func TestJSONStore_WritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Set(context.Background(), "packingListTrips", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "packingListTrips.json"))
	if err != nil {
		t.Fatalf("expected packingListTrips.json: %v", err)
	}
	if string(b) != `[]` {
		t.Fatalf("unexpected contents %q", b)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, got %d entries", len(entries))
	}
}

func TestJSONStore_SanitizesKey(t *testing.T) {
	s, _ := New(t.TempDir())
	if got := filepath.Base(s.Path("../trips/x")); got != ".._trips_x.json" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestJSONStore_Registered(t *testing.T) {
	kv, err := store.Open(store.BackendJSON, t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := kv.(*Store); !ok {
		t.Fatalf("expected *jsonstore.Store, got %T", kv)
	}
}
