package badgerstore

import (
	"context"
	"testing"

	"github.com/idilsaglam/packlist/internal/store/storetest"
)

func TestBadgerStore_Contract(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	storetest.Run(t, s)
}

func TestBadgerStore_InMemory(t *testing.T) {
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open in-memory: %v", err)
	}
	defer s.Close()
	if err := s.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(context.Background(), "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("got=%q ok=%v err=%v", got, ok, err)
	}
}
