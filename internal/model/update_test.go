package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() []Trip {
	return []Trip{
		{ID: "t1", Name: "A", Categories: []Category{
			{ID: "c1", Name: "Gear", Items: []Item{{ID: "i1", Name: "Goggles"}, {ID: "i2", Name: "Gloves"}}},
			{ID: "c2", Name: "Food"},
		}},
		{ID: "t2", Name: "B"},
	}
}

func TestWithItemUpdated_CopiesOnlyChangedBranch(t *testing.T) {
	before := sample()
	snapshot := CloneTrips(before)

	after, ok := WithItemUpdated(before, "t1", "c1", "i2", func(it Item) Item {
		it.Packed = true
		return it
	})
	if !ok {
		t.Fatalf("expected item to be found")
	}
	if diff := cmp.Diff(snapshot, before); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
	if !after[0].Categories[0].Items[1].Packed {
		t.Fatalf("expected i2 packed")
	}
	if &after[1] == &before[1] {
		t.Fatalf("expected a new top-level slice")
	}
	// The untouched category keeps sharing its (nil) item storage.
	if after[0].Categories[1].Items != nil {
		t.Fatalf("expected untouched category to be unchanged")
	}
}

func TestWithItemUpdated_MissingTargets(t *testing.T) {
	trips := sample()
	id := func(it Item) Item { return it }
	cases := []struct{ trip, cat, item string }{
		{"nope", "c1", "i1"},
		{"t1", "nope", "i1"},
		{"t1", "c1", "nope"},
	}
	for _, tc := range cases {
		if _, ok := WithItemUpdated(trips, tc.trip, tc.cat, tc.item, id); ok {
			t.Fatalf("expected miss for %+v", tc)
		}
	}
}

func TestWithoutTripAndCategoryAndItem(t *testing.T) {
	trips := sample()
	rest, removed, ok := WithoutTrip(trips, "t1")
	if !ok || removed.ID != "t1" || len(rest) != 1 || rest[0].ID != "t2" {
		t.Fatalf("unexpected WithoutTrip result: ok=%v removed=%q rest=%+v", ok, removed.ID, rest)
	}
	if len(trips) != 2 {
		t.Fatalf("input slice changed length")
	}

	tr, ok := WithoutCategory(trips[0], "c1")
	if !ok || len(tr.Categories) != 1 || tr.Categories[0].ID != "c2" {
		t.Fatalf("unexpected WithoutCategory: %+v", tr.Categories)
	}
	if len(trips[0].Categories) != 2 {
		t.Fatalf("WithoutCategory mutated input")
	}

	c, ok := WithoutItem(trips[0].Categories[0], "i1")
	if !ok || len(c.Items) != 1 || c.Items[0].ID != "i2" {
		t.Fatalf("unexpected WithoutItem: %+v", c.Items)
	}
	if trips[0].Categories[0].Items[0].ID != "i1" {
		t.Fatalf("WithoutItem mutated input")
	}
}

func TestTripJSON_WireShape(t *testing.T) {
	b, err := json.Marshal([]Trip{{ID: "t", Name: "Ski", Categories: []Category{{ID: "c", Name: "Gear"}}}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"id":"t","name":"Ski","date":"","categories":[{"id":"c","name":"Gear","items":[]}]}]`
	if string(b) != want {
		t.Fatalf("wire shape:\n got %s\nwant %s", b, want)
	}

	var back []Trip
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[0].Categories[0].Name != "Gear" {
		t.Fatalf("unexpected round trip: %+v", back)
	}
}

func TestDefaultTrips_AllUnpacked(t *testing.T) {
	trips := DefaultTrips()
	if len(trips) != 2 || trips[0].Name != "Summer Vacation" || trips[1].Name != "Business Trip" {
		t.Fatalf("unexpected default trips: %+v", trips)
	}
	for _, tr := range trips {
		if packed, total := tr.Counts(); packed != 0 || total == 0 {
			t.Fatalf("trip %q: packed=%d total=%d", tr.Name, packed, total)
		}
	}
}
