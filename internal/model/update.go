package model

// Copy-on-write helpers. Each returns a new top-level slice; only the branch
// that changed is copied, untouched trips/categories keep sharing storage.
// The bool result reports whether the target was found.

// WithTripUpdated replaces the trip with id using fn.
func WithTripUpdated(trips []Trip, id string, fn func(Trip) Trip) ([]Trip, bool) {
	for i, t := range trips {
		if t.ID != id {
			continue
		}
		out := make([]Trip, len(trips))
		copy(out, trips)
		out[i] = fn(t)
		return out, true
	}
	return trips, false
}

// WithCategoryUpdated replaces one category of one trip using fn.
func WithCategoryUpdated(trips []Trip, tripID, categoryID string, fn func(Category) Category) ([]Trip, bool) {
	found := false
	out, ok := WithTripUpdated(trips, tripID, func(t Trip) Trip {
		for i, c := range t.Categories {
			if c.ID != categoryID {
				continue
			}
			cats := make([]Category, len(t.Categories))
			copy(cats, t.Categories)
			cats[i] = fn(c)
			t.Categories = cats
			found = true
			break
		}
		return t
	})
	if !ok || !found {
		return trips, false
	}
	return out, true
}

// WithItemUpdated replaces one item using fn.
func WithItemUpdated(trips []Trip, tripID, categoryID, itemID string, fn func(Item) Item) ([]Trip, bool) {
	found := false
	out, ok := WithCategoryUpdated(trips, tripID, categoryID, func(c Category) Category {
		for i, it := range c.Items {
			if it.ID != itemID {
				continue
			}
			items := make([]Item, len(c.Items))
			copy(items, c.Items)
			items[i] = fn(it)
			c.Items = items
			found = true
			break
		}
		return c
	})
	if !ok || !found {
		return trips, false
	}
	return out, true
}

// WithoutTrip drops the trip with id and returns it.
func WithoutTrip(trips []Trip, id string) ([]Trip, Trip, bool) {
	for i, t := range trips {
		if t.ID != id {
			continue
		}
		out := make([]Trip, 0, len(trips)-1)
		out = append(out, trips[:i]...)
		out = append(out, trips[i+1:]...)
		return out, t, true
	}
	return trips, Trip{}, false
}

// WithoutCategory drops a category from a trip.
func WithoutCategory(t Trip, id string) (Trip, bool) {
	for i, c := range t.Categories {
		if c.ID != id {
			continue
		}
		cats := make([]Category, 0, len(t.Categories)-1)
		cats = append(cats, t.Categories[:i]...)
		cats = append(cats, t.Categories[i+1:]...)
		t.Categories = cats
		return t, true
	}
	return t, false
}

// WithoutItem drops an item from a category.
func WithoutItem(c Category, id string) (Category, bool) {
	for i, it := range c.Items {
		if it.ID != id {
			continue
		}
		items := make([]Item, 0, len(c.Items)-1)
		items = append(items, c.Items[:i]...)
		items = append(items, c.Items[i+1:]...)
		c.Items = items
		return c, true
	}
	return c, false
}
