package model

import "encoding/json"

// Item is a single packable thing.
type Item struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Packed bool   `json:"packed"`
}

// Category groups items inside a trip, e.g. "Clothing".
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Trip is the top-level planning unit. Date is an ISO calendar date
// (YYYY-MM-DD) or empty.
type Trip struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Date       string     `json:"date"`
	Categories []Category `json:"categories"`
}

// MarshalJSON keeps an empty item list as [] on the wire.
func (c Category) MarshalJSON() ([]byte, error) {
	type wire Category
	w := wire(c)
	if w.Items == nil {
		w.Items = []Item{}
	}
	return json.Marshal(w)
}

// MarshalJSON keeps an empty category list as [] on the wire.
func (t Trip) MarshalJSON() ([]byte, error) {
	type wire Trip
	w := wire(t)
	if w.Categories == nil {
		w.Categories = []Category{}
	}
	return json.Marshal(w)
}

// Counts returns packed and total item counts over every category.
func (t Trip) Counts() (packed, total int) {
	for _, c := range t.Categories {
		for _, it := range c.Items {
			total++
			if it.Packed {
				packed++
			}
		}
	}
	return
}

// Category looks up a category by id.
func (t Trip) Category(id string) (Category, bool) {
	for _, c := range t.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Item looks up an item by id.
func (c Category) Item(id string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Clone returns a deep copy so callers can't reach into the store's slices.
func (t Trip) Clone() Trip {
	out := t
	out.Categories = nil
	if t.Categories != nil {
		out.Categories = make([]Category, len(t.Categories))
		for i, c := range t.Categories {
			out.Categories[i] = c.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	out := c
	if c.Items != nil {
		out.Items = make([]Item, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}

// CloneTrips deep-copies a collection.
func CloneTrips(trips []Trip) []Trip {
	if trips == nil {
		return nil
	}
	out := make([]Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}
