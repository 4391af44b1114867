package cli

import (
	"strings"

	"github.com/idilsaglam/packlist/internal/model"
)

// Commands take references that are either an id or a case-insensitive name.

func resolveTrip(trips []model.Trip, ref string) (model.Trip, error) {
	ref = strings.TrimSpace(ref)
	var hits []model.Trip
	for _, t := range trips {
		if t.ID == ref {
			return t, nil
		}
		if strings.EqualFold(strings.TrimSpace(t.Name), ref) {
			hits = append(hits, t)
		}
	}
	switch len(hits) {
	case 0:
		return model.Trip{}, usagef("no trip matches %q", ref)
	case 1:
		return hits[0], nil
	}
	return model.Trip{}, usagef("%d trips are named %q; use an id", len(hits), ref)
}

func resolveCategory(t model.Trip, ref string) (model.Category, error) {
	ref = strings.TrimSpace(ref)
	for _, c := range t.Categories {
		if c.ID == ref || strings.EqualFold(strings.TrimSpace(c.Name), ref) {
			return c, nil
		}
	}
	return model.Category{}, usagef("no category in %s matches %q", t.Name, ref)
}

func resolveItem(c model.Category, ref string) (model.Item, error) {
	ref = strings.TrimSpace(ref)
	for _, it := range c.Items {
		if it.ID == ref || strings.EqualFold(strings.TrimSpace(it.Name), ref) {
			return it, nil
		}
	}
	return model.Item{}, usagef("no item in %s matches %q", c.Name, ref)
}

// tripOrCurrent resolves ref, or picks the first trip when ref is empty.
func tripOrCurrent(trips []model.Trip, ref string) (model.Trip, error) {
	if strings.TrimSpace(ref) != "" {
		return resolveTrip(trips, ref)
	}
	if len(trips) == 0 {
		return model.Trip{}, usagef("no trips yet; add one with `packlist trips add`")
	}
	return trips[0], nil
}
