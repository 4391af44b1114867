package packing

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/idilsaglam/packlist/internal/model"
)

type tripNames []model.Trip

func (t tripNames) String(i int) string { return t[i].Name }
func (t tripNames) Len() int            { return len(t) }

// FindTrips fuzzy-matches query against trip names, best match first. An
// empty query returns every trip in display order.
func (s *Store) FindTrips(query string) []model.Trip {
	trips := s.Trips()
	query = strings.TrimSpace(query)
	if query == "" {
		return trips
	}
	matches := fuzzy.FindFrom(query, tripNames(trips))
	out := make([]model.Trip, 0, len(matches))
	for _, m := range matches {
		out = append(out, trips[m.Index])
	}
	return out
}
