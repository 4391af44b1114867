package packing

import (
	"context"
	"fmt"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/notify"
)

type UndoKind int

const (
	UndoTrip UndoKind = iota
	UndoCategory
	UndoItem
)

func (k UndoKind) String() string {
	switch k {
	case UndoCategory:
		return "Category"
	case UndoItem:
		return "Item"
	default:
		return "Trip"
	}
}

// Undo is the value returned by a delete. It holds the removed trip (for
// UndoTrip) or the trip as it was before the delete. Apply it with
// Store.Undo; it works once.
type Undo struct {
	Kind  UndoKind
	Label string
	Trip  model.Trip

	used bool
}

// Used reports whether the undo was already applied.
func (u *Undo) Used() bool { return u.used }

// Undo restores what a delete removed and makes the restored trip current.
//
// A deleted trip is appended at the end. For category and item deletes the
// snapshot is restored; categories and items created after the delete are
// kept after the restored ones unless their name now collides with a
// restored entry, in which case the restored entry wins.
func (s *Store) Undo(ctx context.Context, u *Undo) error {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		return fmt.Errorf("nil undo")
	}
	if u.used {
		note = errorNote("Nothing to undo", ErrUndoUsed.Error())
		return ErrUndoUsed
	}

	restored := u.Trip.Clone()
	if u.Kind != UndoTrip {
		if cur, ok := s.findTrip(u.Trip.ID); ok {
			restored = mergeRestored(u.Trip, cur)
		}
	}

	trips, replaced := model.WithTripUpdated(s.trips, restored.ID, func(model.Trip) model.Trip { return restored })
	if !replaced {
		trips = make([]model.Trip, 0, len(s.trips)+1)
		trips = append(trips, s.trips...)
		trips = append(trips, restored)
	}

	u.used = true
	if err := s.commit(ctx, trips, restored.ID); err != nil {
		note = saveFailedNote(err)
		return err
	}
	note = successNote(u.Kind.String()+" restored", fmt.Sprintf("%s has been restored successfully", u.Label))
	return nil
}

// mergeRestored rebuilds snap on top of cur: snapshot categories and items
// come back exactly (packed flags included), and anything cur gained since is
// appended. cur's name and date are kept.
func mergeRestored(snap, cur model.Trip) model.Trip {
	out := snap.Clone()
	out.Name, out.Date = cur.Name, cur.Date

	snapCats := map[string]int{}
	for i, c := range out.Categories {
		snapCats[c.ID] = i
	}
	for _, c := range cur.Categories {
		i, ok := snapCats[c.ID]
		if !ok {
			if !hasCategoryNamed(out, c.Name) {
				out.Categories = append(out.Categories, c.Clone())
			}
			continue
		}
		rc := out.Categories[i]
		known := map[string]bool{}
		for _, it := range rc.Items {
			known[it.ID] = true
		}
		for _, it := range c.Items {
			if known[it.ID] || hasItemNamed(rc, it.Name) {
				continue
			}
			rc.Items = append(rc.Items, it)
		}
		out.Categories[i] = rc
	}
	return out
}

func hasCategoryNamed(t model.Trip, name string) bool {
	for _, c := range t.Categories {
		if sameName(c.Name, name) {
			return true
		}
	}
	return false
}

func hasItemNamed(c model.Category, name string) bool {
	for _, it := range c.Items {
		if sameName(it.Name, name) {
			return true
		}
	}
	return false
}
