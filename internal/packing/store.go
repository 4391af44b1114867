// Package packing owns the trip collection: every create/update/delete goes
// through Store, which persists the whole collection after each change and
// reports the outcome to a notify.Sink.
package packing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/notify"
	"github.com/idilsaglam/packlist/internal/store"
)

// DefaultKey is the storage key holding the serialized trips.
const DefaultKey = "packingListTrips"

type (
	IDFunc func() string
	Clock  func() time.Time
)

// Store is safe for concurrent use; mutations are serialized and always
// apply to the latest collection.
type Store struct {
	kv    store.KV
	key   string
	sink  notify.Sink
	newID IDFunc
	now   Clock

	mu        sync.Mutex
	trips     []model.Trip
	currentID string
	progress  int
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithSink(sink notify.Sink) Option {
	return func(s *Store) {
		if sink != nil {
			s.sink = sink
		}
	}
}

func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithClock(fn Clock) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// New returns an empty store. Call Load before use.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		key:   DefaultKey,
		sink:  notify.Discard,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load adopts the persisted collection. When nothing is stored yet the
// default dataset is written. Read or decode failures fall back to the
// default dataset without writing it; the returned *PersistenceError is
// informational and the store stays usable either way.
func (s *Store) Load(ctx context.Context) error {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.adopt(model.DefaultTrips())
		perr := &PersistenceError{Op: "load", Err: err}
		note = errorNote("Failed to load trips", perr.Error())
		logging.Info("packing", "load %s failed, using defaults: %v", s.key, err)
		return perr
	}
	if !ok {
		s.adopt(model.DefaultTrips())
		logging.Info("packing", "no saved trips under %s, writing defaults", s.key)
		if err := s.persist(ctx); err != nil {
			note = saveFailedNote(err)
			return err
		}
		return nil
	}

	var trips []model.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		s.adopt(model.DefaultTrips())
		perr := &PersistenceError{Op: "decode", Err: err}
		note = errorNote("Failed to load trips", perr.Error())
		logging.Info("packing", "decode %s failed, using defaults: %v", s.key, err)
		return perr
	}
	s.adopt(trips)
	logging.Debug("packing", "loaded %d trips", len(trips))
	return nil
}

func (s *Store) adopt(trips []model.Trip) {
	s.trips = trips
	s.currentID = ""
	if len(trips) > 0 {
		s.currentID = trips[0].ID
	}
	s.refreshProgress()
}

// Trips returns a deep copy of the collection in display order.
func (s *Store) Trips() []model.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneTrips(s.trips)
}

// Trip returns one trip by id.
func (s *Store) Trip(id string) (model.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.findTrip(id)
	if !ok {
		return model.Trip{}, false
	}
	return t.Clone(), true
}

// Current returns the trip being displayed, if any.
func (s *Store) Current() (model.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.findTrip(s.currentID)
	if !ok {
		return model.Trip{}, false
	}
	return t.Clone(), true
}

// CurrentProgress is the packing progress of the current trip, 0 when none.
func (s *Store) CurrentProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// SelectTrip makes id the current trip. Selection is not persisted.
func (s *Store) SelectTrip(id string) error {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findTrip(id); !ok {
		err := notFound("trip", id)
		note = failNote("Failed to change trip", err)
		return err
	}
	s.currentID = id
	s.refreshProgress()
	return nil
}

// AddTrip appends a trip with no categories and makes it current.
func (s *Store) AddTrip(ctx context.Context, name, date string) (model.Trip, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := s.checkTripName(name)
	if err != nil {
		note = failNote("Failed to create trip", err)
		return model.Trip{}, err
	}
	date, err = s.checkDate(date)
	if err != nil {
		note = failNote("Failed to create trip", err)
		return model.Trip{}, err
	}

	t := model.Trip{ID: s.newID(), Name: name, Date: date, Categories: []model.Category{}}
	trips := make([]model.Trip, 0, len(s.trips)+1)
	trips = append(trips, s.trips...)
	trips = append(trips, t)

	if err := s.commit(ctx, trips, t.ID); err != nil {
		note = saveFailedNote(err)
		return t.Clone(), err
	}
	note = successNote("Trip created", fmt.Sprintf("%s has been created successfully", t.Name))
	return t.Clone(), nil
}

// EditTrip renames/redates a trip in place. The past-date check only applies
// when the date actually changes.
func (s *Store) EditTrip(ctx context.Context, id, name, date string) (model.Trip, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.findTrip(id)
	if !ok {
		err := notFound("trip", id)
		note = failNote("Failed to update trip", err)
		return model.Trip{}, err
	}
	name, err := s.checkTripName(name)
	if err != nil {
		note = failNote("Failed to update trip", err)
		return model.Trip{}, err
	}
	if d := strings.TrimSpace(date); d != old.Date {
		if date, err = s.checkDate(d); err != nil {
			note = failNote("Failed to update trip", err)
			return model.Trip{}, err
		}
	} else {
		date = old.Date
	}

	var updated model.Trip
	trips, _ := model.WithTripUpdated(s.trips, id, func(t model.Trip) model.Trip {
		t.Name, t.Date = name, date
		updated = t
		return t
	})
	if err := s.commit(ctx, trips, id); err != nil {
		note = saveFailedNote(err)
		return updated.Clone(), err
	}
	note = successNote("Trip updated", fmt.Sprintf("%s has been updated successfully", updated.Name))
	return updated.Clone(), nil
}

// DeleteTrip removes a trip. If it was current, the first remaining trip
// becomes current. The returned Undo re-adds it.
func (s *Store) DeleteTrip(ctx context.Context, id string) (*Undo, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, removed, ok := model.WithoutTrip(s.trips, id)
	if !ok {
		err := notFound("trip", id)
		note = failNote("Failed to delete trip", err)
		return nil, err
	}
	current := s.currentID
	if current == id {
		current = ""
		if len(trips) > 0 {
			current = trips[0].ID
		}
	}

	u := &Undo{Kind: UndoTrip, Label: removed.Name, Trip: removed.Clone()}
	if err := s.commit(ctx, trips, current); err != nil {
		note = saveFailedNote(err)
		return u, err
	}
	note = s.undoNote("Trip deleted", removed.Name, u)
	return u, nil
}

// AddCategory appends an empty category to a trip.
func (s *Store) AddCategory(ctx context.Context, tripID, name string) (model.Category, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.findTrip(tripID)
	if !ok {
		err := notFound("trip", tripID)
		note = failNote("Failed to add category", err)
		return model.Category{}, err
	}
	name, err := checkCategoryName(t, name)
	if err != nil {
		note = failNote("Failed to add category", err)
		return model.Category{}, err
	}

	c := model.Category{ID: s.newID(), Name: name, Items: []model.Item{}}
	trips, _ := model.WithTripUpdated(s.trips, tripID, func(t model.Trip) model.Trip {
		cats := make([]model.Category, 0, len(t.Categories)+1)
		cats = append(cats, t.Categories...)
		t.Categories = append(cats, c)
		return t
	})
	if err := s.commit(ctx, trips, s.currentID); err != nil {
		note = saveFailedNote(err)
		return c.Clone(), err
	}
	note = successNote("Category added", fmt.Sprintf("%s has been added successfully", c.Name))
	return c.Clone(), nil
}

// DeleteCategory removes a category with all its items.
func (s *Store) DeleteCategory(ctx context.Context, tripID, categoryID string) (*Undo, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.findTrip(tripID)
	if !ok {
		err := notFound("trip", tripID)
		note = failNote("Failed to delete category", err)
		return nil, err
	}
	updated, ok := model.WithoutCategory(t, categoryID)
	if !ok {
		err := notFound("category", categoryID)
		note = failNote("Failed to delete category", err)
		return nil, err
	}
	removed, _ := t.Category(categoryID)

	u := &Undo{Kind: UndoCategory, Label: removed.Name, Trip: t.Clone()}
	trips, _ := model.WithTripUpdated(s.trips, tripID, func(model.Trip) model.Trip { return updated })
	if err := s.commit(ctx, trips, s.currentID); err != nil {
		note = saveFailedNote(err)
		return u, err
	}
	note = s.undoNote("Category deleted", removed.Name, u)
	return u, nil
}

// AddItem appends an unpacked item to a category.
func (s *Store) AddItem(ctx context.Context, tripID, categoryID, name string) (model.Item, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.findCategory(tripID, categoryID)
	if err != nil {
		note = failNote("Failed to add item", err)
		return model.Item{}, err
	}
	name, err = checkItemName(c, name)
	if err != nil {
		note = failNote("Failed to add item", err)
		return model.Item{}, err
	}

	it := model.Item{ID: s.newID(), Name: name}
	trips, _ := model.WithCategoryUpdated(s.trips, tripID, categoryID, func(c model.Category) model.Category {
		items := make([]model.Item, 0, len(c.Items)+1)
		items = append(items, c.Items...)
		c.Items = append(items, it)
		return c
	})
	if err := s.commit(ctx, trips, s.currentID); err != nil {
		note = saveFailedNote(err)
		return it, err
	}
	note = successNote("Item added", fmt.Sprintf("%s has been added successfully", it.Name))
	return it, nil
}

// ToggleItem flips an item's packed flag. Success is silent.
func (s *Store) ToggleItem(ctx context.Context, tripID, categoryID, itemID string) (model.Item, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	var toggled model.Item
	trips, ok := model.WithItemUpdated(s.trips, tripID, categoryID, itemID, func(it model.Item) model.Item {
		it.Packed = !it.Packed
		toggled = it
		return it
	})
	if !ok {
		err := s.missing(tripID, categoryID, itemID)
		note = failNote("Failed to update item", err)
		return model.Item{}, err
	}
	if err := s.commit(ctx, trips, s.currentID); err != nil {
		note = saveFailedNote(err)
		return toggled, err
	}
	return toggled, nil
}

// DeleteItem removes one item.
func (s *Store) DeleteItem(ctx context.Context, tripID, categoryID, itemID string) (*Undo, error) {
	var note *notify.Notification
	defer func() { s.emit(note) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	t, _ := s.findTrip(tripID)
	var removed model.Item
	trips, ok := model.WithCategoryUpdated(s.trips, tripID, categoryID, func(c model.Category) model.Category {
		removed, _ = c.Item(itemID)
		c, _ = model.WithoutItem(c, itemID)
		return c
	})
	if !ok || removed.ID == "" {
		err := s.missing(tripID, categoryID, itemID)
		note = failNote("Failed to delete item", err)
		return nil, err
	}

	u := &Undo{Kind: UndoItem, Label: removed.Name, Trip: t.Clone()}
	if err := s.commit(ctx, trips, s.currentID); err != nil {
		note = saveFailedNote(err)
		return u, err
	}
	note = s.undoNote("Item deleted", removed.Name, u)
	return u, nil
}

// Progress is round-half-up(100*packed/total) over the trip's items, 0 when
// the trip has no items.
func (s *Store) Progress(tripID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.findTrip(tripID)
	if !ok {
		return 0, notFound("trip", tripID)
	}
	return Progress(t), nil
}

// Counts returns packed and total items of a trip.
func (s *Store) Counts(tripID string) (packed, total int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.findTrip(tripID)
	if !ok {
		return 0, 0, notFound("trip", tripID)
	}
	packed, total = t.Counts()
	return packed, total, nil
}

// Progress computes the packing percentage of t.
func Progress(t model.Trip) int {
	packed, total := t.Counts()
	if total == 0 {
		return 0
	}
	return (200*packed + total) / (2 * total)
}

// commit swaps in the new collection and writes it through. On a write
// failure the new state is kept and a *PersistenceError is returned.
func (s *Store) commit(ctx context.Context, trips []model.Trip, currentID string) error {
	s.trips = trips
	s.currentID = currentID
	if _, ok := s.findTrip(currentID); !ok {
		s.currentID = ""
	}
	s.refreshProgress()
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	trips := s.trips
	if trips == nil {
		trips = []model.Trip{}
	}
	b, err := json.Marshal(trips)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := s.kv.Set(ctx, s.key, b); err != nil {
		logging.Info("packing", "save %s failed: %v", s.key, err)
		return &PersistenceError{Op: "save", Err: err}
	}
	logging.Debug("packing", "saved %d trips (%d bytes)", len(trips), len(b))
	return nil
}

func (s *Store) refreshProgress() {
	s.progress = 0
	if t, ok := s.findTrip(s.currentID); ok {
		s.progress = Progress(t)
	}
}

func (s *Store) findTrip(id string) (model.Trip, bool) {
	if id == "" {
		return model.Trip{}, false
	}
	for _, t := range s.trips {
		if t.ID == id {
			return t, true
		}
	}
	return model.Trip{}, false
}

func (s *Store) findCategory(tripID, categoryID string) (model.Category, error) {
	t, ok := s.findTrip(tripID)
	if !ok {
		return model.Category{}, notFound("trip", tripID)
	}
	c, ok := t.Category(categoryID)
	if !ok {
		return model.Category{}, notFound("category", categoryID)
	}
	return c, nil
}

// missing reports the outermost id that failed to resolve.
func (s *Store) missing(tripID, categoryID, itemID string) error {
	c, err := s.findCategory(tripID, categoryID)
	if err != nil {
		return err
	}
	if _, ok := c.Item(itemID); !ok {
		return notFound("item", itemID)
	}
	return nil
}

func (s *Store) emit(n *notify.Notification) {
	if n != nil {
		s.sink.Notify(*n)
	}
}

func (s *Store) undoNote(title, name string, u *Undo) *notify.Notification {
	n := successNote(title, fmt.Sprintf("%s has been deleted", name))
	n.Action = &notify.Action{
		Label: "Undo",
		Run:   func() { _ = s.Undo(context.Background(), u) },
	}
	return n
}

func successNote(title, desc string) *notify.Notification {
	return &notify.Notification{Kind: notify.Success, Title: title, Description: desc}
}

func errorNote(title, desc string) *notify.Notification {
	return &notify.Notification{Kind: notify.Error, Title: title, Description: desc}
}

// failNote prefers a validation error's own title.
func failNote(title string, err error) *notify.Notification {
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Title != "" {
		return errorNote(verr.Title, verr.Message)
	}
	return errorNote(title, err.Error())
}

func saveFailedNote(err error) *notify.Notification {
	return errorNote("Failed to save changes", err.Error()+" (the change may not survive a reload)")
}
