package store

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ytget/expiration-tracker/internal/expiry"
	"github.com/ytget/expiration-tracker/internal/model"
)

// NamesSeparator joins item names for the clipboard
const NamesSeparator = ", "

// MinRefLength is the shortest ID suffix accepted by Lookup
const MinRefLength = 4

var _ Tracker = (*Store)(nil)

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used to resolve relative expirations
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store owns the item collection and persists it after every change
type Store struct {
	items      []model.Item
	itemsMutex sync.RWMutex
	backend    Backend
	shelfLife  ShelfLife
	now        func() time.Time
	onUpdate   func([]model.Item) // callback for UI updates
}

// New loads the collection from backend and returns a ready store
func New(backend Backend, shelfLife ShelfLife, opts ...Option) (*Store, error) {
	s := &Store{
		backend:   backend,
		shelfLife: shelfLife,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	items, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for i := range items {
		if seen[items[i].ID] {
			items[i].ID = ""
		}
		items[i].EnsureID()
		seen[items[i].ID] = true
	}
	s.items = items

	log.Printf("Loaded %d items", len(items))
	return s, nil
}

// SetUpdateCallback sets the callback invoked with the sorted collection
// after each successful change
func (s *Store) SetUpdateCallback(callback func([]model.Item)) {
	s.itemsMutex.Lock()
	defer s.itemsMutex.Unlock()
	s.onUpdate = callback
}

// Add creates a new item. An empty expiration falls back to the shelf-life
// table entry for the name.
func (s *Store) Add(name, rawExpiration string) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, ErrEmptyName
	}

	raw := strings.TrimSpace(rawExpiration)
	if raw == "" {
		d, ok := s.lookupDefault(name)
		if !ok {
			return model.Item{}, fmt.Errorf("%w: %s", ErrMissingExpiration, name)
		}
		raw = d
	}

	exp, err := expiry.ResolveExpiration(raw, s.now())
	if err != nil {
		return model.Item{}, err
	}
	item := model.NewItem(name, exp)

	s.itemsMutex.Lock()
	next := make([]model.Item, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, item)
	err = s.commit(next)
	s.itemsMutex.Unlock()
	if err != nil {
		return model.Item{}, err
	}

	log.Printf("Added item %s: name=%q expiration=%s", item.ID, item.Name, item.ExpirationTime)
	s.notifyUpdate()
	return item, nil
}

// Edit replaces the name and expiration of an existing item. A canonical
// timestamp is kept as-is, so submitting the pre-filled value does not move
// the expiration.
func (s *Store) Edit(id, name, rawExpiration string) (model.Item, error) {
	name = strings.TrimSpace(name)
	raw := strings.TrimSpace(rawExpiration)
	if name == "" {
		return model.Item{}, ErrEmptyName
	}
	if raw == "" {
		return model.Item{}, ErrMissingExpiration
	}

	exp, err := expiry.ResolveExpiration(raw, s.now())
	if err != nil {
		return model.Item{}, err
	}

	s.itemsMutex.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.itemsMutex.Unlock()
		return model.Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next := append([]model.Item(nil), s.items...)
	next[idx].Name = name
	next[idx].ExpirationTime = exp.String()
	item := next[idx]
	err = s.commit(next)
	s.itemsMutex.Unlock()
	if err != nil {
		return model.Item{}, err
	}

	log.Printf("Updated item %s: name=%q expiration=%s", item.ID, item.Name, item.ExpirationTime)
	s.notifyUpdate()
	return item, nil
}

// Delete removes an item by ID
func (s *Store) Delete(id string) error {
	s.itemsMutex.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.itemsMutex.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next := make([]model.Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	err := s.commit(next)
	s.itemsMutex.Unlock()
	if err != nil {
		return err
	}

	log.Printf("Deleted item %s", id)
	s.notifyUpdate()
	return nil
}

// PruneExpired removes every item whose expiration is strictly before now
// and returns how many were removed. Never-expiring items and items whose
// stored expiration does not parse are kept.
func (s *Store) PruneExpired(now time.Time) (int, error) {
	s.itemsMutex.Lock()
	next := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		if !item.IsExpired(now) {
			next = append(next, item)
		}
	}
	removed := len(s.items) - len(next)
	if removed == 0 {
		s.itemsMutex.Unlock()
		return 0, nil
	}
	err := s.commit(next)
	s.itemsMutex.Unlock()
	if err != nil {
		return 0, err
	}

	log.Printf("Pruned %d expired items", removed)
	s.notifyUpdate()
	return removed, nil
}

// Get returns an item by ID
func (s *Store) Get(id string) (model.Item, bool) {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Item{}, false
	}
	return s.items[idx], true
}

// Lookup resolves a full ID or a unique ID suffix (as printed by ShortID)
func (s *Store) Lookup(ref string) (model.Item, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Item{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()

	for _, candidate := range []string{ref, model.ItemIDPrefix + ref} {
		if idx := s.indexOf(candidate); idx >= 0 {
			return s.items[idx], nil
		}
	}
	if len(ref) < MinRefLength {
		return model.Item{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}

	var matches []model.Item
	for _, item := range s.items {
		if strings.HasSuffix(item.ID, ref) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return model.Item{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.Item{}, fmt.Errorf("%w: %s matches %d items", ErrAmbiguousID, ref, len(matches))
	}
}

// List returns a copy of the collection in storage order
func (s *Store) List() []model.Item {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	return append([]model.Item(nil), s.items...)
}

// ListSorted returns a copy of the collection in display order
func (s *Store) ListSorted() []model.Item {
	items := s.List()
	SortItems(items)
	return items
}

// Names returns every item name in display order joined by NamesSeparator
func (s *Store) Names() string {
	items := s.ListSorted()
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return strings.Join(names, NamesSeparator)
}

// Len returns the number of items
func (s *Store) Len() int {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	return len(s.items)
}

// SortItems orders items for display: never-expiring items last, everything
// else by the stored timestamp string. The zero-padded layout makes string
// order chronological. The sort is stable.
func SortItems(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		ni, nj := items[i].NeverExpires(), items[j].NeverExpires()
		if ni != nj {
			return nj
		}
		return items[i].ExpirationTime < items[j].ExpirationTime
	})
}

// commit saves next and, only if that succeeds, makes it the current
// collection. Callers hold itemsMutex.
func (s *Store) commit(next []model.Item) error {
	if err := s.backend.Save(next); err != nil {
		log.Printf("Failed to save %d items: %v", len(next), err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.items = next
	return nil
}

// indexOf returns the position of the item with id, or -1. Callers hold itemsMutex.
func (s *Store) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) lookupDefault(name string) (string, bool) {
	if s.shelfLife == nil {
		return "", false
	}
	return s.shelfLife.Lookup(name)
}

// notifyUpdate calls the update callback if set
func (s *Store) notifyUpdate() {
	s.itemsMutex.RLock()
	callback := s.onUpdate
	s.itemsMutex.RUnlock()

	if callback != nil {
		callback(s.ListSorted())
	}
}
