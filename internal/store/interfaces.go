package store

import (
	"time"

	"github.com/ytget/expiration-tracker/internal/model"
)

// Backend loads and saves the whole item collection.
type Backend interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

// ShelfLife resolves a food name to its default duration expression.
type ShelfLife interface {
	Lookup(name string) (string, bool)
}

// Tracker defines the interface the UI and CLI use to drive the store.
type Tracker interface {
	SetUpdateCallback(func([]model.Item))
	Add(name, rawExpiration string) (model.Item, error)
	Edit(id, name, rawExpiration string) (model.Item, error)
	Delete(id string) error
	PruneExpired(now time.Time) (int, error)
	Get(id string) (model.Item, bool)
	Lookup(ref string) (model.Item, error)
	List() []model.Item
	ListSorted() []model.Item
	Names() string
	Len() int
}
