package store

import "errors"

var (
	// ErrEmptyName is returned when an item name is blank.
	ErrEmptyName = errors.New("item name is empty")

	// ErrMissingExpiration is returned when no expiration was given and the
	// shelf-life table has no entry for the name.
	ErrMissingExpiration = errors.New("no expiration given and no default for this item")

	// ErrNotFound is returned when an item reference no longer resolves.
	ErrNotFound = errors.New("item not found")

	// ErrAmbiguousID is returned when a short ID matches several items.
	ErrAmbiguousID = errors.New("item reference is ambiguous")

	// ErrPersistence wraps a failed write of the item file. The in-memory
	// collection is unchanged when it is returned.
	ErrPersistence = errors.New("failed to save items")
)
