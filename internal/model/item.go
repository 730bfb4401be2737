package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/expiration-tracker/internal/expiry"
)

// ItemIDPrefix is prepended to every generated item ID.
const ItemIDPrefix = "item-"

// Item is a single tracked food item as stored in the item file.
type Item struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	ExpirationTime string `json:"expiration_time"` // expiry.NeverToken or expiry.Layout
}

// NewItem creates an item with a fresh ID
func NewItem(name string, exp expiry.Expiration) Item {
	return Item{
		ID:             generateItemID(),
		Name:           name,
		ExpirationTime: exp.String(),
	}
}

// EnsureID assigns an ID to records read from files written without one
func (it *Item) EnsureID() {
	if it.ID == "" {
		it.ID = generateItemID()
	}
}

// Expiration parses the stored expiration string
func (it Item) Expiration() (expiry.Expiration, error) {
	exp, err := expiry.ParseStored(it.ExpirationTime)
	if err != nil {
		return expiry.Expiration{}, fmt.Errorf("item %q: %w", it.Name, err)
	}
	return exp, nil
}

// NeverExpires returns true if the item is marked as never expiring
func (it Item) NeverExpires() bool {
	return strings.EqualFold(strings.TrimSpace(it.ExpirationTime), expiry.NeverToken)
}

// IsExpired returns true only for an absolute expiration strictly before now.
// Items with a stored value that does not parse are never reported expired.
func (it Item) IsExpired(now time.Time) bool {
	exp, err := it.Expiration()
	if err != nil {
		return false
	}
	return exp.Before(now)
}

// Status returns the remaining-time view used by the list
func (it Item) Status(now time.Time) expiry.Status {
	return expiry.DescribeStored(it.ExpirationTime, now)
}

// ShortID returns the trailing characters of the random part of the ID, enough
// to address an item from the command line.
func (it Item) ShortID() string {
	id := strings.TrimPrefix(it.ID, ItemIDPrefix)
	// UUID v7 starts with a millisecond timestamp; the tail is the random part
	if len(id) == 36 {
		return id[len(id)-8:]
	}
	return id
}

// generateItemID generates a unique item ID using UUID v7
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to a random v4 UUID if the clock-based variant fails
		return ItemIDPrefix + uuid.NewString()
	}
	return ItemIDPrefix + id.String()
}
