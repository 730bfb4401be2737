package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/expiration-tracker/internal/expiry"
	"github.com/ytget/expiration-tracker/internal/model"
	"github.com/ytget/expiration-tracker/internal/store"
)

// RemainingText returns the localized time left for item and its level
func RemainingText(item model.Item, now time.Time, loc *Localization) (string, expiry.Level) {
	status := item.Status(now)
	switch status.Level {
	case expiry.LevelNever:
		return loc.GetText(KeyNever), status.Level
	case expiry.LevelExpired:
		return loc.GetText(KeyExpired), status.Level
	case expiry.LevelUnknown:
		return loc.GetText(KeyUnknown), status.Level
	}

	exp, err := item.Expiration()
	if err != nil {
		return loc.GetText(KeyUnknown), expiry.LevelUnknown
	}
	days, hours := expiry.SplitRemaining(exp.At.Sub(now))
	return fmt.Sprintf(loc.GetText(KeyRemainingFormat), days, hours), status.Level
}

// RowText returns the list line for item, "{name} - Expires in {remaining}"
func RowText(item model.Item, now time.Time, loc *Localization) (string, expiry.Level) {
	remaining, level := RemainingText(item, now, loc)
	return fmt.Sprintf(loc.GetText(KeyRowFormat), cleanName(item.Name), remaining), level
}

// ErrorMessage maps a store or parser error to a user message. severe is
// true when the change could not be written to disk.
func ErrorMessage(err error, loc *Localization) (message string, severe bool) {
	switch {
	case errors.Is(err, store.ErrPersistence):
		return loc.GetText(KeyErrSaveFailed), true
	case errors.Is(err, store.ErrEmptyName):
		return loc.GetText(KeyErrEmptyName), false
	case errors.Is(err, store.ErrMissingExpiration):
		return loc.GetText(KeyErrMissingExpiration), false
	case errors.Is(err, expiry.ErrInvalidFormat):
		return loc.GetText(KeyErrInvalidFormat), false
	case errors.Is(err, store.ErrNotFound):
		return loc.GetText(KeyErrNotFound), false
	default:
		return loc.GetText(KeyErrUnexpected) + ": " + err.Error(), false
	}
}

// cleanName keeps a multi-line name on one list row
func cleanName(name string) string {
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	return strings.TrimSpace(name)
}
