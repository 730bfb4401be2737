package ui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ytget/expiration-tracker/internal/expiry"
	"github.com/ytget/expiration-tracker/internal/model"
	"github.com/ytget/expiration-tracker/internal/store"
)

func TestRowText(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.Local)
	l := NewLocalization()

	tests := []struct {
		name      string
		item      model.Item
		wantText  string
		wantLevel expiry.Level
	}{
		{
			name:      "days and hours",
			item:      model.Item{Name: "Milk", ExpirationTime: now.Add(30 * time.Hour).Format(expiry.Layout)},
			wantText:  "Milk - Expires in 1d 6h",
			wantLevel: expiry.LevelNormal,
		},
		{
			name:      "under one day",
			item:      model.Item{Name: "Fish", ExpirationTime: now.Add(5 * time.Hour).Format(expiry.Layout)},
			wantText:  "Fish - Expires in 0d 5h",
			wantLevel: expiry.LevelUrgent,
		},
		{
			name:      "expired",
			item:      model.Item{Name: "Ham", ExpirationTime: now.Add(-time.Minute).Format(expiry.Layout)},
			wantText:  "Ham - Expires in Expired",
			wantLevel: expiry.LevelExpired,
		},
		{
			name:      "never",
			item:      model.Item{Name: "Salt", ExpirationTime: "inf"},
			wantText:  "Salt - Expires in Never",
			wantLevel: expiry.LevelNever,
		},
		{
			name:      "corrupt",
			item:      model.Item{Name: "Jam", ExpirationTime: "soon"},
			wantText:  "Jam - Expires in Unknown",
			wantLevel: expiry.LevelUnknown,
		},
		{
			name:      "multi-line name",
			item:      model.Item{Name: "Green\ntea\t", ExpirationTime: "inf"},
			wantText:  "Green tea - Expires in Never",
			wantLevel: expiry.LevelNever,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, level := RowText(tt.item, now, l)
			if text != tt.wantText {
				t.Errorf("RowText() text = %q, want %q", text, tt.wantText)
			}
			if level != tt.wantLevel {
				t.Errorf("RowText() level = %v, want %v", level, tt.wantLevel)
			}
		})
	}
}

func TestRowText_Localized(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.Local)
	l := NewLocalization()
	l.SetLanguage("ru")

	item := model.Item{Name: "Молоко", ExpirationTime: now.Add(49 * time.Hour).Format(expiry.Layout)}
	text, _ := RowText(item, now, l)
	if text != "Молоко - истекает через 2д 1ч" {
		t.Errorf("Unexpected localized row %q", text)
	}
}

func TestErrorMessage(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name       string
		err        error
		wantKey    string
		wantSevere bool
	}{
		{"persistence", fmt.Errorf("%w: %w", store.ErrPersistence, errors.New("disk full")), KeyErrSaveFailed, true},
		{"empty name", store.ErrEmptyName, KeyErrEmptyName, false},
		{"missing expiration", fmt.Errorf("%w: kiwi", store.ErrMissingExpiration), KeyErrMissingExpiration, false},
		{"invalid format", fmt.Errorf("%w: %q", expiry.ErrInvalidFormat, "7x"), KeyErrInvalidFormat, false},
		{"not found", store.ErrNotFound, KeyErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, severe := ErrorMessage(tt.err, l)
			if message != l.GetText(tt.wantKey) {
				t.Errorf("ErrorMessage() = %q, want %q", message, l.GetText(tt.wantKey))
			}
			if severe != tt.wantSevere {
				t.Errorf("ErrorMessage() severe = %v, want %v", severe, tt.wantSevere)
			}
		})
	}

	message, severe := ErrorMessage(errors.New("boom"), l)
	if severe || message != "Unexpected error: boom" {
		t.Errorf("Unexpected fallback message %q (severe=%v)", message, severe)
	}
}
