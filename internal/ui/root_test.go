package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"

	"github.com/ytget/expiration-tracker/internal/config"
	"github.com/ytget/expiration-tracker/internal/expiry"
	"github.com/ytget/expiration-tracker/internal/model"
	"github.com/ytget/expiration-tracker/internal/store"
)

const (
	testItemsPath  = "/data/data.json"
	testWindowPath = "/data/settings.json"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

type testRoot struct {
	ui    *RootUI
	app   fyne.App
	fs    afero.Fs
	store *store.Store
}

func newTestRoot(t *testing.T, seed []model.Item) testRoot {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(func() { app.Quit() })

	fs := afero.NewMemMapFs()
	backend := store.NewFileBackend(fs, testItemsPath)
	if seed != nil {
		if err := backend.Save(seed); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	s, err := store.New(backend, config.DefaultShelfLife(), store.WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	window := test.NewWindow(nil)
	ui := NewRootUI(window, app, Options{
		Tracker:         s,
		Settings:        config.NewSettings(app),
		Fs:              fs,
		WindowStatePath: testWindowPath,
		WindowState:     config.WindowState{Geometry: "500x400+30+40"},
		Now:             func() time.Time { return testNow },
	})
	t.Cleanup(ui.stopRefreshLoop)

	return testRoot{ui: ui, app: app, fs: fs, store: s}
}

func TestRootUI_ShowsSortedItems(t *testing.T) {
	r := newTestRoot(t, []model.Item{
		{ID: "item-b", Name: "Salt", ExpirationTime: "inf"},
		{ID: "item-a", Name: "Milk", ExpirationTime: testNow.AddDate(0, 0, 2).Format(expiry.Layout)},
	})

	if r.ui.itemList.Length() != 2 {
		t.Fatalf("Expected 2 rows, got %d", r.ui.itemList.Length())
	}
	if r.ui.items[0].Name != "Milk" || r.ui.items[1].Name != "Salt" {
		t.Errorf("Items not in display order: %+v", r.ui.items)
	}
	if r.ui.emptyLabel.Visible() {
		t.Error("Empty label should be hidden when there are items")
	}

	row := NewItemRow(r.ui.localization)
	r.ui.updateItemRow(0, row)
	if row.Text() != "Milk - Expires in 2d 0h" {
		t.Errorf("Unexpected row text %q", row.Text())
	}
}

func TestRootUI_AddItemUpdatesList(t *testing.T) {
	r := newTestRoot(t, nil)
	if !r.ui.emptyLabel.Visible() {
		t.Error("Empty label should be visible for an empty list")
	}

	if err := r.ui.addItem("Milk", ""); err != nil {
		t.Fatalf("addItem: %v", err)
	}
	if len(r.ui.items) != 1 || r.ui.items[0].Name != "Milk" {
		t.Fatalf("List not updated after add: %+v", r.ui.items)
	}
	want := testNow.AddDate(0, 0, 5).Format(expiry.Layout)
	if r.ui.items[0].ExpirationTime != want {
		t.Errorf("Expected default expiration %s, got %s", want, r.ui.items[0].ExpirationTime)
	}
	if r.ui.emptyLabel.Visible() {
		t.Error("Empty label should hide after add")
	}
}

func TestRootUI_AddItemError(t *testing.T) {
	r := newTestRoot(t, nil)

	if err := r.ui.addItem("Starfruit", ""); err == nil {
		t.Fatal("Expected an error for an unknown item without expiration")
	}
	if len(r.ui.items) != 0 {
		t.Error("Failed add must not change the list")
	}
}

func TestRootUI_DeleteAndPrune(t *testing.T) {
	r := newTestRoot(t, []model.Item{
		{ID: "item-old", Name: "Old bread", ExpirationTime: testNow.AddDate(0, 0, -1).Format(expiry.Layout)},
		{ID: "item-new", Name: "Eggs", ExpirationTime: testNow.AddDate(0, 0, 20).Format(expiry.Layout)},
		{ID: "item-inf", Name: "Honey", ExpirationTime: "inf"},
	})

	r.ui.pruneExpired()
	if len(r.ui.items) != 2 {
		t.Fatalf("Expected 2 items after prune, got %d", len(r.ui.items))
	}

	r.ui.deleteItem("item-new")
	if len(r.ui.items) != 1 || r.ui.items[0].ID != "item-inf" {
		t.Errorf("Unexpected items after delete: %+v", r.ui.items)
	}

	// Deleting a stale reference leaves the list alone
	r.ui.deleteItem("item-new")
	if len(r.ui.items) != 1 {
		t.Errorf("Stale delete changed the list: %+v", r.ui.items)
	}
}

func TestRootUI_CopyItems(t *testing.T) {
	r := newTestRoot(t, []model.Item{
		{ID: "item-1", Name: "Wine", ExpirationTime: "inf"},
		{ID: "item-2", Name: "Bread", ExpirationTime: testNow.AddDate(0, 0, 3).Format(expiry.Layout)},
	})

	r.ui.onCopyItems()
	if got := r.app.Clipboard().Content(); got != "Bread, Wine" {
		t.Errorf("Expected clipboard 'Bread, Wine', got %q", got)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	r := newTestRoot(t, nil)

	r.ui.onLanguageChange("pt")
	if r.ui.addBtn.Text != "Adicionar Item" {
		t.Errorf("Button text not localized: %q", r.ui.addBtn.Text)
	}
	if r.ui.settings.GetLanguage() != "pt" {
		t.Errorf("Language not persisted, got %s", r.ui.settings.GetLanguage())
	}
}

func TestRootUI_SavesWindowGeometry(t *testing.T) {
	r := newTestRoot(t, nil)

	r.ui.window.Resize(fyne.NewSize(640, 480))
	r.ui.saveWindowState()

	ws, err := config.LoadWindowState(r.fs, testWindowPath)
	if err != nil {
		t.Fatalf("LoadWindowState: %v", err)
	}
	if !strings.HasSuffix(ws.Geometry, "+30+40") {
		t.Errorf("Window position should be preserved, got %s", ws.Geometry)
	}
	g := ws.Parsed()
	if g.Width < config.MinWindowWidth || g.Height < config.MinWindowHeight {
		t.Errorf("Saved geometry below minimum: %s", ws.Geometry)
	}
}
