package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/afero"

	"github.com/ytget/expiration-tracker/internal/config"
	"github.com/ytget/expiration-tracker/internal/model"
	"github.com/ytget/expiration-tracker/internal/store"
)

// Options holds the collaborators of the main window
type Options struct {
	Tracker  store.Tracker
	Settings *config.Settings

	// Window state persistence
	Fs              afero.Fs
	WindowStatePath string
	WindowState     config.WindowState

	// Now overrides the clock used for remaining times
	Now func() time.Time
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	tracker      store.Tracker
	settings     *config.Settings
	localization *Localization
	now          func() time.Time

	fs              afero.Fs
	windowStatePath string
	windowState     config.WindowState

	// items mirrors the store in display order
	items []model.Item

	itemList         *widget.List
	emptyLabel       *widget.Label
	copyBtn          *widget.Button
	addBtn           *widget.Button
	deleteExpiredBtn *widget.Button

	stopRefresh chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	settings := opts.Settings
	if settings == nil {
		settings = config.NewSettings(app)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:          window,
		app:             app,
		tracker:         opts.Tracker,
		settings:        settings,
		localization:    localization,
		now:             now,
		fs:              fs,
		windowStatePath: opts.WindowStatePath,
		windowState:     opts.WindowState,
		items:           opts.Tracker.ListSorted(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.tracker.SetUpdateCallback(ui.onItemsUpdate)

	ui.setupUI()
	ui.applyWindowState()
	window.SetCloseIntercept(ui.onClose)
	ui.startRefreshLoop()

	log.Printf("RootUI initialized with %d items", len(ui.items))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.itemList = widget.NewList(
		func() int {
			return len(ui.items)
		},
		func() fyne.CanvasObject {
			row := NewItemRow(ui.localization)
			row.SetCallbacks(ui.onEditItem, ui.onDeleteItem)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateItemRow(id, obj) },
	)

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyEmptyList))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Wrapping = fyne.TextWrapWord

	ui.copyBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyCopyItems), theme.ContentCopyIcon(), ui.onCopyItems)
	ui.addBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyAddItem), theme.ContentAddIcon(), ui.onAddItem)
	ui.addBtn.Importance = widget.HighImportance
	ui.deleteExpiredBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyDeleteExpired), theme.DeleteIcon(), ui.onDeleteExpired)

	buttons := container.NewGridWithColumns(3, ui.copyBtn, ui.addBtn, ui.deleteExpiredBtn)

	// Transparent spacer enforces the minimum window size
	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	content := container.NewStack(
		minSize,
		container.NewBorder(
			nil,     // top
			buttons, // bottom
			nil,     // left
			nil,     // right
			container.NewStack(ui.itemList, container.NewCenter(ui.emptyLabel)),
		),
	)

	ui.window.SetContent(content)
	ui.refreshList()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.copyBtn.SetText(ui.localization.GetText(KeyCopyItems))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddItem))
	ui.deleteExpiredBtn.SetText(ui.localization.GetText(KeyDeleteExpired))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyEmptyList))

	ui.itemList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func(languageChanged bool) {
		ui.restartRefreshLoop()
		if languageChanged {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
	}).Show()
}

// updateItemRow binds a list row to the item at id
func (ui *RootUI) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(ui.items) {
		return
	}
	if row, ok := obj.(*ItemRow); ok {
		row.SetItem(ui.items[id], ui.now())
	}
}

// onItemsUpdate receives the sorted collection after every store change
func (ui *RootUI) onItemsUpdate(items []model.Item) {
	ui.items = items
	ui.refreshList()
}

func (ui *RootUI) refreshList() {
	if len(ui.items) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.itemList.Refresh()
}

// onCopyItems copies every item name to the clipboard
func (ui *RootUI) onCopyItems() {
	names := ui.tracker.Names()
	if names == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyCopyItems), ui.localization.GetText(KeyNothingToCopy), ui.window)
		return
	}

	ui.app.Clipboard().SetContent(names)
	log.Printf("Copied %d item names to clipboard", ui.tracker.Len())
	dialog.ShowInformation(ui.localization.GetText(KeyCopyItems), ui.localization.GetText(KeyCopied), ui.window)
}

// onAddItem opens an empty item form
func (ui *RootUI) onAddItem() {
	NewItemForm(ui.window, ui.localization, ui.localization.GetText(KeyAddItem), "", "", ui.addItem).Show()
}

func (ui *RootUI) addItem(name, expiration string) error {
	_, err := ui.tracker.Add(name, expiration)
	return err
}

// onEditItem opens the item form pre-filled with the stored values
func (ui *RootUI) onEditItem(item model.Item) {
	id := item.ID
	NewItemForm(ui.window, ui.localization, ui.localization.GetText(KeyEditItem), item.Name, item.ExpirationTime,
		func(name, expiration string) error {
			_, err := ui.tracker.Edit(id, name, expiration)
			return err
		},
	).Show()
}

// onDeleteItem asks for confirmation before removing item
func (ui *RootUI) onDeleteItem(item model.Item) {
	message := fmt.Sprintf(ui.localization.GetText(KeyConfirmDelete), item.Name)
	dialog.ShowConfirm(ui.localization.GetText(KeyDelete), message, func(confirmed bool) {
		if confirmed {
			ui.deleteItem(item.ID)
		}
	}, ui.window)
}

func (ui *RootUI) deleteItem(id string) {
	if err := ui.tracker.Delete(id); err != nil {
		ui.showError(err)
	}
}

// onDeleteExpired asks for confirmation before pruning
func (ui *RootUI) onDeleteExpired() {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteExpired),
		ui.localization.GetText(KeyConfirmDeleteExpired),
		func(confirmed bool) {
			if confirmed {
				ui.pruneExpired()
			}
		},
		ui.window,
	)
}

func (ui *RootUI) pruneExpired() {
	removed, err := ui.tracker.PruneExpired(ui.now())
	if err != nil {
		ui.showError(err)
		return
	}

	message := ui.localization.GetText(KeyNothingExpired)
	if removed > 0 {
		message = fmt.Sprintf(ui.localization.GetText(KeyDeletedExpired), removed)
	}
	dialog.ShowInformation(ui.localization.GetText(KeyDeleteExpired), message, ui.window)
}

func (ui *RootUI) showError(err error) {
	log.Printf("Operation failed: %v", err)
	message, severe := ErrorMessage(err, ui.localization)
	if severe {
		message += "\n\n" + err.Error()
	}
	dialog.ShowError(errors.New(message), ui.window)
}

// startRefreshLoop redraws remaining times on the configured interval
func (ui *RootUI) startRefreshLoop() {
	interval := time.Duration(ui.settings.GetRefreshInterval()) * time.Second
	stop := make(chan struct{})
	ui.stopRefresh = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(ui.itemList.Refresh)
			case <-stop:
				return
			}
		}
	}()
}

func (ui *RootUI) stopRefreshLoop() {
	if ui.stopRefresh != nil {
		close(ui.stopRefresh)
		ui.stopRefresh = nil
	}
}

func (ui *RootUI) restartRefreshLoop() {
	ui.stopRefreshLoop()
	ui.startRefreshLoop()
}

// applyWindowState sizes the window from the saved geometry. Fyne does not
// expose window position, so the offsets are only carried through.
func (ui *RootUI) applyWindowState() {
	g := ui.windowState.Parsed()
	ui.window.Resize(fyne.NewSize(float32(g.Width), float32(g.Height)))
}

// saveWindowState records the current window size
func (ui *RootUI) saveWindowState() {
	if ui.windowStatePath == "" {
		return
	}
	size := ui.window.Canvas().Size()
	ui.windowState = ui.windowState.WithSize(int(size.Width), int(size.Height))
	if err := config.SaveWindowState(ui.fs, ui.windowStatePath, ui.windowState); err != nil {
		log.Printf("Failed to save window state: %v", err)
		return
	}
	log.Printf("Saved window geometry %s", ui.windowState.Geometry)
}

func (ui *RootUI) onClose() {
	ui.stopRefreshLoop()
	ui.saveWindowState()
	ui.window.Close()
}
