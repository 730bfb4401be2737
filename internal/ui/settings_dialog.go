package ui

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/expiration-tracker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged bool)

	// UI components
	dataDirEntry   *widget.Entry
	refreshEntry   *widget.Entry
	languageSelect *widget.Select

	// display label -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(languageChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.dataDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	sd.refreshEntry = widget.NewEntry()
	sd.refreshEntry.SetPlaceHolder(strconv.Itoa(config.MinRefreshInterval) + "-" + strconv.Itoa(config.MaxRefreshInterval))

	sd.languageCodes = make(map[string]string)
	var labels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		if code == LangSystem {
			label = l.GetText(KeySystemLanguageDefault)
		}
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDataDirectory)+":"),
		dataDirRow,

		widget.NewLabel(l.GetText(KeyRefreshInterval)+":"),
		sd.refreshEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.refreshEntry.SetText(strconv.Itoa(sd.settings.GetRefreshInterval()))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	refresh := strings.TrimSpace(sd.refreshEntry.Text)
	if refresh != "" {
		seconds, err := strconv.Atoi(refresh)
		if err != nil {
			errDialog := dialog.NewError(errors.New(sd.localization.GetText(KeyErrRefreshNotANumber)), sd.window)
			errDialog.SetOnClosed(sd.dialog.Show)
			errDialog.Show()
			return
		}
		sd.settings.SetRefreshInterval(seconds)
	}

	message := sd.localization.GetText(KeySettingsSaved)
	dataDir := strings.TrimSpace(sd.dataDirEntry.Text)
	if dataDir != "" && dataDir != sd.settings.GetDataDirectory() {
		sd.settings.SetDataDirectory(dataDir)
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		languageChanged = true
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}
