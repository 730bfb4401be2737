package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ItemSubmitFunc receives the raw form values. A non-nil error is shown to
// the user and the form is opened again with the same input.
type ItemSubmitFunc func(name, expiration string) error

// ItemForm is the add/edit dialog for a single item
type ItemForm struct {
	window       fyne.Window
	localization *Localization
	title        string
	onSubmit     ItemSubmitFunc

	nameEntry       *widget.Entry
	expirationEntry *widget.Entry
	dialog          *dialog.FormDialog

	// retry is the form re-opened after a failed submit
	retry *ItemForm
}

// NewItemForm creates a form pre-filled with name and expiration
func NewItemForm(window fyne.Window, localization *Localization, title, name, expiration string, onSubmit ItemSubmitFunc) *ItemForm {
	f := &ItemForm{
		window:       window,
		localization: localization,
		title:        title,
		onSubmit:     onSubmit,
	}

	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetPlaceHolder(localization.GetText(KeyNameHint))
	f.nameEntry.SetText(name)

	f.expirationEntry = widget.NewEntry()
	f.expirationEntry.SetPlaceHolder(localization.GetText(KeyExpirationHint))
	f.expirationEntry.SetText(expiration)

	items := []*widget.FormItem{
		widget.NewFormItem(localization.GetText(KeyName), f.nameEntry),
		widget.NewFormItem(localization.GetText(KeyExpiration), f.expirationEntry),
	}
	f.dialog = dialog.NewForm(
		title,
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		items,
		f.submit,
		window,
	)
	f.dialog.Resize(fyne.NewSize(ItemDialogWidth, f.dialog.MinSize().Height))

	// Enter in either field submits the form
	f.nameEntry.OnSubmitted = func(string) { f.dialog.Submit() }
	f.expirationEntry.OnSubmitted = func(string) { f.dialog.Submit() }

	return f
}

// Show displays the form and focuses the name field
func (f *ItemForm) Show() {
	f.dialog.Show()
	f.window.Canvas().Focus(f.nameEntry)
}

// Values returns the current input
func (f *ItemForm) Values() (name, expiration string) {
	return f.nameEntry.Text, f.expirationEntry.Text
}

func (f *ItemForm) submit(confirmed bool) {
	if !confirmed || f.onSubmit == nil {
		return
	}

	name, expiration := f.Values()
	err := f.onSubmit(name, expiration)
	if err == nil {
		return
	}

	log.Printf("Item form rejected: %v", err)
	message, severe := ErrorMessage(err, f.localization)
	if severe {
		message += "\n\n" + err.Error()
	}

	f.retry = NewItemForm(f.window, f.localization, f.title, name, expiration, f.onSubmit)
	errDialog := dialog.NewError(errors.New(message), f.window)
	errDialog.SetOnClosed(f.retry.Show)
	errDialog.Show()
}
