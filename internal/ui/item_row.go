package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/expiration-tracker/internal/model"
)

// ItemRow is one line of the item list: the description on the left and
// edit/delete buttons pinned to the right.
type ItemRow struct {
	widget.BaseWidget

	item         model.Item
	localization *Localization

	// UI components
	textLabel *widget.Label
	editBtn   *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onEdit   func(item model.Item)
	onDelete func(item model.Item)
}

// NewItemRow creates a new item row widget
func NewItemRow(localization *Localization) *ItemRow {
	row := &ItemRow{localization: localization}
	row.ExtendBaseWidget(row)

	row.textLabel = widget.NewLabel("")
	row.textLabel.Truncation = fyne.TextTruncateEllipsis

	row.editBtn = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		if row.onEdit != nil {
			row.onEdit(row.item)
		}
	})
	row.editBtn.Importance = widget.LowImportance

	row.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if row.onDelete != nil {
			row.onDelete(row.item)
		}
	})
	row.deleteBtn.Importance = widget.LowImportance

	return row
}

// SetCallbacks sets the action callbacks
func (r *ItemRow) SetCallbacks(onEdit, onDelete func(item model.Item)) {
	r.onEdit = onEdit
	r.onDelete = onDelete
}

// SetItem shows item as seen at now
func (r *ItemRow) SetItem(item model.Item, now time.Time) {
	r.item = item

	text, level := RowText(item, now, r.localization)
	r.textLabel.SetText(text)
	if level.IsAlert() {
		r.textLabel.Importance = widget.DangerImportance
	} else {
		r.textLabel.Importance = widget.MediumImportance
	}
	r.textLabel.Refresh()
}

// Item returns the item currently shown
func (r *ItemRow) Item() model.Item {
	return r.item
}

// Text returns the rendered description
func (r *ItemRow) Text() string {
	return r.textLabel.Text
}

// IsAlert reports whether the row is drawn in the alert colour
func (r *ItemRow) IsAlert() bool {
	return r.textLabel.Importance == widget.DangerImportance
}

// CreateRenderer creates the widget renderer
func (r *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewHBox(r.editBtn, r.deleteBtn)
	content := container.NewBorder(nil, nil, nil, buttons, r.textLabel)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows tall enough for the icon buttons
func (r *ItemRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}
