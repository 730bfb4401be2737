// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the item list with remaining times, wires the add, edit, delete
// and prune actions to the item store, and persists window geometry on close.
// All UI strings are localized via Localization.
package ui
