package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	WindowMinWidth  float32 = 430
	WindowMinHeight float32 = 360
)

// Item list
const (
	RowMinHeight float32 = 36
)

// Dialog sizing
const (
	ItemDialogWidth      float32 = 380
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 280
)
