package config

import (
	"fyne.io/fyne/v2"
	"github.com/ytget/expiration-tracker/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir         = "data_directory"
	KeyLanguage        = "app_language"
	KeyRefreshInterval = "refresh_interval_seconds"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultRefreshInterval = 60

	MinRefreshInterval = 10
	MaxRefreshInterval = 3600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the directory holding the item and window files
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir := platform.DefaultDataDir()
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetRefreshInterval returns how often, in seconds, remaining times are redrawn
func (s *Settings) GetRefreshInterval() int {
	value := s.app.Preferences().Int(KeyRefreshInterval)
	if value <= 0 {
		s.SetRefreshInterval(DefaultRefreshInterval)
		return DefaultRefreshInterval
	}
	return value
}

// SetRefreshInterval sets the refresh interval in seconds
func (s *Settings) SetRefreshInterval(seconds int) {
	if seconds < MinRefreshInterval {
		seconds = MinRefreshInterval
	}
	if seconds > MaxRefreshInterval {
		seconds = MaxRefreshInterval
	}
	s.app.Preferences().SetInt(KeyRefreshInterval, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
