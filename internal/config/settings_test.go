package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDataDirectory()
	if dir == "" {
		t.Error("Data directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/pantry"
	settings.SetDataDirectory(customDir)

	retrievedDir := settings.GetDataDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, retrievedDir)
	}
}

func TestRefreshInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	interval := settings.GetRefreshInterval()
	if interval != DefaultRefreshInterval {
		t.Errorf("Expected default refresh interval %d, got %d", DefaultRefreshInterval, interval)
	}

	// Test setting custom value
	settings.SetRefreshInterval(300)
	if got := settings.GetRefreshInterval(); got != 300 {
		t.Errorf("Expected refresh interval 300, got %d", got)
	}

	// Test boundary values
	settings.SetRefreshInterval(1) // Should be clamped to minimum
	if settings.GetRefreshInterval() != MinRefreshInterval {
		t.Errorf("Refresh interval should be clamped to minimum %d", MinRefreshInterval)
	}

	settings.SetRefreshInterval(100000) // Should be clamped to maximum
	if settings.GetRefreshInterval() != MaxRefreshInterval {
		t.Errorf("Refresh interval should be clamped to maximum %d", MaxRefreshInterval)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
