package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDefaultDataDir(t *testing.T) {
	dir := DefaultDataDir()
	if dir == "" {
		t.Fatal("Data directory is empty")
	}

	if base, err := os.UserConfigDir(); err == nil && base != "" {
		if filepath.Base(dir) != AppDirName {
			t.Errorf("Expected directory to end with '%s', got: %s", AppDirName, dir)
		}
	}
}

func TestNewDataFiles(t *testing.T) {
	dir := filepath.Join("home", "user", AppDirName)
	files := NewDataFiles(dir)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"items", files.Items, filepath.Join(dir, "data.json")},
		{"window", files.Window, filepath.Join(dir, "settings.json")},
		{"shelf life", files.ShelfLife, filepath.Join(dir, "shelf_life.yaml")},
	}

	for _, test := range tests {
		if test.path != test.expected {
			t.Errorf("%s path = %s, expected %s", test.name, test.path, test.expected)
		}
	}

	if files.Dir != dir {
		t.Errorf("Expected Dir %s, got %s", dir, files.Dir)
	}
}
