package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the directory created under the user config directory
const AppDirName = "expiration-tracker"

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// File names inside the data directory
const (
	ItemsFileName     = "data.json"
	WindowFileName    = "settings.json"
	ShelfLifeFileName = "shelf_life.yaml"
)

// DataFiles holds the paths of every file the application reads or writes
type DataFiles struct {
	Dir       string
	Items     string
	Window    string
	ShelfLife string
}

// NewDataFiles derives file paths from a data directory
func NewDataFiles(dir string) DataFiles {
	return DataFiles{
		Dir:       dir,
		Items:     filepath.Join(dir, ItemsFileName),
		Window:    filepath.Join(dir, WindowFileName),
		ShelfLife: filepath.Join(dir, ShelfLifeFileName),
	}
}

// DefaultDataDir returns the per-user data directory, falling back to the
// working directory when no config directory is known
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		wd, werr := os.Getwd()
		if werr != nil {
			return "."
		}
		return wd
	}
	return filepath.Join(base, AppDirName)
}

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		if err := os.MkdirAll(dirPath, DefaultDirPermissions); err != nil {
			return fmt.Errorf("create directory %s: %w", dirPath, err)
		}
	}
	return nil
}
