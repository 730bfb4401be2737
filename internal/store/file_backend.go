package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ytget/expiration-tracker/internal/model"
	"github.com/ytget/expiration-tracker/internal/platform"
)

// JSON-backed storage. Single file, human-readable, rewritten in full on
// every save. No locking; one process owns the file.

const tempSuffix = ".tmp"

// FileBackend stores items as a JSON array in one file
type FileBackend struct {
	fs   afero.Fs
	path string
}

// NewFileBackend creates a backend for the file at path on fs
func NewFileBackend(fs afero.Fs, path string) *FileBackend {
	return &FileBackend{fs: fs, path: path}
}

// Path returns the item file path
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the item file. A missing file is an empty collection.
func (b *FileBackend) Load() ([]model.Item, error) {
	data, err := afero.ReadFile(b.fs, b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal %s: %w", b.path, err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Save writes items to a temporary file next to the target and renames it
// into place, so readers never observe a partial file.
func (b *FileBackend) Save(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	if err := b.fs.MkdirAll(filepath.Dir(b.path), platform.DefaultDirPermissions); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp := b.path + tempSuffix
	if err := afero.WriteFile(b.fs, tmp, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := b.fs.Rename(tmp, b.path); err != nil {
		_ = b.fs.Remove(tmp)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}
