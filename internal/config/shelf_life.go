package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ytget/expiration-tracker/internal/expiry"
)

//go:embed shelf_life.yaml
var defaultShelfLifeYAML []byte

// ShelfLifeEntry is one food name and its default duration expression
type ShelfLifeEntry struct {
	Name     string
	Duration string
}

// ShelfLife is the read-only food name to default duration table.
// It is built once at startup and handed to the store.
type ShelfLife struct {
	entries map[string]string
}

// NewShelfLife builds a table from a name to duration map. Names are
// lowercased; the input map is copied.
func NewShelfLife(entries map[string]string) ShelfLife {
	m := make(map[string]string, len(entries))
	for name, d := range entries {
		m[normalizeName(name)] = strings.TrimSpace(d)
	}
	return ShelfLife{entries: m}
}

// Lookup returns the default duration for a food name, case-insensitively
func (s ShelfLife) Lookup(name string) (string, bool) {
	d, ok := s.entries[normalizeName(name)]
	return d, ok
}

// Len returns the number of entries
func (s ShelfLife) Len() int {
	return len(s.entries)
}

// Entries returns all entries sorted by name
func (s ShelfLife) Entries() []ShelfLifeEntry {
	out := make([]ShelfLifeEntry, 0, len(s.entries))
	for name, d := range s.entries {
		out = append(out, ShelfLifeEntry{Name: name, Duration: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DefaultShelfLife returns the built-in table
func DefaultShelfLife() ShelfLife {
	defs, err := parseShelfLife(defaultShelfLifeYAML)
	if err != nil {
		// The embedded file is part of the build; a parse failure is a bug.
		panic(fmt.Sprintf("embedded shelf_life.yaml: %v", err))
	}
	return NewShelfLife(defs)
}

// LoadShelfLife returns the built-in table merged with the user override file
// at path. A missing override file is not an error. Override entries whose
// duration does not parse are skipped.
func LoadShelfLife(fs afero.Fs, path string) (ShelfLife, error) {
	defs, err := parseShelfLife(defaultShelfLifeYAML)
	if err != nil {
		return ShelfLife{}, fmt.Errorf("embedded shelf life: %w", err)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewShelfLife(defs), nil
		}
		return ShelfLife{}, fmt.Errorf("read shelf life overrides: %w", err)
	}

	userDefs, err := parseShelfLife(data)
	if err != nil {
		return ShelfLife{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for name, d := range userDefs {
		if _, err := expiry.ParseDuration(d); err != nil {
			log.Printf("Skipping shelf life override %q: %v", name, err)
			continue
		}
		defs[normalizeName(name)] = d
	}
	return NewShelfLife(defs), nil
}

func parseShelfLife(data []byte) (map[string]string, error) {
	defs := make(map[string]string)
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
