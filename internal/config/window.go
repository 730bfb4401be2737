package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/ytget/expiration-tracker/internal/platform"
)

// Window defaults
const (
	DefaultGeometry = "430x360+100+100"

	MinWindowWidth  = 430
	MinWindowHeight = 360
)

// WindowState is the persisted window placement. Geometry is kept as an
// opaque "WxH+X+Y" string so files written by other front ends survive.
type WindowState struct {
	Geometry string `json:"geometry"`
}

// Geometry is the parsed form of a geometry string
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

// String formats the geometry as "WxH+X+Y"
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d%s%s", g.Width, g.Height, signed(g.X), signed(g.Y))
}

// Clamped returns the geometry with width and height raised to the window minimum
func (g Geometry) Clamped() Geometry {
	if g.Width < MinWindowWidth {
		g.Width = MinWindowWidth
	}
	if g.Height < MinWindowHeight {
		g.Height = MinWindowHeight
	}
	return g
}

// ParseGeometry parses "WxH", "WxH+X+Y" or "WxH-X-Y"
func ParseGeometry(s string) (Geometry, error) {
	s = strings.TrimSpace(s)
	var g Geometry

	sizePart, offsets := s, ""
	if i := strings.IndexAny(s, "+-"); i >= 0 {
		sizePart, offsets = s[:i], s[i:]
	}

	w, h, ok := strings.Cut(sizePart, "x")
	if !ok {
		return g, fmt.Errorf("invalid geometry %q", s)
	}
	var err error
	if g.Width, err = strconv.Atoi(w); err != nil || g.Width <= 0 {
		return g, fmt.Errorf("invalid geometry width %q", s)
	}
	if g.Height, err = strconv.Atoi(h); err != nil || g.Height <= 0 {
		return g, fmt.Errorf("invalid geometry height %q", s)
	}

	if offsets == "" {
		return g, nil
	}
	x, y, err := parseOffsets(offsets)
	if err != nil {
		return g, fmt.Errorf("invalid geometry offsets %q: %w", s, err)
	}
	g.X, g.Y = x, y
	return g, nil
}

// Parsed returns the parsed geometry, falling back to DefaultGeometry
func (ws WindowState) Parsed() Geometry {
	g, err := ParseGeometry(ws.Geometry)
	if err != nil {
		g, _ = ParseGeometry(DefaultGeometry)
	}
	return g.Clamped()
}

// WithSize returns a copy whose geometry has the given size and keeps the
// previous position
func (ws WindowState) WithSize(width, height int) WindowState {
	g := ws.Parsed()
	g.Width, g.Height = width, height
	return WindowState{Geometry: g.Clamped().String()}
}

// LoadWindowState reads the window state file. A missing file yields the
// default geometry.
func LoadWindowState(fs afero.Fs, path string) (WindowState, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return WindowState{Geometry: DefaultGeometry}, nil
		}
		return WindowState{Geometry: DefaultGeometry}, fmt.Errorf("read window state: %w", err)
	}

	var ws WindowState
	if err := json.Unmarshal(data, &ws); err != nil {
		return WindowState{Geometry: DefaultGeometry}, fmt.Errorf("json unmarshal: %w", err)
	}
	if strings.TrimSpace(ws.Geometry) == "" {
		ws.Geometry = DefaultGeometry
	}
	return ws, nil
}

// SaveWindowState writes the window state file
func SaveWindowState(fs afero.Fs, path string, ws WindowState) error {
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), platform.DefaultDirPermissions); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func parseOffsets(s string) (int, int, error) {
	// s looks like "+100+100", "-5+20" ...
	i := strings.IndexAny(s[1:], "+-")
	if i < 0 {
		return 0, 0, errors.New("expected two offsets")
	}
	x, err := strconv.Atoi(s[:i+1])
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func signed(v int) string {
	if v < 0 {
		return strconv.Itoa(v)
	}
	return "+" + strconv.Itoa(v)
}
