package config

import (
	"testing"

	"github.com/spf13/afero"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		input    string
		expected Geometry
	}{
		{"430x360+100+100", Geometry{Width: 430, Height: 360, X: 100, Y: 100}},
		{"800x600", Geometry{Width: 800, Height: 600}},
		{"640x480-10+20", Geometry{Width: 640, Height: 480, X: -10, Y: 20}},
		{" 500x400+0+0 ", Geometry{Width: 500, Height: 400}},
	}

	for _, test := range tests {
		result, err := ParseGeometry(test.input)
		if err != nil {
			t.Errorf("ParseGeometry(%q) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseGeometry(%q) = %+v, expected %+v", test.input, result, test.expected)
		}
	}
}

func TestParseGeometry_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "430", "x360", "430x", "0x360", "430x360+1", "430x360+a+b"} {
		if _, err := ParseGeometry(input); err == nil {
			t.Errorf("ParseGeometry(%q) expected error, got nil", input)
		}
	}
}

func TestGeometryString(t *testing.T) {
	g := Geometry{Width: 640, Height: 480, X: -10, Y: 20}
	if g.String() != "640x480-10+20" {
		t.Errorf("Expected '640x480-10+20', got '%s'", g.String())
	}
}

func TestWindowState_Parsed(t *testing.T) {
	// Invalid values fall back to the default
	ws := WindowState{Geometry: "garbage"}
	g := ws.Parsed()
	if g.String() != DefaultGeometry {
		t.Errorf("Expected default geometry %s, got %s", DefaultGeometry, g.String())
	}

	// Sizes below the minimum are clamped
	ws = WindowState{Geometry: "100x100+5+5"}
	g = ws.Parsed()
	if g.Width != MinWindowWidth || g.Height != MinWindowHeight {
		t.Errorf("Expected clamped size %dx%d, got %dx%d", MinWindowWidth, MinWindowHeight, g.Width, g.Height)
	}
}

func TestWindowState_WithSize(t *testing.T) {
	ws := WindowState{Geometry: "430x360+250+80"}
	updated := ws.WithSize(900, 700)
	if updated.Geometry != "900x700+250+80" {
		t.Errorf("Expected '900x700+250+80', got '%s'", updated.Geometry)
	}
}

func TestLoadWindowState_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()

	ws, err := LoadWindowState(fs, "/data/settings.json")
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if ws.Geometry != DefaultGeometry {
		t.Errorf("Expected default geometry, got %s", ws.Geometry)
	}
}

func TestSaveAndLoadWindowState(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/data/settings.json"

	if err := SaveWindowState(fs, path, WindowState{Geometry: "800x600+10+10"}); err != nil {
		t.Fatalf("Failed to save window state: %v", err)
	}

	ws, err := LoadWindowState(fs, path)
	if err != nil {
		t.Fatalf("Failed to load window state: %v", err)
	}
	if ws.Geometry != "800x600+10+10" {
		t.Errorf("Expected '800x600+10+10', got '%s'", ws.Geometry)
	}
}

func TestLoadWindowState_Corrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/data/settings.json"
	if err := afero.WriteFile(fs, path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	ws, err := LoadWindowState(fs, path)
	if err == nil {
		t.Error("Expected error for corrupt file")
	}
	if ws.Geometry != DefaultGeometry {
		t.Errorf("Expected default geometry on error, got %s", ws.Geometry)
	}
}
