package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Neonscape/HexaMapper/internal/hexmap"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Background.Mode != "gradient" {
		t.Errorf("mode = %q, want gradient", cfg.Background.Mode)
	}
	if cfg.Engine.ChunkSize != 16 || cfg.Engine.HexRadius != 1 {
		t.Errorf("engine defaults = %+v", cfg.Engine)
	}
	if cfg.View.MinZoom != 0.01 || cfg.View.MaxZoom != 5.0 {
		t.Errorf("view defaults = %+v", cfg.View)
	}
	if cfg.Custom.OutlineWidth != 2 {
		t.Errorf("outline width = %v, want 2", cfg.Custom.OutlineWidth)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file did not yield the defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	doc := `
background:
  mode: solid
  solid_color: "#112233"
engine:
  chunk_size: 32
view:
  max_zoom: 8.0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Background.Mode != "solid" {
		t.Errorf("mode = %q", cfg.Background.Mode)
	}
	if cfg.Background.SolidColor != hexmap.MustColor("#112233FF") {
		t.Errorf("solid color = %v", cfg.Background.SolidColor)
	}
	if cfg.Engine.ChunkSize != 32 {
		t.Errorf("chunk size = %d", cfg.Engine.ChunkSize)
	}
	if cfg.View.MaxZoom != 8.0 {
		t.Errorf("max zoom = %v", cfg.View.MaxZoom)
	}
	// Untouched fields keep their defaults.
	if cfg.Engine.HexRadius != 1 {
		t.Errorf("hex radius = %v, want default 1", cfg.Engine.HexRadius)
	}
	if cfg.View.MinZoom != 0.01 {
		t.Errorf("min zoom = %v, want default 0.01", cfg.View.MinZoom)
	}
}

func TestLoadMalformedFileReturnsErrorAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("background: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("malformed YAML did not error")
	}
	if cfg != Default() {
		t.Error("error path did not fall back to defaults")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct{ name, doc string }{
		{"zero chunk size", "engine:\n  chunk_size: 0\n"},
		{"negative radius", "engine:\n  hex_radius: -1\n"},
		{"inverted zoom range", "view:\n  min_zoom: 2.0\n  max_zoom: 1.0\n"},
		{"unknown mode", "background:\n  mode: plaid\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid config passed validation")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	want := Default()
	want.Background.Mode = "solid"
	want.Custom.OutlineWidth = 3.5

	if err := want.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
