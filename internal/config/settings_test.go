package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", SettingsFile)

	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("LoadSettings() = %+v, want defaults %+v", got, DefaultSettings())
	}
}

func TestSettingsSaveLoadKeepsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppDir, SettingsFile)
	s := DefaultSettings()
	s.Theme = "light"
	s.FPS = 30

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got.Theme != "light" || got.FPS != 30 {
		t.Fatalf("LoadSettings() = %+v, want light theme at 30 fps", got)
	}
}

func TestLoadSettingsFillsInvalidFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte("fps = 9000\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got.FPS != DefaultFPS {
		t.Fatalf("FPS = %d, want %d", got.FPS, DefaultFPS)
	}
	if got.Theme != "dark" {
		t.Fatalf("Theme = %q, want dark", got.Theme)
	}
}

func TestLoadSettingsRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte("theme = [\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	got, err := LoadSettings(path)
	if err == nil {
		t.Fatal("expected error for malformed settings")
	}
	if got != DefaultSettings() {
		t.Fatalf("LoadSettings() = %+v, want defaults on error", got)
	}
}

func TestValidateFPS(t *testing.T) {
	tests := []struct {
		fps     int
		wantErr bool
	}{
		{0, true},
		{MinFPS, false},
		{DefaultFPS, false},
		{MaxFPS, false},
		{MaxFPS + 1, true},
		{500, true},
	}
	for _, tt := range tests {
		if err := ValidateFPS(tt.fps); (err != nil) != tt.wantErr {
			t.Fatalf("ValidateFPS(%d) error = %v, wantErr %v", tt.fps, err, tt.wantErr)
		}
	}
}

func TestLoadSettingsOutOfRangeFPSFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte("theme = \"dark\"\nfps = 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got.FPS != DefaultFPS {
		t.Fatalf("FPS = %d, want %d", got.FPS, DefaultFPS)
	}
}
