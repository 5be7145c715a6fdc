package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings is the persisted user preference file.
type Settings struct {
	Theme    string `toml:"theme"`
	FPS      int    `toml:"fps,omitempty"`
	Title    string `toml:"title,omitempty"`
	Subtitle string `toml:"subtitle,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "dark",
		FPS:      DefaultFPS,
		Title:    DefaultTitle,
		Subtitle: DefaultSubtitle,
	}
}

// DefaultSettingsPath returns settings.toml under the user config dir.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, SettingsFile), nil
}

// ValidateFPS reports whether fps is a usable frame rate.
func ValidateFPS(fps int) error {
	if fps < MinFPS || fps > MaxFPS {
		return fmt.Errorf("fps %d out of range %d-%d", fps, MinFPS, MaxFPS)
	}
	return nil
}

// LoadSettings reads path, filling unset fields with defaults.
// A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("read settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// Save writes the settings to path, creating the parent directory.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create settings %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}

func (s *Settings) normalize() {
	d := DefaultSettings()
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if ValidateFPS(s.FPS) != nil {
		s.FPS = d.FPS
	}
	if s.Title == "" {
		s.Title = d.Title
	}
}
