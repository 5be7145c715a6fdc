package theme

import (
	"github.com/sirupsen/logrus"
	"netfield.klederson.com/internal/config"
)

// Store keeps the current theme and persists it in the settings file.
// Persistence failures are logged and otherwise ignored.
type Store struct {
	path     string
	settings config.Settings
	current  Name
	log      logrus.FieldLogger
}

// NewStore wraps already loaded settings. An empty path disables saving.
func NewStore(path string, s config.Settings, log logrus.FieldLogger) *Store {
	return &Store{
		path:     path,
		settings: s,
		current:  Parse(s.Theme),
		log:      log,
	}
}

// Current returns the active theme name.
func (s *Store) Current() Name { return s.current }

// Set makes n current and saves it.
func (s *Store) Set(n Name) {
	s.current = Parse(string(n))
	s.settings.Theme = string(s.current)
	s.save()
}

// Toggle flips between light and dark, saves, and returns the new theme.
func (s *Store) Toggle() Name {
	s.Set(Toggle(s.current))
	return s.current
}

func (s *Store) save() {
	if s.path == "" {
		return
	}
	if err := s.settings.Save(s.path); err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("could not persist theme")
		return
	}
	s.log.WithField("theme", s.current).Debug("theme saved")
}
