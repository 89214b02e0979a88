// Package state persists the per-context turbo preferences.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/watchfire-io/turboboost/internal/models"
)

// StorageError reports a failure to read or write the preferences file.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s state file %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store owns the in-memory preferences and their JSON file.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	path   string
	prefs  models.Preferences
	logger zerolog.Logger
}

// NewStore creates a store backed by path, starting from defaults.
func NewStore(path string, logger zerolog.Logger) *Store {
	logger = logger.With().Str("component", "state").Logger()
	logger.Info().Str("path", path).Msg("State file location")
	return &Store{
		path:   path,
		prefs:  models.DefaultPreferences(),
		logger: logger,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences file. A missing or malformed file leaves the
// defaults in place and is not an error; other read failures return a
// *StorageError.
func (s *Store) Load() (models.Preferences, error) {
	s.logger.Info().Msg("Loading application state")

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info().Msg("State file not found, using default values")
			return s.prefs, nil
		}
		s.logger.Warn().Err(err).Msg("Failed to read state file, using default values")
		return s.prefs, &StorageError{Op: "load", Path: s.path, Err: err}
	}

	loaded := models.DefaultPreferences()
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn().Err(err).Msg("Malformed state file, using default values")
		return s.prefs, nil
	}

	s.prefs = loaded
	s.logger.Info().
		Bool(models.PluggedIn.String(), loaded.PluggedIn).
		Bool(models.OnBattery.String(), loaded.OnBattery).
		Msg("State loaded")
	return s.prefs, nil
}

// Save writes the full preferences record to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return s.saveFailed(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return s.saveFailed(err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return s.saveFailed(err)
	}

	s.logger.Info().
		Bool(models.PluggedIn.String(), s.prefs.PluggedIn).
		Bool(models.OnBattery.String(), s.prefs.OnBattery).
		Msg("State saved")
	return nil
}

func (s *Store) saveFailed(err error) error {
	s.logger.Error().Err(err).Msg("Failed to save state; change kept in memory only")
	return &StorageError{Op: "save", Path: s.path, Err: err}
}

// Get returns the in-memory preference for c.
func (s *Store) Get(c models.PowerContext) bool {
	return s.prefs.Get(c)
}

// Snapshot returns a copy of the in-memory preferences.
func (s *Store) Snapshot() models.Preferences {
	return s.prefs
}

// Set updates the preference for c and saves the record. On save failure
// the in-memory value is still updated.
func (s *Store) Set(c models.PowerContext, enabled bool) error {
	s.prefs = s.prefs.With(c, enabled)
	return s.Save()
}
