package preferences

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/spf13/viper"
)

// ErrInvalidPreferences is returned by Save for preferences that do not
// validate, and by Load for a file holding such preferences.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Store reads and writes preferences at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewStore creates a Store for the YAML file at path. The file and its
// directory are created on the first Save.
func NewStore(logger *slog.Logger, path string) (*Store, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if path == "" {
		return nil, errors.New("preferences path cannot be empty")
	}
	return &Store{
		path:   path,
		logger: logger.With("component", "preferences_store"),
	}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved preferences with unset fields defaulted. A missing
// file yields domain.DefaultPreferences.
func (s *Store) Load() (domain.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no saved preferences, using defaults", "path", s.path)
			return domain.DefaultPreferences(), nil
		}
		return domain.UserPreferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs domain.UserPreferences
	if err := v.Unmarshal(&prefs); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}

	prefs = prefs.WithDefaults()
	if err := prefs.Validate(); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	return prefs, nil
}

// Save validates prefs and replaces the file with them.
func (s *Store) Save(prefs domain.UserPreferences) error {
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("format_id", string(prefs.FormatID))
	v.Set("language", string(prefs.Language))
	v.Set("mode", string(prefs.Mode))
	v.Set("custom_format", prefs.CustomFormat)

	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary preferences file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to create temporary preferences file: %w", err)
	}

	if err := v.WriteConfigAs(tmpName); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}

	s.logger.Debug("preferences saved",
		"path", s.path,
		"format", prefs.FormatID,
		"language", prefs.Language,
		"mode", prefs.Mode)
	return nil
}
