package mocks

import (
	"sync"

	"github.com/phrazzld/slidegen/internal/domain"
)

// MockPreferencesStore is an in-memory preferences store
type MockPreferencesStore struct {
	// LoadFn and SaveFn override the in-memory behavior when set
	LoadFn func() (domain.UserPreferences, error)
	SaveFn func(prefs domain.UserPreferences) error

	mu    sync.Mutex
	prefs *domain.UserPreferences
	saved []domain.UserPreferences
}

// NewMockPreferencesStore creates a store holding prefs.
func NewMockPreferencesStore(prefs domain.UserPreferences) *MockPreferencesStore {
	return &MockPreferencesStore{prefs: &prefs}
}

// Load returns the held preferences, or the defaults when none are held.
func (m *MockPreferencesStore) Load() (domain.UserPreferences, error) {
	if m.LoadFn != nil {
		return m.LoadFn()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prefs == nil {
		return domain.DefaultPreferences(), nil
	}
	return *m.prefs, nil
}

// Save records prefs and holds them for later loads.
func (m *MockPreferencesStore) Save(prefs domain.UserPreferences) error {
	m.mu.Lock()
	m.saved = append(m.saved, prefs)
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(prefs)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = &prefs
	return nil
}

// Saved returns every value passed to Save.
func (m *MockPreferencesStore) Saved() []domain.UserPreferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.UserPreferences(nil), m.saved...)
}
