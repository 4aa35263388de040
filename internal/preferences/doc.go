// Package preferences persists domain.UserPreferences in a small YAML file so
// the last used format, language, mode and custom format survive between
// sessions.
package preferences
