package domain

import "strings"

// UserPreferences are the choices remembered between sessions. They are loaded
// and saved by a store outside the pipeline and only seed new requests.
type UserPreferences struct {
	FormatID     FormatID `json:"format_id" mapstructure:"format_id"`
	Language     Language `json:"language" mapstructure:"language"`
	Mode         Mode     `json:"mode" mapstructure:"mode"`
	CustomFormat string   `json:"custom_format,omitempty" mapstructure:"custom_format"`
}

// DefaultPreferences returns the preferences used before anything is saved.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		FormatID: FormatTop5Tips,
		Language: LanguageEnglish,
		Mode:     ModeViral,
	}
}

// Validate checks that every remembered choice is still meaningful.
func (p UserPreferences) Validate() error {
	if _, ok := LookupFormat(p.FormatID); !ok {
		return newValidationError("format", "unknown format "+string(p.FormatID), ErrUnknownFormat)
	}
	if p.FormatID == FormatCustom && strings.TrimSpace(p.CustomFormat) == "" {
		return newValidationError("custom_format", "must not be empty", ErrCustomFormatRequired)
	}
	if !p.Language.IsValid() {
		return newValidationError("language", "unsupported language "+string(p.Language), ErrUnsupportedLanguage)
	}
	if !p.Mode.IsValid() {
		return newValidationError("mode", "must be viral or organic", ErrInvalidMode)
	}
	return nil
}

// WithDefaults fills zero-valued fields from DefaultPreferences.
func (p UserPreferences) WithDefaults() UserPreferences {
	d := DefaultPreferences()
	if p.FormatID == "" {
		p.FormatID = d.FormatID
	}
	if p.Language == "" {
		p.Language = d.Language
	}
	if p.Mode == "" {
		p.Mode = d.Mode
	}
	return p
}

// NewRequest seeds a GenerationRequest from the preferences. Credentials and
// business description come from configuration, the topic from the user.
func (p UserPreferences) NewRequest(topic, businessDescription, apiKey string) GenerationRequest {
	return GenerationRequest{
		FormatID:            p.FormatID,
		CustomFormatText:    p.CustomFormat,
		Topic:               topic,
		Language:            p.Language,
		BusinessDescription: businessDescription,
		Mode:                p.Mode,
		APIKey:              apiKey,
	}
}
