package domain

import "strings"

// GenerationRequest carries every user choice needed for one pipeline run.
// It is built fresh for each user-triggered generation and never reused.
type GenerationRequest struct {
	FormatID            FormatID
	CustomFormatText    string
	Topic               string
	Language            Language
	BusinessDescription string
	Mode                Mode
	APIKey              string
}

// Validate checks the request's choices. Missing credentials or business
// description are deliberately not checked here: the pipeline reports those as
// a setup error before anything else runs.
func (r GenerationRequest) Validate() error {
	if _, ok := LookupFormat(r.FormatID); !ok {
		return newValidationError("format", "unknown format "+string(r.FormatID), ErrUnknownFormat)
	}

	if r.FormatID == FormatCustom && strings.TrimSpace(r.CustomFormatText) == "" {
		return newValidationError("custom_format", "must not be empty", ErrCustomFormatRequired)
	}

	if !r.Language.IsValid() {
		return newValidationError("language", "unsupported language "+string(r.Language), ErrUnsupportedLanguage)
	}

	if !r.Mode.IsValid() {
		return newValidationError("mode", "must be viral or organic", ErrInvalidMode)
	}

	return nil
}

// Format returns the catalog entry for the request's format.
func (r GenerationRequest) Format() Format {
	f, ok := LookupFormat(r.FormatID)
	if !ok {
		return Format{ID: r.FormatID, Title: string(r.FormatID)}
	}
	return f
}

// EffectiveTopic returns the user's topic, or the format's default topic when
// none was given.
func (r GenerationRequest) EffectiveTopic() string {
	if topic := strings.TrimSpace(r.Topic); topic != "" {
		return topic
	}
	return r.Format().DefaultTopic()
}

// HasSetup reports whether the request carries the credentials and business
// description a live call needs.
func (r GenerationRequest) HasSetup() bool {
	return strings.TrimSpace(r.APIKey) != "" && strings.TrimSpace(r.BusinessDescription) != ""
}
