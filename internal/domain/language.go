package domain

// Language is a two-letter content language code.
type Language string

// Supported content languages.
const (
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguagePortuguese Language = "pt"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguageItalian    Language = "it"
)

var languageNames = map[Language]string{
	LanguageEnglish:    "English",
	LanguageSpanish:    "Spanish",
	LanguagePortuguese: "Portuguese",
	LanguageFrench:     "French",
	LanguageGerman:     "German",
	LanguageItalian:    "Italian",
}

// Languages returns the supported languages in a stable order.
func Languages() []Language {
	return []Language{
		LanguageEnglish,
		LanguageSpanish,
		LanguagePortuguese,
		LanguageFrench,
		LanguageGerman,
		LanguageItalian,
	}
}

// IsValid reports whether l is a supported language.
func (l Language) IsValid() bool {
	_, ok := languageNames[l]
	return ok
}

// Name returns the English display name of the language.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// Mode selects the tone preset of the generated content.
type Mode string

// Content modes.
const (
	// ModeViral is attention-maximizing and may be promotional.
	ModeViral Mode = "viral"

	// ModeOrganic is purely educational with no promotional elements.
	ModeOrganic Mode = "organic"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeViral || m == ModeOrganic
}

// SchemaVersion tags the output shape a prompt asks for and the validator
// expects. Hook and variation shapes are never mixed in a single run.
type SchemaVersion string

// Output schema versions.
const (
	// SchemaHook asks for a single "hook" string.
	SchemaHook SchemaVersion = "hook"

	// SchemaHookVariations asks for three "hookVariations" plus "selectedHookIndex".
	SchemaHookVariations SchemaVersion = "hook_variations"
)

// IsValid reports whether v is a known schema version.
func (v SchemaVersion) IsValid() bool {
	return v == SchemaHook || v == SchemaHookVariations
}
