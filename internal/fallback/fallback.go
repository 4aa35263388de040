package fallback

import "github.com/phrazzld/slidegen/internal/domain"

// defaultKey covers any format without its own entry.
const defaultKey domain.FormatID = ""

type entry struct {
	title       string
	hooks       [domain.HookVariationCount]string
	slides      [domain.SlideCount]string
	cta         string
	searchTerms []string
}

type key struct {
	format domain.FormatID
	lang   domain.Language
}

func lookup(formatID domain.FormatID, lang domain.Language) entry {
	for _, k := range []key{
		{formatID, lang},
		{defaultKey, lang},
		{formatID, domain.LanguageEnglish},
		{defaultKey, domain.LanguageEnglish},
	} {
		if e, ok := demoTable[k]; ok {
			return e
		}
	}
	// demoTable always carries the English default.
	panic("fallback: missing english default entry")
}

// Content returns demo content for formatID in lang. Missing (format,
// language) pairs fall back to the language's default entry, then to English.
// The format label is always the catalog label for formatID. topic is accepted
// for call-site symmetry with a live generation and does not change the
// result: demo content is not personalized.
func Content(formatID domain.FormatID, topic string, lang domain.Language) domain.GeneratedContent {
	e := lookup(formatID, lang)
	return domain.GeneratedContent{
		Title:             e.title,
		Hook:              e.hooks[0],
		HookVariations:    append([]string(nil), e.hooks[:]...),
		SelectedHookIndex: 0,
		Slides:            append([]string(nil), e.slides[:]...),
		CTA:               e.cta,
		SearchTerms:       append([]string(nil), e.searchTerms...),
		Format:            domain.FormatLabel(formatID),
	}
}

// SearchTerms returns the demo search terms for formatID in lang, used to pad
// short model output.
func SearchTerms(formatID domain.FormatID, lang domain.Language) []string {
	return append([]string(nil), lookup(formatID, lang).searchTerms...)
}
