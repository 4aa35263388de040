package response

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/generation"
)

// Context carries what the validator needs from the request that produced the
// reply.
type Context struct {
	// Version selects the required field set.
	Version domain.SchemaVersion

	// FormatID is used to stamp the catalog label on the content.
	FormatID domain.FormatID

	// Language selects the phrase tables used when padding hook variations.
	Language domain.Language

	// SearchTermPool pads searchTerms when the model returned fewer than
	// domain.MinSearchTerms. It may be empty.
	SearchTermPool []string
}

// Validate parses jsonText and returns content that satisfies every
// domain.GeneratedContent invariant. Parse failures wrap
// generation.ErrMalformedJSON; missing or unusable fields wrap
// generation.ErrSchemaViolation. Keys outside the schema are ignored.
func Validate(jsonText string, vc Context) (domain.GeneratedContent, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &fields); err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("%w: %v", generation.ErrMalformedJSON, err)
	}
	if fields == nil {
		return domain.GeneratedContent{}, fmt.Errorf("%w: top-level value is not an object", generation.ErrSchemaViolation)
	}

	version := vc.Version
	if !version.IsValid() {
		version = domain.SchemaHookVariations
	}

	var content domain.GeneratedContent
	var err error

	if content.Title, err = requiredString(fields, "title"); err != nil {
		return domain.GeneratedContent{}, err
	}

	switch version {
	case domain.SchemaHook:
		if content.Hook, err = requiredString(fields, "hook"); err != nil {
			return domain.GeneratedContent{}, err
		}
	case domain.SchemaHookVariations:
		variations, err := requiredList(fields, "hookVariations")
		if err != nil {
			return domain.GeneratedContent{}, err
		}
		if len(variations) == 0 {
			return domain.GeneratedContent{}, violation("hookVariations", "has no usable entries")
		}
		content.HookVariations = PadHookVariations(variations, vc.Language)
		content.SelectedHookIndex = selectedIndex(fields["selectedHookIndex"])
		content.Hook = content.HookVariations[content.SelectedHookIndex]
	}

	slides, err := requiredList(fields, "slides")
	if err != nil {
		return domain.GeneratedContent{}, err
	}
	if len(slides) < domain.SlideCount {
		return domain.GeneratedContent{}, violation("slides",
			fmt.Sprintf("needs %d entries, got %d", domain.SlideCount, len(slides)))
	}
	content.Slides = slides[:domain.SlideCount]

	if content.CTA, err = requiredString(fields, "cta"); err != nil {
		return domain.GeneratedContent{}, err
	}

	terms, err := requiredList(fields, "searchTerms")
	if err != nil {
		return domain.GeneratedContent{}, err
	}
	terms = padSearchTerms(terms, vc.SearchTermPool)
	if len(terms) < domain.MinSearchTerms {
		return domain.GeneratedContent{}, violation("searchTerms",
			fmt.Sprintf("needs at least %d entries, got %d", domain.MinSearchTerms, len(terms)))
	}
	if len(terms) > domain.MaxSearchTerms {
		terms = terms[:domain.MaxSearchTerms]
	}
	content.SearchTerms = terms

	content.Format = domain.FormatLabel(vc.FormatID)

	if err := content.Validate(); err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("%w: %v", generation.ErrSchemaViolation, err)
	}
	return content, nil
}

func violation(field, msg string) error {
	return fmt.Errorf("%w: %s %s", generation.ErrSchemaViolation, field, msg)
}

func requiredString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return "", violation(key, "is missing")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", violation(key, "must be a string")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", violation(key, "is empty")
	}
	return s, nil
}

// requiredList decodes a string array, trimming entries and dropping blanks.
func requiredList(fields map[string]json.RawMessage, key string) ([]string, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, violation(key, "is missing")
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, violation(key, "must be an array of strings")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}

// selectedIndex decodes selectedHookIndex. Missing, non-integer or
// out-of-range values select the first variation.
func selectedIndex(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0
	}
	if f != math.Trunc(f) || f < 0 || f >= domain.HookVariationCount {
		return 0
	}
	return int(f)
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// padSearchTerms appends pool entries not already present until terms reaches
// domain.MinSearchTerms.
func padSearchTerms(terms, pool []string) []string {
	if len(terms) >= domain.MinSearchTerms {
		return terms
	}

	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		seen[strings.ToLower(t)] = true
	}

	for _, candidate := range pool {
		if len(terms) >= domain.MinSearchTerms {
			break
		}
		key := strings.ToLower(strings.TrimSpace(candidate))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, strings.TrimSpace(candidate))
	}
	return terms
}
