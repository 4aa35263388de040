package domain

import (
	"fmt"
	"strings"
)

// Cardinalities of the generated slideshow script.
const (
	SlideCount         = 5
	MinSearchTerms     = 5
	MaxSearchTerms     = 7
	HookVariationCount = 3
)

// GeneratedContent is the typed result of one pipeline run. It lives only in
// the caller's state and replaces any earlier result.
type GeneratedContent struct {
	Title string `json:"title"`

	// Hook is the opening line. For hook_variations content it mirrors
	// HookVariations[SelectedHookIndex].
	Hook string `json:"hook"`

	HookVariations    []string `json:"hookVariations,omitempty"`
	SelectedHookIndex int      `json:"selectedHookIndex"`

	Slides      []string `json:"slides"`
	CTA         string   `json:"cta"`
	SearchTerms []string `json:"searchTerms"`

	// Format is the catalog label, never the model's own echo.
	Format string `json:"format"`
}

// Validate checks the invariants every pipeline output must satisfy.
func (c *GeneratedContent) Validate() error {
	if c == nil {
		return ErrEmptyContent
	}

	if strings.TrimSpace(c.Title) == "" {
		return newValidationError("title", "must not be empty", ErrEmptyContent)
	}

	if strings.TrimSpace(c.Hook) == "" {
		return newValidationError("hook", "must not be empty", ErrEmptyContent)
	}

	if c.HookVariations != nil {
		if len(c.HookVariations) != HookVariationCount {
			return newValidationError("hookVariations",
				fmt.Sprintf("must have exactly %d entries, got %d", HookVariationCount, len(c.HookVariations)), nil)
		}
		if err := nonEmptyEntries("hookVariations", c.HookVariations); err != nil {
			return err
		}
		if c.SelectedHookIndex < 0 || c.SelectedHookIndex >= HookVariationCount {
			return newValidationError("selectedHookIndex",
				fmt.Sprintf("must be in [0,%d), got %d", HookVariationCount, c.SelectedHookIndex), nil)
		}
	}

	if len(c.Slides) != SlideCount {
		return newValidationError("slides",
			fmt.Sprintf("must have exactly %d entries, got %d", SlideCount, len(c.Slides)), nil)
	}
	if err := nonEmptyEntries("slides", c.Slides); err != nil {
		return err
	}

	if strings.TrimSpace(c.CTA) == "" {
		return newValidationError("cta", "must not be empty", ErrEmptyContent)
	}

	if len(c.SearchTerms) < MinSearchTerms {
		return newValidationError("searchTerms",
			fmt.Sprintf("must have at least %d entries, got %d", MinSearchTerms, len(c.SearchTerms)), nil)
	}
	if err := nonEmptyEntries("searchTerms", c.SearchTerms); err != nil {
		return err
	}

	if strings.TrimSpace(c.Format) == "" {
		return newValidationError("format", "must not be empty", ErrEmptyContent)
	}

	return nil
}

// Clone returns a deep copy so callers can hand out content without sharing
// the underlying slices.
func (c GeneratedContent) Clone() GeneratedContent {
	c.HookVariations = cloneStrings(c.HookVariations)
	c.Slides = cloneStrings(c.Slides)
	c.SearchTerms = cloneStrings(c.SearchTerms)
	return c
}

func nonEmptyEntries(field string, values []string) error {
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return newValidationError(field, fmt.Sprintf("entry %d is empty", i), ErrEmptyContent)
		}
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
