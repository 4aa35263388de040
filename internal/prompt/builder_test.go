package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		FormatID:            domain.FormatTop5Tips,
		Language:            domain.LanguageEnglish,
		Mode:                domain.ModeViral,
		BusinessDescription: "sleep coaching for toddlers",
		APIKey:              "sk-test",
	}
}

func TestBuild_BusinessDescriptionAndTopic(t *testing.T) {
	t.Parallel()

	versions := []domain.SchemaVersion{domain.SchemaHook, domain.SchemaHookVariations}
	for _, f := range domain.Formats() {
		for _, lang := range domain.Languages() {
			for _, mode := range []domain.Mode{domain.ModeViral, domain.ModeOrganic} {
				for _, version := range versions {
					req := baseRequest()
					req.FormatID = f.ID
					req.Language = lang
					req.Mode = mode

					got := Build(req, version)
					assert.Contains(t, got, "sleep coaching for toddlers")
					assert.Contains(t, got, "Topic: "+f.DefaultTopic(),
						"empty topic should use the default for %s", f.ID)
				}
			}
		}
	}
}

func TestBuild_DefaultTopic(t *testing.T) {
	t.Parallel()

	got := Build(baseRequest(), domain.SchemaHookVariations)
	assert.Contains(t, got, "top 5 tips content")

	req := baseRequest()
	req.Topic = "naps after daycare"
	got = Build(req, domain.SchemaHookVariations)
	assert.Contains(t, got, "Topic: naps after daycare")
	assert.NotContains(t, got, "top 5 tips content")
}

func TestBuild_CustomFormat(t *testing.T) {
	t.Parallel()

	req := baseRequest()
	req.FormatID = domain.FormatCustom
	req.CustomFormatText = "one parenting myth per slide, answered by a pediatric nurse"

	for _, version := range []domain.SchemaVersion{domain.SchemaHook, domain.SchemaHookVariations} {
		got := Build(req, version)
		assert.Contains(t, got, req.CustomFormatText)
		assert.Contains(t, got, "custom format content")
		for _, f := range domain.Formats() {
			assert.NotContains(t, got, f.ExampleTopic, "custom prompt leaked the %s example", f.ID)
		}
	}
}

func TestBuild_CatalogFormatIncludesExample(t *testing.T) {
	t.Parallel()

	for _, f := range domain.Formats() {
		req := baseRequest()
		req.FormatID = f.ID

		got := Build(req, domain.SchemaHook)
		assert.Contains(t, got, f.Title)
		assert.Contains(t, got, f.ExampleTopic)
	}
}

func TestBuild_SchemaVersionsAreNotMixed(t *testing.T) {
	t.Parallel()

	hook := Build(baseRequest(), domain.SchemaHook)
	assert.Contains(t, hook, `"hook"`)
	assert.NotContains(t, hook, "hookVariations")
	assert.NotContains(t, hook, "selectedHookIndex")

	variations := Build(baseRequest(), domain.SchemaHookVariations)
	assert.Contains(t, variations, `"hookVariations"`)
	assert.Contains(t, variations, `"selectedHookIndex"`)
	assert.NotContains(t, variations, `"hook"`)
}

func TestBuild_Modes(t *testing.T) {
	t.Parallel()

	viral := Build(baseRequest(), domain.SchemaHookVariations)
	assert.Contains(t, viral, "EXAMPLES OF VIRAL HOOKS")
	assert.Contains(t, viral, "viral hook that stops scrolling immediately")
	assert.NotContains(t, viral, "ORGANIC CONTENT MODE")

	req := baseRequest()
	req.Mode = domain.ModeOrganic
	organic := Build(req, domain.SchemaHookVariations)
	assert.Contains(t, organic, "EXAMPLES OF ORGANIC EDUCATIONAL HOOKS")
	assert.Contains(t, organic, "ORGANIC CONTENT MODE")
	assert.Contains(t, organic, "educational hook that teaches something valuable")
	assert.Contains(t, organic, "engagement question")
}

func TestBuild_Language(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang        domain.Language
		instruction string
		hookMarker  string
	}{
		{domain.LanguageEnglish, "Respond in English. All content should be in English.", "EXAMPLES OF VIRAL HOOKS"},
		{domain.LanguageSpanish, "Respond in Spanish. All content should be in Spanish.", "EJEMPLOS DE HOOKS VIRALES"},
		{domain.LanguagePortuguese, "Respond in Portuguese.", "EXEMPLOS DE HOOKS VIRAIS"},
		{domain.LanguageFrench, "Respond in French.", "EXEMPLES DE HOOKS VIRAUX"},
		{domain.LanguageGerman, "Respond in German.", "BEISPIELE FÜR VIRALE HOOKS"},
		{domain.LanguageItalian, "Respond in Italian.", "ESEMPI DI HOOK VIRALI"},
	}

	for _, tc := range tests {
		t.Run(string(tc.lang), func(t *testing.T) {
			req := baseRequest()
			req.Language = tc.lang

			got := Build(req, domain.SchemaHook)
			assert.Contains(t, got, tc.instruction)
			assert.Contains(t, got, tc.hookMarker)
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	req := baseRequest()
	req.Topic = "bedtime battles"
	assert.Equal(t, Build(req, domain.SchemaHookVariations), Build(req, domain.SchemaHookVariations))
}

func TestBuild_SectionOrder(t *testing.T) {
	t.Parallel()

	req := baseRequest()
	req.Mode = domain.ModeOrganic
	got := Build(req, domain.SchemaHookVariations)

	markers := []string{
		"sleep coaching for toddlers",
		"Topic:",
		"Respond in English",
		"EXAMPLES OF ORGANIC EDUCATIONAL HOOKS",
		"ORGANIC CONTENT MODE",
		"STRUCTURE",
		"OUTPUT CONTRACT",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(got, m)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", m)
		assert.Greater(t, idx, last, "section %q out of order", m)
		last = idx
	}
}

func TestContractSchemas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schema   string
		required []string
	}{
		{"hook", hookSchemaJSON, []string{"title", "hook", "slides", "cta", "searchTerms"}},
		{"hook variations", hookVariationsSchemaJSON, []string{"title", "hookVariations", "selectedHookIndex", "slides", "cta", "searchTerms"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var parsed struct {
				Type                 string                     `json:"type"`
				Required             []string                   `json:"required"`
				Properties           map[string]json.RawMessage `json:"properties"`
				AdditionalProperties *bool                      `json:"additionalProperties"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.schema), &parsed))

			assert.Equal(t, "object", parsed.Type)
			assert.ElementsMatch(t, tc.required, parsed.Required)
			assert.Len(t, parsed.Properties, len(tc.required))
			require.NotNil(t, parsed.AdditionalProperties)
			assert.False(t, *parsed.AdditionalProperties)
		})
	}
}
