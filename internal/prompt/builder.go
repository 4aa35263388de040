package prompt

import (
	"fmt"
	"strings"

	"github.com/phrazzld/slidegen/internal/domain"
)

// Build renders req into the instruction text for the given output schema
// version. Sections appear in a fixed order: format and business, topic,
// language, hook examples, organic constraints (organic mode only), structure
// directive and finally the output contract.
//
// Build is total. It does not validate req; unknown languages fall back to the
// English hook block and unknown modes are treated as viral.
func Build(req domain.GenerationRequest, version domain.SchemaVersion) string {
	if !version.IsValid() {
		version = domain.SchemaHookVariations
	}

	sections := []string{
		formatInstruction(req),
		"Topic: " + req.EffectiveTopic(),
		languageInstruction(req.Language),
		hookExamples(req.Mode, req.Language),
	}
	if req.Mode == domain.ModeOrganic {
		sections = append(sections, organicInstructions)
	}
	sections = append(sections, structureDirective)
	if version == domain.SchemaHookVariations {
		sections = append(sections, variationsDirective)
	}
	sections = append(sections, contract(version, req.Mode))

	return strings.Join(sections, "\n\n")
}

func formatInstruction(req domain.GenerationRequest) string {
	style := "viral"
	if req.Mode == domain.ModeOrganic {
		style = "educational"
	}

	if req.FormatID == domain.FormatCustom {
		return fmt.Sprintf("Create %s TikTok slideshow content using this CUSTOM FORMAT: %s\nFor: %s",
			style, strings.TrimSpace(req.CustomFormatText), req.BusinessDescription)
	}

	f := req.Format()
	instruction := fmt.Sprintf("Create %s TikTok slideshow content in the %q format for: %s",
		style, f.Title, req.BusinessDescription)
	if f.ExampleTopic != "" {
		instruction += fmt.Sprintf("\nExample topic for this format: %q", f.ExampleTopic)
	}
	return instruction
}

func languageInstruction(lang domain.Language) string {
	name := domain.LanguageEnglish.Name()
	if lang.IsValid() {
		name = lang.Name()
	}
	return fmt.Sprintf("Respond in %s. All content should be in %s.", name, name)
}
