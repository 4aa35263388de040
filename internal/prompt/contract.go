package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/phrazzld/slidegen/internal/domain"
)

// hookSchema is the reply shape for domain.SchemaHook.
type hookSchema struct {
	Title       string   `json:"title" jsonschema:"minLength=1" jsonschema_description:"Short lowercase title that promises real value"`
	Hook        string   `json:"hook" jsonschema:"minLength=1" jsonschema_description:"Opening line shown on the first slide"`
	Slides      []string `json:"slides" jsonschema:"minItems=5,maxItems=5" jsonschema_description:"Exactly five body slides"`
	CTA         string   `json:"cta" jsonschema:"minLength=1" jsonschema_description:"Closing call-to-action"`
	SearchTerms []string `json:"searchTerms" jsonschema:"minItems=5,maxItems=7" jsonschema_description:"Five to seven visual search terms for stock images"`
}

// hookVariationsSchema is the reply shape for domain.SchemaHookVariations.
type hookVariationsSchema struct {
	Title             string   `json:"title" jsonschema:"minLength=1" jsonschema_description:"Short lowercase title that promises real value"`
	HookVariations    []string `json:"hookVariations" jsonschema:"minItems=3,maxItems=3" jsonschema_description:"Exactly three alternative opening lines"`
	SelectedHookIndex int      `json:"selectedHookIndex" jsonschema:"minimum=0,maximum=2" jsonschema_description:"0-based index of the strongest hook"`
	Slides            []string `json:"slides" jsonschema:"minItems=5,maxItems=5" jsonschema_description:"Exactly five body slides"`
	CTA               string   `json:"cta" jsonschema:"minLength=1" jsonschema_description:"Closing call-to-action"`
	SearchTerms       []string `json:"searchTerms" jsonschema:"minItems=5,maxItems=7" jsonschema_description:"Five to seven visual search terms for stock images"`
}

func generateSchema[T any]() string {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	schema := reflector.Reflect(v)
	// The JSON schema draft URL adds nothing for the model.
	schema.Version = ""

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("prompt: render schema: %v", err))
	}
	return string(out)
}

var (
	hookSchemaJSON           = generateSchema[hookSchema]()
	hookVariationsSchemaJSON = generateSchema[hookVariationsSchema]()
)

// exampleJSON renders the worked example object for version and mode.
func exampleJSON(version domain.SchemaVersion, mode domain.Mode) string {
	hookType, hookDescription, cta := "viral hook", "stops scrolling immediately",
		"call-to-action that invites the reader to take the next step"
	if mode == domain.ModeOrganic {
		hookType, hookDescription = "educational hook", "teaches something valuable"
		cta = "engagement question that asks for comments or experiences"
	}

	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString(`  "title": "authentic lowercase title that promises real value",` + "\n")
	if version == domain.SchemaHookVariations {
		fmt.Fprintf(&b, `  "hookVariations": ["%s that %s", "second %s with a different angle", "third %s with a different angle"],`+"\n",
			hookType, hookDescription, hookType, hookType)
		b.WriteString(`  "selectedHookIndex": 0,` + "\n")
	} else {
		fmt.Fprintf(&b, `  "hook": "%s that %s",`+"\n", hookType, hookDescription)
	}
	b.WriteString(`  "slides": ["value slide 1", "value slide 2", "value slide 3", "value slide 4", "value slide 5"],` + "\n")
	fmt.Fprintf(&b, `  "cta": "%s",`+"\n", cta)
	b.WriteString(`  "searchTerms": ["visual 1", "visual 2", "visual 3", "visual 4", "visual 5", "visual 6", "visual 7"]` + "\n")
	b.WriteString("}")
	return b.String()
}

// contract renders the output contract section for version.
func contract(version domain.SchemaVersion, mode domain.Mode) string {
	schema := hookSchemaJSON
	if version == domain.SchemaHookVariations {
		schema = hookVariationsSchemaJSON
	}
	return contractHeader + "\n" + exampleJSON(version, mode) + "\n\n" + schemaHeader + "\n" + schema
}
