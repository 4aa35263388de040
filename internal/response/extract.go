package response

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phrazzld/slidegen/internal/generation"
)

// fencePattern matches an opening code fence with an optional language tag, or
// a closing fence.
var fencePattern = regexp.MustCompile("(?i)```[a-z]*[ \t]*\r?\n?")

// Extract strips Markdown code fences from raw and returns the substring from
// the first '{' to the last '}' inclusive. It does not parse the JSON.
func Extract(raw string) (string, error) {
	text := fencePattern.ReplaceAllString(raw, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("%w: reply of %d bytes has no {...} span", generation.ErrNoJSONFound, len(raw))
	}

	return text[start : end+1], nil
}
