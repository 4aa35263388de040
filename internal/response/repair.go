package response

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phrazzld/slidegen/internal/domain"
)

// substitution swaps one stock hook phrase for another. The pattern only
// matches the phrase as whole words: submatches 1 and 2 are the surrounding
// boundary characters, which are kept.
type substitution struct {
	pattern *regexp.Regexp
	with    string
}

func sub(from, to string) substitution {
	return substitution{
		pattern: regexp.MustCompile(`(?i)(^|[^\p{L}])` + regexp.QuoteMeta(from) + `($|[^\p{L}])`),
		with:    to,
	}
}

// apply returns s with the first whole-word occurrence of the phrase replaced.
func (sb substitution) apply(s string) (string, bool) {
	loc := sb.pattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", false
	}
	return s[:loc[3]] + sb.with + s[loc[4]:], true
}

var hookSubstitutions = map[domain.Language][]substitution{
	domain.LanguageEnglish: {
		sub("what if", "did you know"),
		sub("did you know", "what if"),
		sub("stop scrolling if", "keep watching if"),
		sub("nobody", "almost no one"),
		sub("why", "here's why"),
		sub("everything", "most of what"),
	},
	domain.LanguageSpanish: {
		sub("¿y si", "¿sabías que"),
		sub("¿sabías que", "¿y si"),
		sub("nadie", "casi nadie"),
		sub("por qué", "el motivo por el que"),
		sub("todo", "casi todo"),
	},
	domain.LanguagePortuguese: {
		sub("e se", "você sabia que"),
		sub("você sabia que", "e se"),
		sub("ninguém", "quase ninguém"),
		sub("tudo", "quase tudo"),
	},
	domain.LanguageFrench: {
		sub("et si", "savais-tu que"),
		sub("savais-tu que", "et si"),
		sub("personne", "presque personne"),
		sub("tout", "presque tout"),
	},
	domain.LanguageGerman: {
		sub("was wäre, wenn", "wusstest du, dass"),
		sub("wusstest du, dass", "was wäre, wenn"),
		sub("niemand", "kaum jemand"),
		sub("alles", "fast alles"),
	},
	domain.LanguageItalian: {
		sub("e se", "lo sapevi che"),
		sub("lo sapevi che", "e se"),
		sub("nessuno", "quasi nessuno"),
		sub("tutto", "quasi tutto"),
	},
}

var hookPrefixes = map[domain.Language][]string{
	domain.LanguageEnglish:    {"did you know: %s", "here's the truth: %s", "real talk: %s"},
	domain.LanguageSpanish:    {"¿sabías esto? %s", "la verdad: %s", "te lo cuento: %s"},
	domain.LanguagePortuguese: {"você sabia? %s", "a verdade: %s", "olha só: %s"},
	domain.LanguageFrench:     {"le savais-tu ? %s", "la vérité : %s", "écoute bien : %s"},
	domain.LanguageGerman:     {"wusstest du? %s", "die Wahrheit: %s", "ganz ehrlich: %s"},
	domain.LanguageItalian:    {"lo sapevi? %s", "la verità: %s", "ascolta bene: %s"},
}

// PadHookVariations returns exactly domain.HookVariationCount hooks. Longer
// input is truncated. Shorter input is padded with variants derived from the
// first entry, which always stays at index 0: phrase substitutions first, then
// prefixed forms, then numbered copies. Padded entries are lexically distinct
// from every other entry, ignoring case. The caller guarantees at least one
// entry.
func PadHookVariations(variations []string, lang domain.Language) []string {
	if len(variations) >= domain.HookVariationCount {
		out := make([]string, domain.HookVariationCount)
		copy(out, variations)
		return out
	}

	out := make([]string, len(variations), domain.HookVariationCount)
	copy(out, variations)
	base := out[0]

	seen := make(map[string]bool, domain.HookVariationCount)
	for _, v := range out {
		seen[strings.ToLower(v)] = true
	}
	add := func(candidate string) {
		if len(out) >= domain.HookVariationCount {
			return
		}
		key := strings.ToLower(strings.TrimSpace(candidate))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(candidate))
	}

	for _, s := range substitutionsFor(lang) {
		if swapped, ok := s.apply(base); ok {
			add(swapped)
		}
	}

	for _, prefix := range prefixesFor(lang) {
		add(fmt.Sprintf(prefix, base))
	}

	for n := 2; len(out) < domain.HookVariationCount; n++ {
		add(fmt.Sprintf("%s (%d)", base, n))
	}

	return out
}

func substitutionsFor(lang domain.Language) []substitution {
	if subs, ok := hookSubstitutions[lang]; ok {
		return subs
	}
	return hookSubstitutions[domain.LanguageEnglish]
}

func prefixesFor(lang domain.Language) []string {
	if prefixes, ok := hookPrefixes[lang]; ok {
		return prefixes
	}
	return hookPrefixes[domain.LanguageEnglish]
}
