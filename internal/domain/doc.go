// Package domain holds the content formats, languages and modes a creator can
// pick from, the GenerationRequest assembled from those choices, and the
// GeneratedContent a run produces. Validation of each lives next to the type.
package domain
