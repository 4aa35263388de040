package domain

import "strings"

// FormatID identifies a content structure from the format catalog.
type FormatID string

// Known format identifiers.
const (
	FormatTop5Tips        FormatID = "top5tips"
	FormatCommonErrors    FormatID = "commonerrors"
	FormatRecommendations FormatID = "recommendations"
	FormatBeforeAfter     FormatID = "beforeafter"
	FormatMyths           FormatID = "myths"
	FormatBeginner        FormatID = "beginner"

	// FormatCustom means the user supplies the format description as free text.
	FormatCustom FormatID = "custom"
)

// CustomFormatTitle is the label stamped on content produced from a custom format.
const CustomFormatTitle = "Custom Format"

// Format is a named content structure that guides the model's output style.
type Format struct {
	ID          FormatID `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`

	// ExampleTopic is a short canonical topic used to anchor the model's tone.
	ExampleTopic string `json:"example_topic,omitempty"`
}

var formatCatalog = []Format{
	{
		ID:           FormatTop5Tips,
		Title:        "Top 5 Tips",
		Description:  "Share your best 5 tips about your niche",
		Emoji:        "🔥",
		ExampleTopic: "5 tips to fall asleep faster tonight",
	},
	{
		ID:           FormatCommonErrors,
		Title:        "Common Errors",
		Description:  "Highlight mistakes people make in your field",
		Emoji:        "⚠️",
		ExampleTopic: "mistakes everyone makes with their morning routine",
	},
	{
		ID:           FormatRecommendations,
		Title:        "Recommendations",
		Description:  "Recommend tools, products, or strategies",
		Emoji:        "⭐",
		ExampleTopic: "books that quietly changed how I work",
	},
	{
		ID:           FormatBeforeAfter,
		Title:        "Before vs After",
		Description:  "Show transformation or improvement",
		Emoji:        "✨",
		ExampleTopic: "my desk setup before and after one weekend",
	},
	{
		ID:           FormatMyths,
		Title:        "Myths vs Facts",
		Description:  "Debunk common misconceptions",
		Emoji:        "💡",
		ExampleTopic: "sugar myths your dentist wishes you knew",
	},
	{
		ID:           FormatBeginner,
		Title:        "Beginner's Guide",
		Description:  "Essential steps for newcomers",
		Emoji:        "🎯",
		ExampleTopic: "your first week of strength training",
	},
}

// Formats returns the fixed catalog in display order. The custom format is not
// part of the catalog.
func Formats() []Format {
	out := make([]Format, len(formatCatalog))
	copy(out, formatCatalog)
	return out
}

// LookupFormat resolves a format identifier. The custom format resolves to a
// Format carrying CustomFormatTitle and no example topic.
func LookupFormat(id FormatID) (Format, bool) {
	if id == FormatCustom {
		return Format{
			ID:          FormatCustom,
			Title:       CustomFormatTitle,
			Description: "Describe your own slideshow structure",
			Emoji:       "🛠️",
		}, true
	}
	for _, f := range formatCatalog {
		if f.ID == id {
			return f, true
		}
	}
	return Format{}, false
}

// FormatLabel returns the human-readable label for id, or the raw id when it is
// not in the catalog.
func FormatLabel(id FormatID) string {
	if f, ok := LookupFormat(id); ok {
		return f.Title
	}
	return string(id)
}

// DefaultTopic is the topic used when the user leaves it empty.
func (f Format) DefaultTopic() string {
	return strings.ToLower(f.Title) + " content"
}
