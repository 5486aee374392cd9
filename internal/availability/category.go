package availability

import "strings"

// Category classifies a resource by the kind of equipment it represents.
// The category decides which booking rules apply (minimum duration,
// increment, operating hours).
type Category string

const (
	CategoryPadel    Category = "padel_court"
	CategoryTennis   Category = "tennis_court"
	CategoryCardio   Category = "cardio_equipment"
	CategoryStrength Category = "strength_equipment"
)

// categoryKeywords maps each category to the substrings that identify it in a
// resource's name or description. Matching is case-insensitive.
//
// Order matters: Classify scans this table top to bottom and the first
// category with a matching keyword wins. Specific categories come first;
// padel is last because it owns the generic court keywords ("terrain",
// "court") and is also the fallback for unmatched resources.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryTennis, []string{"tennis"}},
	{CategoryCardio, []string{"vélo", "velo", "tapis", "elliptique", "rameur", "cardio"}},
	{CategoryStrength, []string{"musculation", "haltère", "haltere", "presse", "banc"}},
	{CategoryPadel, []string{"padel", "terrain", "court"}},
}

// Classify derives the equipment category from a resource's name and
// description. It is a pure function: the same text always yields the same
// category. Resources that match no keyword default to CategoryPadel.
func Classify(name, description string) Category {
	text := strings.ToLower(name + " " + description)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.category
			}
		}
	}
	return CategoryPadel
}
