package catalog

import "strings"

// Recognized UI-facing condition slugs. The snapshot resolves any slug that
// a loaded Condition row derives to, but these five are the set the search
// surface documents.
const (
	SlugDiabeticFriendly = "diabetic-friendly"
	SlugPlantarFasciitis = "plantar-fasciitis"
	SlugFootPain         = "foot-pain"
	SlugWideFoot         = "wide-foot"
	SlugOrthopedic       = "orthopedic"
)

// Slugify derives the canonical slug for a human-readable name: lowercase,
// with every whitespace run collapsed to a single hyphen. The derivation is
// the single source of truth for both name->slug and slug->condition lookups.
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
