package compositor

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultVariant is used for empty or unknown variant names
const DefaultVariant = "modern"

// Variant lays out the non-empty sections of a document
type Variant interface {
	Name() string
	Compose(doc types.Document, order types.SectionOrder) (Header, []Region)
}

var variants = map[string]Variant{
	"modern":  modern{},
	"classic": classic{},
}

// Lookup returns the named variant. Unknown names fall back to the
// default variant; the bool reports whether name was known.
func Lookup(name string) (Variant, bool) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return variants[DefaultVariant], false
	}
	return v, true
}

// Variants lists the registered variant names
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
