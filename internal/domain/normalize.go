package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a lemma for use as a lexicon key:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - joins inner whitespace runs with a single underscore
//
// The underscore follows the WordNet convention for multi-word lemmas
// ("ice cream" becomes "ice_cream"). Hyphens and apostrophes are preserved.
func NormalizeWord(text string) string {
	fields := strings.FieldsFunc(strings.ToLower(text), unicode.IsSpace)
	return strings.Join(fields, "_")
}
