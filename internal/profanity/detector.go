// Package profanity classifies text against a profanity word list.
package profanity

import (
	"slices"
	"strings"
	"unicode"

	goaway "github.com/TwiN/go-away"
)

// Detector reports whether text contains a profane word. Matching is by
// whole word: text is split on every non-letter rune and each word is
// looked up exactly, so "canal" or "assess" are clean even though they
// contain listed words. Multi-word entries match as consecutive words.
//
// A Detector is immutable after construction and safe for concurrent use.
type Detector struct {
	words   map[string]struct{}
	phrases [][]string
}

// NewDetector creates a Detector over go-away's default dictionary plus
// extra words. Extra words are lowercased; blanks are ignored.
func NewDetector(extra ...string) *Detector {
	d := &Detector{words: make(map[string]struct{}, len(goaway.DefaultProfanities)+len(extra))}
	for _, entry := range slices.Concat(goaway.DefaultProfanities, extra) {
		d.add(entry)
	}
	return d
}

func (d *Detector) add(entry string) {
	tokens := tokenize(entry)
	switch len(tokens) {
	case 0:
	case 1:
		d.words[tokens[0]] = struct{}{}
	default:
		d.phrases = append(d.phrases, tokens)
	}
}

// ContainsProfanity reports whether text contains a profane word.
func (d *Detector) ContainsProfanity(text string) bool {
	tokens := tokenize(text)
	for i, tok := range tokens {
		if _, ok := d.words[tok]; ok {
			return true
		}
		for _, phrase := range d.phrases {
			if i+len(phrase) <= len(tokens) && slices.Equal(tokens[i:i+len(phrase)], phrase) {
				return true
			}
		}
	}
	return false
}

// tokenize lowercases text and splits it into runs of letters.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
