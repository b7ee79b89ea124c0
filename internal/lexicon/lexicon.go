// Package lexicon holds the in-memory vocabulary the word generator samples
// from. A Lexicon maps lowercase words to their senses in source order and
// is immutable once built, so it can be shared by concurrent readers
// without locking.
package lexicon

import (
	"iter"
	"slices"

	"github.com/heartmarshall/hangman-backend/internal/domain"
)

// Lexicon is an immutable word → senses mapping.
type Lexicon struct {
	words  []string
	senses map[string][]domain.Sense
}

// Words yields every known word in lexicographic order.
func (l *Lexicon) Words() iter.Seq[string] {
	return slices.Values(l.words)
}

// Senses returns the senses of word in source order. The returned slice
// must not be modified. Unknown words yield nil.
func (l *Lexicon) Senses(word string) []domain.Sense {
	return l.senses[word]
}

// Contains reports whether word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.senses[word]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// SenseCount returns the total number of senses across all words.
func (l *Lexicon) SenseCount() int {
	n := 0
	for _, s := range l.senses {
		n += len(s)
	}
	return n
}

// Builder accumulates words and senses before freezing them into a Lexicon.
// A Builder is not safe for concurrent use.
type Builder struct {
	senses map[string][]domain.Sense
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{senses: make(map[string][]domain.Sense)}
}

// Add registers word and appends senses after any already recorded for it.
// Calling Add without senses registers a word that has no definition.
// Empty words are ignored.
func (b *Builder) Add(word string, senses ...domain.Sense) {
	if word == "" {
		return
	}
	existing, ok := b.senses[word]
	if !ok {
		existing = []domain.Sense{}
	}
	b.senses[word] = append(existing, senses...)
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int {
	return len(b.senses)
}

// Build freezes the accumulated data. The Builder must not be used afterwards.
func (b *Builder) Build() *Lexicon {
	words := make([]string, 0, len(b.senses))
	for w := range b.senses {
		words = append(words, w)
	}
	slices.Sort(words)

	lex := &Lexicon{words: words, senses: b.senses}
	b.senses = nil
	return lex
}
