package wordgen

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/heartmarshall/hangman-backend/internal/domain"
	"github.com/heartmarshall/hangman-backend/internal/lexicon"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockDetector struct {
	ContainsProfanityFunc func(text string) bool

	mu    sync.Mutex
	calls []string
}

func (m *mockDetector) ContainsProfanity(text string) bool {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()
	if m.ContainsProfanityFunc == nil {
		return false
	}
	return m.ContainsProfanityFunc(text)
}

func (m *mockDetector) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// profaneIfContains returns a detector that flags any text containing one of words.
func profaneIfContains(words ...string) *mockDetector {
	return &mockDetector{
		ContainsProfanityFunc: func(text string) bool {
			for _, w := range words {
				if strings.Contains(text, w) {
					return true
				}
			}
			return false
		},
	}
}

// countingVocab records how many times the word list is scanned.
type countingVocab struct {
	*lexicon.Lexicon

	mu    sync.Mutex
	scans int
}

func (v *countingVocab) Words() iter.Seq[string] {
	v.mu.Lock()
	v.scans++
	v.mu.Unlock()
	return v.Lexicon.Words()
}

func (v *countingVocab) Scans() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scans
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func noun(def string) domain.Sense {
	return domain.Sense{PartOfSpeech: domain.PartOfSpeechNoun, Definition: def}
}

func verb(def string) domain.Sense {
	return domain.Sense{PartOfSpeech: domain.PartOfSpeechVerb, Definition: def}
}

func adj(def string) domain.Sense {
	return domain.Sense{PartOfSpeech: domain.PartOfSpeechAdjective, Definition: def}
}

// buildLexicon creates a lexicon from word → senses pairs.
func buildLexicon(entries map[string][]domain.Sense) *lexicon.Lexicon {
	b := lexicon.NewBuilder()
	for w, senses := range entries {
		b.Add(w, senses...)
	}
	return b.Build()
}
