package wordgen

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/hangman-backend/internal/domain"
)

type senseSource interface {
	Senses(word string) []domain.Sense
}

type profanityDetector interface {
	ContainsProfanity(text string) bool
}

// Outcome is the verdict of Validate. Reason is empty when the word is
// accepted.
type Outcome struct {
	Reason Reason
}

// Accepted reports whether the word passed every check.
func (o Outcome) Accepted() bool { return o.Reason == "" }

func reject(r Reason) Outcome { return Outcome{Reason: r} }

// Validator decides whether a word is fit to be a hangman answer.
// It holds only read-only collaborators and is safe for concurrent use.
type Validator struct {
	senses    senseSource
	profanity profanityDetector
}

// NewValidator creates a Validator that looks up senses in src and checks
// text with detector.
func NewValidator(src senseSource, detector profanityDetector) *Validator {
	return &Validator{senses: src, profanity: detector}
}

// Validate runs the checks in order and reports the first one that fails.
// Cheap structural checks run before any sense lookup.
func (v *Validator) Validate(word string, length int) Outcome {
	if utf8.RuneCountInString(word) != length {
		return reject(ReasonIncorrectLength)
	}
	if strings.ContainsAny(word, invalidCharacters) {
		return reject(ReasonInvalidCharacters)
	}
	if v.profanity.ContainsProfanity(word) {
		return reject(ReasonProfanityWord)
	}

	sense, ok := PreferredSense(v.senses.Senses(word))
	if !ok {
		return reject(ReasonNoDefinition)
	}
	definition := strings.ToLower(sense.Definition)

	if v.profanity.ContainsProfanity(definition) {
		return reject(ReasonProfanityDefinition)
	}
	if strings.Contains(definition, offensiveMarker) {
		return reject(ReasonOffensiveContent)
	}
	if containsAny(definition, distressingTerms) {
		return reject(ReasonDistressingContent)
	}
	if containsAny(definition, distressingDomains) {
		return reject(ReasonDistressingDomain)
	}
	return Outcome{}
}

// PreferredSense picks the sense whose definition is checked: the first
// noun sense, else the first sense. ok is false when senses is empty.
func PreferredSense(senses []domain.Sense) (domain.Sense, bool) {
	if len(senses) == 0 {
		return domain.Sense{}, false
	}
	for _, s := range senses {
		if s.IsNoun() {
			return s, true
		}
	}
	return senses[0], true
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
