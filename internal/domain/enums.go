package domain

// PartOfSpeech represents the grammatical category of a sense.
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "NOUN"
	PartOfSpeechVerb      PartOfSpeech = "VERB"
	PartOfSpeechAdjective PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb    PartOfSpeech = "ADVERB"
	PartOfSpeechOther     PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb, PartOfSpeechOther:
		return true
	}
	return false
}

// ParsePartOfSpeech converts a stored value back to a PartOfSpeech.
// Unknown values map to PartOfSpeechOther.
func ParsePartOfSpeech(s string) PartOfSpeech {
	p := PartOfSpeech(s)
	if !p.IsValid() {
		return PartOfSpeechOther
	}
	return p
}
