package domain

// Sense is one dictionary meaning of a word: a part-of-speech tag and a
// definition. Senses are read-only once loaded into a lexicon.
type Sense struct {
	PartOfSpeech PartOfSpeech
	Definition   string
}

// IsNoun reports whether the sense is tagged as a noun.
func (s Sense) IsNoun() bool {
	return s.PartOfSpeech == PartOfSpeechNoun
}
