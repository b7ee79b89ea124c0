package wordgen

// Reason identifies why a candidate word was rejected. The zero value means
// the word was accepted.
type Reason string

const (
	ReasonIncorrectLength     Reason = "incorrect_length"
	ReasonInvalidCharacters   Reason = "invalid_characters"
	ReasonProfanityWord       Reason = "profanity_word"
	ReasonNoDefinition        Reason = "no_definition"
	ReasonProfanityDefinition Reason = "profanity_definition"
	ReasonOffensiveContent    Reason = "offensive_content"
	ReasonDistressingContent  Reason = "distressing_content"
	ReasonDistressingDomain   Reason = "distressing_domain"
)

// AllReasons lists every rejection reason in the order the checks run.
var AllReasons = []Reason{
	ReasonIncorrectLength,
	ReasonInvalidCharacters,
	ReasonProfanityWord,
	ReasonNoDefinition,
	ReasonProfanityDefinition,
	ReasonOffensiveContent,
	ReasonDistressingContent,
	ReasonDistressingDomain,
}

func (r Reason) String() string { return string(r) }
