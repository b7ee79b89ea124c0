package wordgen

// offensiveMarker rejects any preferred definition that mentions it.
const offensiveMarker = "offensive"

// invalidCharacters never appear in a playable word. WordNet joins
// multi-word lemmas with "_".
const invalidCharacters = "_-"

// distressingTerms are substrings of a definition that make a word
// unsuitable for the game: violence, death, gore, disease, bodily fluids.
var distressingTerms = []string{
	"malformed", "fetus", "foetus", "corpse", "cadaver",
	"death", "dead", "dying",
	"tumor", "tumour", "cancer", "disease", "deformity", "deformed",
	"murder", "suicide", "killing", "slaughter", "torture", "rape", "abuse", "violent",
	"blood", "bleeding", "wound", "injury", "mutilate", "dismember",
	"excrement", "feces", "faeces", "urine", "vomit", "pus",
	"infection", "infected",
}

// distressingDomains are WordNet usage/domain labels as they appear inside
// definitions.
var distressingDomains = []string{
	"(medicine)", "(pathology)", "(surgery)", "(anatomy)", "(psychiatry)",
	"(military)", "(warfare)",
	"(slang)", "(vulgar)", "(offensive)",
}
