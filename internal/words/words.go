// Package words holds the pacing table for frequent short words.
package words

import "strings"

// factors maps common words to their pacing multiplier. Familiar words are
// typed faster, so the values are far below 1.
var factors = map[string]float64{
	"the": 0.025, "be": 0.025, "to": 0.025, "of": 0.025, "and": 0.025,
	"a": 0.015, "in": 0.025, "that": 0.03, "have": 0.03, "i": 0.015,
	"it": 0.025, "for": 0.025, "not": 0.025, "on": 0.02, "with": 0.03,
	"he": 0.02, "as": 0.02, "you": 0.025, "do": 0.02, "at": 0.02,
	"this": 0.03, "but": 0.025, "his": 0.025, "by": 0.02, "from": 0.03,
	"they": 0.03, "we": 0.02, "say": 0.025, "her": 0.025, "she": 0.025,
	"or": 0.02, "an": 0.02, "will": 0.03, "my": 0.02, "one": 0.025,
	"all": 0.025, "would": 0.035, "there": 0.03, "their": 0.03, "what": 0.03,
	"so": 0.02, "up": 0.02, "out": 0.025, "if": 0.02, "about": 0.003,
	"who": 0.025, "get": 0.025, "which": 0.03, "go": 0.02, "me": 0.02,
	"is": 0.02, "are": 0.025, "was": 0.025, "were": 0.03,
}

// Factor returns the pacing multiplier for a word, folding case, or 1 when
// the word is not in the table.
func Factor(word string) float64 {
	if f, ok := factors[strings.ToLower(word)]; ok {
		return f
	}
	return 1.0
}
