package mistake

import (
	"math/rand"
	"time"

	"github.com/typewright/typewright/internal/keymap"
)

// Kind identifies how a character was corrupted.
type Kind int

const (
	// KindNone marks a clean emission.
	KindNone Kind = iota
	// KindTypo substitutes a random key.
	KindTypo
	// KindSkip drops the character.
	KindSkip
	// KindDouble emits the character twice.
	KindDouble
	// KindTranspose emits the character followed by the next source character.
	KindTranspose
	// KindAdjacent substitutes a physically neighboring key.
	KindAdjacent
)

func (k Kind) String() string {
	switch k {
	case KindTypo:
		return "typo"
	case KindSkip:
		return "skip"
	case KindDouble:
		return "double"
	case KindTranspose:
		return "transpose"
	case KindAdjacent:
		return "adjacent"
	default:
		return "none"
	}
}

// typoKeys is the full letter/punctuation key row set used for random
// substitutions.
const typoKeys = "qwertyuiop[]asdfghjkl;'zxcvbnm,./"

// quoteTypoKeys substitutes for quote characters.
const quoteTypoKeys = `"'[];`

type weightedKind struct {
	kind   Kind
	weight float64
}

// Kind weights are walked in declaration order with a single uniform draw.
var (
	standardKinds = []weightedKind{
		{KindTypo, 0.4},
		{KindSkip, 0.2},
		{KindDouble, 0.2},
		{KindTranspose, 0.1},
		{KindAdjacent, 0.1},
	}
	quoteKinds = []weightedKind{
		{KindTypo, 0.4},
		{KindSkip, 0.3},
		{KindDouble, 0.3},
	}
)

// Generator produces corrupted emissions for single characters.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator drawing from rnd. A nil rnd gets a
// time-seeded source.
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// Corrupt returns the corrupted emission for r and the kind of corruption.
// next is the following source character; hasNext is false when r is last.
func (g *Generator) Corrupt(r rune, next rune, hasNext bool) (string, Kind) {
	if r == '\'' || r == '"' {
		switch g.pick(quoteKinds) {
		case KindTypo:
			return string(g.pickRune(quoteTypoKeys)), KindTypo
		case KindSkip:
			return "", KindSkip
		default:
			return string([]rune{r, r}), KindDouble
		}
	}

	switch g.pick(standardKinds) {
	case KindTypo:
		return string(g.pickRune(typoKeys)), KindTypo
	case KindSkip:
		return "", KindSkip
	case KindDouble:
		return string([]rune{r, r}), KindDouble
	case KindTranspose:
		if hasNext {
			return string([]rune{r, next}), KindTranspose
		}
		return string(r), KindTranspose
	default:
		return string(keymap.Nearby(g.rnd, r)), KindAdjacent
	}
}

func (g *Generator) pick(kinds []weightedKind) Kind {
	total := 0.0
	for _, wk := range kinds {
		total += wk.weight
	}
	draw := g.rnd.Float64() * total
	acc := 0.0
	for _, wk := range kinds {
		acc += wk.weight
		if draw < acc {
			return wk.kind
		}
	}
	return kinds[len(kinds)-1].kind
}

func (g *Generator) pickRune(set string) rune {
	runes := []rune(set)
	return runes[g.rnd.Intn(len(runes))]
}
