// Package keymap models physical QWERTY key adjacency.
package keymap

import (
	"math/rand"
	"unicode"
)

// layout maps a key to the string of its physical neighbors.
var layout = map[rune]string{
	'q': "wa", 'w': "qeasd", 'e': "wrsdf", 'r': "etdfg", 't': "ryfgh",
	'y': "tughj", 'u': "yihjk", 'i': "uojkl", 'o': "ipkl;", 'p': "o[l;'",
	'a': "qwsz", 's': "wedxza", 'd': "erfcxs", 'f': "rtgvcx", 'g': "tyhbvf",
	'h': "yujnbg", 'j': "uikmnh", 'k': "iolmj", 'l': "op;,k",
	'z': "asx", 'x': "sdc", 'c': "dfv", 'v': "fgb", 'b': "ghn",
	'n': "hjm", 'm': "jk,",
	'\'': `"[];`,
	'"':  "'[];",
	';':  "l,.",
	':':  ";",
}

// Neighbors returns the neighbor set for a key, folding case. The empty
// string means the key has no mapped neighbors.
func Neighbors(r rune) string {
	return layout[unicode.ToLower(r)]
}

// Nearby picks a uniformly random neighbor of r, or returns r unchanged when
// r has no mapped neighbors.
func Nearby(rnd *rand.Rand, r rune) rune {
	neighbors := []rune(Neighbors(r))
	if len(neighbors) == 0 {
		return r
	}
	return neighbors[rnd.Intn(len(neighbors))]
}
