package keywords

import (
	"iter"
	"strings"
)

// NGrams returns a lazy sequence of all contiguous n-grams of tokens for
// n in 1..maxN, each joined by single spaces. All 1-grams come first in
// position order, then all 2-grams, and so on. One document's phrases are
// materialized at a time, never the whole corpus.
func NGrams(tokens []string, maxN int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := 1; n <= maxN; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				if !yield(strings.Join(tokens[i:i+n], " ")) {
					return
				}
			}
		}
	}
}
