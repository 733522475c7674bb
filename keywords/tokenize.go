package keywords

import (
	"regexp"

	"github.com/jinzhu/inflection"
)

// tokenRE matches alphabetic words and hyphenated compounds such as
// "q-analog". Digits, punctuation, and leading/trailing hyphens never
// match, so markup residue falls out here.
var tokenRE = regexp.MustCompile(`[a-z]+(?:-[a-z]+)*`)

// Tokenize normalizes raw text and splits it into singularized lowercase
// word tokens, in order of appearance.
func (e *Extractor) Tokenize(text string) []string {
	words := tokenRE.FindAllString(Normalize(text), -1)
	tokens := make([]string, len(words))
	for i, w := range words {
		tokens[i] = e.singular(w)
	}
	return tokens
}

// singular returns the singular form of a word, cached for the run.
//
// Priority: the override table wins outright (it also pins words the
// general heuristic would mangle), stopwords pass through untouched
// (heuristics corrupt short function words: this -> thi, was -> wa),
// and everything else goes through the general English heuristic, which
// leaves unrecognized forms alone.
func (e *Extractor) singular(word string) string {
	if s, ok := e.singularCache[word]; ok {
		return s
	}

	var s string
	switch {
	case e.overrides[word] != "":
		s = e.overrides[word]
	case e.stopwords[word]:
		s = word
	default:
		s = inflection.Singular(word)
		if s == "" {
			s = word
		}
	}

	e.singularCache[word] = s
	return s
}
