package keywords

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Math regions are removed with their content.
	displayMathRE = regexp.MustCompile(`(?s)\$\$.*?\$\$`)
	inlineMathRE  = regexp.MustCompile(`\$[^$]*\$`)

	// Accent commands keep the base letter: \H{o} -> o, \c{s} -> s.
	// Must run before generic command stripping or the letter is lost.
	// Handles names like M\"{o}bius -> Mobius and Erd\H{o}s -> Erdos.
	accentCmdRE      = regexp.MustCompile(`\\[Hcvkrudbt]\{([a-zA-Z])\}`)
	accentSymBraceRE = regexp.MustCompile("\\\\[\"'`^~.=]\\{([a-zA-Z])\\}")
	accentSymRE      = regexp.MustCompile("\\\\[\"'`^~.=]([a-zA-Z])")

	// Remaining commands go entirely, argument included.
	commandArgRE = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*\}`)
	commandRE    = regexp.MustCompile(`\\[a-zA-Z]+`)
	braceRE      = regexp.MustCompile(`[{}]`)
)

// stripMarks decomposes to NFKD and drops combining marks, turning
// accented Latin letters into their unaccented base.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize strips LaTeX markup from raw text, folds accented characters
// to ASCII, and lowercases. The output contains only characters the
// tokenizer can see; anything that cannot be mapped to ASCII is dropped.
// Pure function; normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	text = displayMathRE.ReplaceAllString(text, " ")
	text = inlineMathRE.ReplaceAllString(text, " ")
	text = accentCmdRE.ReplaceAllString(text, "$1")
	text = accentSymBraceRE.ReplaceAllString(text, "$1")
	text = accentSymRE.ReplaceAllString(text, "$1")
	text = commandArgRE.ReplaceAllString(text, " ")
	text = commandRE.ReplaceAllString(text, " ")
	text = braceRE.ReplaceAllString(text, " ")
	return strings.ToLower(foldASCII(text))
}

// foldASCII converts accented letters to their ASCII base (Möbius ->
// Mobius) and discards anything that still has no ASCII mapping.
func foldASCII(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	// Fast path: already pure ASCII.
	ascii := true
	for i := 0; i < len(folded); i++ {
		if folded[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return folded
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}
