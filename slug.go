package arxivweb

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// StripAccents removes diacritics: "Erdős" -> "Erdos", "García" ->
// "Garcia". Characters with no decomposition pass through unchanged.
func StripAccents(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

var (
	slugDropRE     = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRE    = regexp.MustCompile(`\s+`)
	slugCollapseRE = regexp.MustCompile(`-+`)
)

// Slugify converts an author name to a URL-friendly slug:
// "Per Alexandersson" -> "per-alexandersson".
func Slugify(name string) string {
	s := strings.ToLower(StripAccents(name))
	s = slugDropRE.ReplaceAllString(s, "")
	s = slugSpaceRE.ReplaceAllString(strings.TrimSpace(s), "-")
	return slugCollapseRE.ReplaceAllString(s, "-")
}
