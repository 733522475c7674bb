package arxivweb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// capitalRunRE matches maximal runs of capitals so acronyms (LLT, RNA)
// are protected as one brace group, not letter by letter.
var capitalRunRE = regexp.MustCompile(`[A-Z]+`)

// ProtectCapitals wraps capital letters in braces so BibTeX won't
// lowercase them. The first character is left alone (BibTeX preserves it
// regardless).
//
// "A new formula for Macdonald polynomials using LLT polynomials" ->
// "A new formula for {M}acdonald polynomials using {LLT} polynomials"
func ProtectCapitals(title string) string {
	if title == "" {
		return title
	}

	first := title[:1]
	rest := title[1:]
	return first + capitalRunRE.ReplaceAllString(rest, "{$0}")
}

// BibTeXKey builds a citation key from author names and year:
// "SmithJones2024x". The "x" suffix marks arXiv-only records; published
// records omit it. Accents are stripped and non-alphanumerics dropped so
// the key is always plain ASCII.
func BibTeXKey(authors []string, year int, published bool) string {
	suffix := "x"
	if published {
		suffix = ""
	}

	if len(authors) == 0 {
		return fmt.Sprintf("arxiv%d%s", year, suffix)
	}

	var b strings.Builder
	for _, author := range authors {
		fields := strings.Fields(author)
		if len(fields) == 0 {
			continue
		}
		last := StripAccents(fields[len(fields)-1])
		for _, r := range last {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
	}
	return fmt.Sprintf("%s%d%s", b.String(), year, suffix)
}

func bibtexAuthors(authors []string) string {
	if len(authors) == 0 {
		return "Unknown"
	}
	return strings.Join(authors, " and ")
}

// ArxivBibTeX renders the arXiv e-print record for a paper. Authors must
// be attached.
func (p *Paper) ArxivBibTeX() string {
	key := BibTeXKey(p.Authors, p.Year(), false)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("@article{%s,\n", key))
	sb.WriteString(fmt.Sprintf("  author = {%s},\n", bibtexAuthors(p.Authors)))
	sb.WriteString(fmt.Sprintf("  title = {%s},\n", ProtectCapitals(p.Title)))
	sb.WriteString(fmt.Sprintf("  year = {%d},\n", p.Year()))
	sb.WriteString(fmt.Sprintf("  eprint = {%s},\n", p.CleanID()))
	sb.WriteString(fmt.Sprintf("  url = {%s},\n", p.AbstractURL()))
	sb.WriteString("  journal = {arXiv e-prints},\n")
	if p.JournalRef != "" {
		sb.WriteString(fmt.Sprintf("  journalref = {%s},\n", p.JournalRef))
	}
	if p.DOI != "" {
		sb.WriteString(fmt.Sprintf("  doi = {%s},\n", p.DOI))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// DOIBibTeX renders the published-version record for a paper with a DOI,
// using the journal reference as the venue. Authors must be attached.
func (p *Paper) DOIBibTeX() string {
	key := BibTeXKey(p.Authors, p.Year(), true)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("@article{%s,\n", key))
	sb.WriteString(fmt.Sprintf("  author = {%s},\n", bibtexAuthors(p.Authors)))
	sb.WriteString(fmt.Sprintf("  title = {%s},\n", ProtectCapitals(p.Title)))
	sb.WriteString(fmt.Sprintf("  year = {%d},\n", p.Year()))
	sb.WriteString(fmt.Sprintf("  journal = {%s},\n", p.JournalRef))
	sb.WriteString(fmt.Sprintf("  doi = {%s},\n", p.DOI))
	sb.WriteString(fmt.Sprintf("  url = {https://doi.org/%s},\n", p.DOI))
	sb.WriteString("}\n")
	return sb.String()
}

// FetchDOIBibTeX fetches a BibTeX record from doi.org via content
// negotiation, for DOIs not in the catalog.
func FetchDOIBibTeX(ctx context.Context, doi string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://doi.org/"+doi, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/x-bibtex")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch doi record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch doi record: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

var (
	arxivURLRE = regexp.MustCompile(`(?i)arxiv\.org/(?:abs|pdf)/([0-9]+\.[0-9]+(?:v[0-9]+)?)`)
	arxivIDRE  = regexp.MustCompile(`^[0-9]+\.[0-9]+(?:v[0-9]+)?$`)
	doiRE      = regexp.MustCompile(`^10\.\d+/`)
)

// ParseCitationInput classifies free-form input from the tools page as an
// arXiv ID or a DOI. URLs of either kind are unwrapped. Exactly one of
// the results is non-empty on success; both empty means unrecognized.
func ParseCitationInput(input string) (arxivID, doi string) {
	input = strings.TrimSpace(input)

	if m := arxivURLRE.FindStringSubmatch(input); m != nil {
		return m[1], ""
	}
	if arxivIDRE.MatchString(input) {
		return input, ""
	}

	if idx := strings.Index(strings.ToLower(input), "doi.org/"); idx >= 0 {
		return "", input[idx+len("doi.org/"):]
	}
	if doiRE.MatchString(input) {
		return "", input
	}

	return "", ""
}
