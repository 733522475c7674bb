package arxivweb

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProtectCapitals(t *testing.T) {
	assert.Equal(t,
		"A new formula for {M}acdonald polynomials using {LLT} polynomials",
		ProtectCapitals("A new formula for Macdonald polynomials using LLT polynomials"))

	// The leading capital is never wrapped.
	assert.Equal(t, "Abelian groups", ProtectCapitals("Abelian groups"))

	// Acronym runs stay one brace group.
	assert.Equal(t, "On {RNA} folding", ProtectCapitals("On RNA folding"))

	assert.Equal(t, "", ProtectCapitals(""))
	assert.Equal(t, "lowercase title", ProtectCapitals("lowercase title"))
}

func TestBibTeXKey(t *testing.T) {
	authors := []string{"Alice Smith", "Bob Jones"}

	assert.Equal(t, "SmithJones2024x", BibTeXKey(authors, 2024, false))
	assert.Equal(t, "SmithJones2024", BibTeXKey(authors, 2024, true))

	// Accented last names reduce to plain ASCII.
	assert.Equal(t, "Erdos1959", BibTeXKey([]string{"Paul Erdős"}, 1959, true))

	// No authors falls back to a generic key.
	assert.Equal(t, "arxiv2024x", BibTeXKey(nil, 2024, false))
}

func testPaper() *Paper {
	return &Paper{
		ArxivID:       "2301.00001v2",
		Title:         "A new formula for Macdonald polynomials",
		Abstract:      "We prove a formula.",
		PublishedDate: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		Authors:       []string{"Alice Smith"},
	}
}

func TestArxivBibTeX(t *testing.T) {
	p := testPaper()
	entry := p.ArxivBibTeX()

	assert.True(t, strings.HasPrefix(entry, "@article{Smith2023x,\n"))
	assert.Contains(t, entry, "author = {Alice Smith}")
	assert.Contains(t, entry, "title = {A new formula for {M}acdonald polynomials}")
	assert.Contains(t, entry, "eprint = {2301.00001}")
	assert.Contains(t, entry, "url = {https://arxiv.org/abs/2301.00001}")
	assert.Contains(t, entry, "journal = {arXiv e-prints}")
	assert.NotContains(t, entry, "doi =")
}

func TestArxivBibTeXPublished(t *testing.T) {
	p := testPaper()
	p.DOI = "10.1000/xyz"
	p.JournalRef = "J. Comb. 1 (2023) 1-10"

	entry := p.ArxivBibTeX()
	assert.Contains(t, entry, "doi = {10.1000/xyz}")
	assert.Contains(t, entry, "journalref = {J. Comb. 1 (2023) 1-10}")
}

func TestDOIBibTeX(t *testing.T) {
	p := testPaper()
	p.DOI = "10.1000/xyz"
	p.JournalRef = "J. Comb. 1 (2023) 1-10"

	entry := p.DOIBibTeX()
	assert.True(t, strings.HasPrefix(entry, "@article{Smith2023,\n"), "published key has no x suffix")
	assert.Contains(t, entry, "journal = {J. Comb. 1 (2023) 1-10}")
	assert.Contains(t, entry, "url = {https://doi.org/10.1000/xyz}")
}

func TestParseCitationInput(t *testing.T) {
	cases := []struct {
		input   string
		arxivID string
		doi     string
	}{
		{"2301.00001", "2301.00001", ""},
		{"2301.00001v3", "2301.00001v3", ""},
		{"https://arxiv.org/abs/2301.00001", "2301.00001", ""},
		{"https://arxiv.org/pdf/2301.00001v2", "2301.00001v2", ""},
		{"10.1000/xyz123", "", "10.1000/xyz123"},
		{"https://doi.org/10.1000/xyz123", "", "10.1000/xyz123"},
		{"  2301.00001  ", "2301.00001", ""},
		{"not a citation", "", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		arxivID, doi := ParseCitationInput(tc.input)
		assert.Equal(t, tc.arxivID, arxivID, "input %q", tc.input)
		assert.Equal(t, tc.doi, doi, "input %q", tc.input)
	}
}
