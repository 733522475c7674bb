package arxivweb

import (
	"regexp"
)

var versionSuffixRE = regexp.MustCompile(`v\d+$`)

// CleanArxivID strips a trailing version suffix: "2301.00001v2" ->
// "2301.00001".
func CleanArxivID(id string) string {
	return versionSuffixRE.ReplaceAllString(id, "")
}

// CleanID returns the paper's arXiv ID without a version suffix.
// Value receivers throughout so templates can call these on list items.
func (p Paper) CleanID() string {
	return CleanArxivID(p.ArxivID)
}

// AbstractURL returns the arXiv abstract page URL.
func (p Paper) AbstractURL() string {
	return "https://arxiv.org/abs/" + p.CleanID()
}

// PDFURL returns the arXiv PDF URL.
func (p Paper) PDFURL() string {
	return "https://arxiv.org/pdf/" + p.CleanID()
}

// Year returns the publication year, or 0 if the date is unset.
func (p Paper) Year() int {
	if p.PublishedDate.IsZero() {
		return 0
	}
	return p.PublishedDate.Year()
}

// Published reports whether the paper has appeared in a journal.
func (p Paper) Published() bool {
	return p.DOI != ""
}
