package arxivweb

import (
	"time"
)

// Paper is one arXiv paper's catalog row.
type Paper struct {
	ID uint `gorm:"primaryKey"`

	// ArxivID is the arXiv identifier, possibly with a version suffix
	// (e.g. "2301.00001" or "2301.00001v2").
	ArxivID string `gorm:"uniqueIndex;column:arxiv_id"`

	Title    string
	Abstract string

	// PublishedDate is when the paper was first announced.
	PublishedDate time.Time `gorm:"index"`

	// UpdatedDate is when the paper was last revised.
	UpdatedDate time.Time

	// JournalRef is the journal reference if published.
	JournalRef string

	// DOI is the Digital Object Identifier if available.
	DOI string `gorm:"column:doi"`

	// Comment is the submitter's comment (e.g. "10 pages, 3 figures").
	Comment string

	// PrimaryCategory is the primary arXiv category (e.g. "math.CO").
	PrimaryCategory string

	// Authors is populated by AttachAuthors / AuthorsForPaper, in
	// submission order. Not a column.
	Authors []string `gorm:"-"`
}

func (Paper) TableName() string {
	return "papers"
}

// Author is a paper author, deduplicated by name across papers.
type Author struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"index"`

	// Slug is the URL form of the name ("per-alexandersson"). Backfilled
	// by EnsureAuthorSlugs for rows imported before slugs existed.
	Slug string `gorm:"index"`
}

func (Author) TableName() string {
	return "authors"
}

// PaperAuthor links papers to authors, preserving submission order.
type PaperAuthor struct {
	PaperID     uint `gorm:"primaryKey;column:paper_id"`
	AuthorID    uint `gorm:"primaryKey;column:author_id;index"`
	AuthorOrder int  `gorm:"column:author_order"`
}

func (PaperAuthor) TableName() string {
	return "paper_authors"
}
