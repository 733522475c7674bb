package arxivweb

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a paper or author does not exist.
var ErrNotFound = errors.New("not found")

// RecentPapers lists papers by published date descending, newest first.
func (s *Store) RecentPapers(ctx context.Context, offset, limit int) ([]Paper, error) {
	if limit <= 0 {
		limit = 20
	}

	var papers []Paper
	err := s.db.WithContext(ctx).
		Order("published_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&papers).Error
	return papers, err
}

// PaperByArxivID returns a paper by its arXiv ID, without authors
// attached. Hot lookups are served from the in-memory LRU; the returned
// value is a copy, safe for the caller to mutate.
func (s *Store) PaperByArxivID(ctx context.Context, arxivID string) (*Paper, error) {
	if cached, ok := s.paperCache.get(arxivID); ok {
		p := *cached
		return &p, nil
	}

	var paper Paper
	err := s.db.WithContext(ctx).Where("arxiv_id = ?", arxivID).First(&paper).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	stored := paper
	s.paperCache.put(arxivID, &stored)
	return &paper, nil
}

// PaperByArxivIDPrefix matches an ID regardless of version suffix, so
// "2301.00001" finds a row stored as "2301.00001v2" and vice versa.
func (s *Store) PaperByArxivIDPrefix(ctx context.Context, arxivID string) (*Paper, error) {
	if p, err := s.PaperByArxivID(ctx, arxivID); err == nil {
		return p, nil
	}

	var paper Paper
	err := s.db.WithContext(ctx).
		Where("arxiv_id LIKE ?", CleanArxivID(arxivID)+"%").
		First(&paper).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// RandomPaper returns a uniformly random paper.
func (s *Store) RandomPaper(ctx context.Context) (*Paper, error) {
	var paper Paper
	err := s.db.WithContext(ctx).Order("RANDOM()").First(&paper).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// Search searches papers by title/abstract text and author name, newest
// first. When every query word is long enough for the full-text index
// (3+ chars) it uses FTS5 MATCH, requiring all words; short words fall
// back to LIKE so queries like "LLT" still work. Author names are always
// matched by substring. Returns one page plus the total match count.
func (s *Store) Search(ctx context.Context, query string, offset, limit int) ([]Paper, int64, error) {
	if limit <= 0 {
		limit = 20
	}

	words := strings.Fields(query)
	if len(words) == 0 {
		return nil, 0, nil
	}

	useFTS := s.ftsEnabled
	for _, w := range words {
		if len(w) < 3 {
			useFTS = false
			break
		}
	}

	authorTerm := "%" + query + "%"

	base := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&Paper{}).
			Joins("LEFT JOIN paper_authors pa ON pa.paper_id = papers.id").
			Joins("LEFT JOIN authors a ON a.id = pa.author_id")

		if useFTS {
			// Quote each word so FTS5 treats it as a plain term; bare
			// terms are ANDed, matching the "require all words" policy.
			quoted := make([]string, len(words))
			for i, w := range words {
				quoted[i] = `"` + strings.ReplaceAll(w, `"`, `""`) + `"`
			}
			match := strings.Join(quoted, " ")
			return q.Where(
				"papers.rowid IN (SELECT rowid FROM papers_fts WHERE papers_fts MATCH ?) OR a.name LIKE ?",
				match, authorTerm,
			)
		}

		likeTerm := "%" + query + "%"
		return q.Where(
			"papers.title LIKE ? OR papers.abstract LIKE ? OR a.name LIKE ?",
			likeTerm, likeTerm, authorTerm,
		)
	}

	var total int64
	if err := base().Distinct("papers.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var papers []Paper
	err := base().
		Distinct("papers.*").
		Order("papers.published_date DESC, papers.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&papers).Error
	if err != nil {
		return nil, 0, err
	}

	return papers, total, nil
}

// AuthorsForPaper returns a paper's author names in submission order.
func (s *Store) AuthorsForPaper(ctx context.Context, paperID uint) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Table("authors").
		Select("authors.name").
		Joins("JOIN paper_authors pa ON pa.author_id = authors.id").
		Where("pa.paper_id = ?", paperID).
		Order("pa.author_order").
		Scan(&names).Error
	return names, err
}

// AttachAuthors populates Authors for a list of papers in a single query,
// avoiding one query per paper.
func (s *Store) AttachAuthors(ctx context.Context, papers []Paper) error {
	if len(papers) == 0 {
		return nil
	}

	ids := make([]uint, len(papers))
	for i, p := range papers {
		ids[i] = p.ID
	}

	type row struct {
		PaperID uint
		Name    string
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Table("authors").
		Select("pa.paper_id, authors.name").
		Joins("JOIN paper_authors pa ON pa.author_id = authors.id").
		Where("pa.paper_id IN ?", ids).
		Order("pa.paper_id, pa.author_order").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	byPaper := make(map[uint][]string)
	for _, r := range rows {
		byPaper[r.PaperID] = append(byPaper[r.PaperID], r.Name)
	}
	for i := range papers {
		papers[i].Authors = byPaper[papers[i].ID]
	}
	return nil
}
