package arxivweb

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// AuthorBySlug looks up an author by slug, falling back to an exact name
// match so old-format URLs with raw names keep resolving.
func (s *Store) AuthorBySlug(ctx context.Context, slug string) (*Author, error) {
	var author Author
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.WithContext(ctx).Where("name = ?", slug).First(&author).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// PapersByAuthor lists an author's papers, newest first.
func (s *Store) PapersByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]Paper, error) {
	q := s.db.WithContext(ctx).Model(&Paper{}).
		Joins("JOIN paper_authors pa ON pa.paper_id = papers.id").
		Where("pa.author_id = ?", authorID).
		Order("papers.published_date DESC, papers.id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var papers []Paper
	err := q.Find(&papers).Error
	return papers, err
}

// CountPapersByAuthor returns how many papers an author has.
func (s *Store) CountPapersByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&PaperAuthor{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// EnsureAuthorSlugs backfills the slug column for authors that predate
// it. Safe to run on every startup; rows with slugs are untouched.
func (s *Store) EnsureAuthorSlugs(ctx context.Context) error {
	var authors []Author
	err := s.db.WithContext(ctx).
		Where("slug IS NULL OR slug = ''").
		Find(&authors).Error
	if err != nil {
		return err
	}

	for _, a := range authors {
		err := s.db.WithContext(ctx).Model(&Author{}).
			Where("id = ?", a.ID).
			Update("slug", Slugify(a.Name)).Error
		if err != nil {
			return err
		}
	}
	return nil
}
