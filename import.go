package arxivweb

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// AddPaper inserts or updates a paper and its author list. Papers are
// keyed by arXiv ID; authors are deduplicated by name and created with
// slugs. The join rows are rewritten so author order always reflects the
// given list. p.ID is set on insert.
func (s *Store) AddPaper(ctx context.Context, p *Paper, authors []string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Paper
		err := tx.Where("arxiv_id = ?", p.ArxivID).First(&existing).Error
		switch {
		case err == nil:
			p.ID = existing.ID
			if err := tx.Save(p).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := tx.Where("paper_id = ?", p.ID).Delete(&PaperAuthor{}).Error; err != nil {
			return err
		}
		for i, name := range authors {
			var author Author
			err := tx.Where("name = ?", name).First(&author).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				author = Author{Name: name, Slug: Slugify(name)}
				err = tx.Create(&author).Error
			}
			if err != nil {
				return err
			}

			link := PaperAuthor{PaperID: p.ID, AuthorID: author.ID, AuthorOrder: i}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Refresh the cache so paper pages don't serve the pre-update row.
	stored := *p
	stored.Authors = nil
	s.paperCache.put(p.ArxivID, &stored)
	return nil
}
