package arxivweb

import "context"

// RebuildFTSIndex rebuilds the FTS5 index from all papers. Use after
// bulk-importing into an existing database.
// Note: raw SQL because GORM doesn't support FTS5 virtual tables.
func (s *Store) RebuildFTSIndex(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("DELETE FROM papers_fts").Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Exec(`
		INSERT INTO papers_fts(rowid, title, abstract)
		SELECT rowid, title, abstract FROM papers
	`).Error
}
