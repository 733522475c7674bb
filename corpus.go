package arxivweb

import (
	"context"
	"database/sql"
	"fmt"
)

// EachDocument streams every paper's identifier, title, and abstract to
// fn, for the keyword extraction batch job. NULL titles and abstracts
// become empty strings; no row is ever skipped for unusual content. A
// non-nil error from fn stops the scan and is returned.
func (s *Store) EachDocument(ctx context.Context, fn func(id, title, abstract string) error) error {
	rows, err := s.db.WithContext(ctx).Model(&Paper{}).
		Select("arxiv_id, title, abstract").
		Order("id").
		Rows()
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, title, abstract sql.NullString
		if err := rows.Scan(&id, &title, &abstract); err != nil {
			return fmt.Errorf("read corpus: %w", err)
		}
		if err := fn(id.String, title.String, abstract.String); err != nil {
			return err
		}
	}
	return rows.Err()
}
