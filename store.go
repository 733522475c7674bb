package arxivweb

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store is the relational catalog of papers and authors backing the web
// frontend and the keyword extraction batch job.
type Store struct {
	path       string
	db         *gorm.DB
	ftsEnabled bool
	paperCache *paperLRU // in-memory cache for paper-detail lookups
}

// Open opens or creates the catalog database at the given path.
func Open(path string) (*Store, error) {
	// Use the sqlite3 driver (not modernc) for FTS5 support.
	dsn := path + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite3",
		DSN:        dsn,
	}, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{
		path:       path,
		db:         db,
		paperCache: newPaperLRU(10000),
	}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Path returns the database path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema() error {
	if err := s.db.AutoMigrate(&Paper{}, &Author{}, &PaperAuthor{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// FTS5 virtual tables and triggers must use raw SQL; GORM doesn't
	// support FTS5.
	ftsSchema := `
	CREATE VIRTUAL TABLE IF NOT EXISTS papers_fts USING fts5(
		title,
		abstract,
		content='papers',
		content_rowid='rowid'
	);

	CREATE TRIGGER IF NOT EXISTS papers_ai AFTER INSERT ON papers BEGIN
		INSERT INTO papers_fts(rowid, title, abstract)
		VALUES (NEW.rowid, NEW.title, NEW.abstract);
	END;

	CREATE TRIGGER IF NOT EXISTS papers_ad AFTER DELETE ON papers BEGIN
		INSERT INTO papers_fts(papers_fts, rowid, title, abstract)
		VALUES ('delete', OLD.rowid, OLD.title, OLD.abstract);
	END;

	CREATE TRIGGER IF NOT EXISTS papers_au AFTER UPDATE ON papers BEGIN
		INSERT INTO papers_fts(papers_fts, rowid, title, abstract)
		VALUES ('delete', OLD.rowid, OLD.title, OLD.abstract);
		INSERT INTO papers_fts(rowid, title, abstract)
		VALUES (NEW.rowid, NEW.title, NEW.abstract);
	END;
	`
	if err := s.db.Exec(ftsSchema).Error; err != nil {
		// FTS5 not available; search falls back to LIKE queries.
		log.Printf("Warning: FTS5 not available (%v), search will use LIKE fallback", err)
		s.ftsEnabled = false
	} else {
		s.ftsEnabled = true
	}
	return nil
}

// Stats contains catalog statistics for the homepage.
type Stats struct {
	TotalPapers     int64
	TotalAuthors    int64
	LatestPublished time.Time
}

// Stats returns catalog statistics.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := s.db.WithContext(ctx).Model(&Paper{}).Count(&stats.TotalPapers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&Author{}).Count(&stats.TotalAuthors).Error; err != nil {
		return nil, err
	}

	latest, err := s.LatestPublished(ctx)
	if err != nil {
		return nil, err
	}
	stats.LatestPublished = latest

	return stats, nil
}

// LatestPublished returns the most recent published date in the catalog,
// or the zero time for an empty catalog.
func (s *Store) LatestPublished(ctx context.Context) (time.Time, error) {
	var latest *time.Time
	err := s.db.WithContext(ctx).Model(&Paper{}).
		Select("MAX(published_date)").
		Scan(&latest).Error
	if err != nil || latest == nil {
		return time.Time{}, err
	}
	return *latest, nil
}
