package arxivweb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedCatalog(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	papers := []struct {
		paper   Paper
		authors []string
	}{
		{
			Paper{
				ArxivID:       "2301.00001",
				Title:         "A new formula for Macdonald polynomials",
				Abstract:      "We prove a combinatorial formula for Macdonald polynomials.",
				PublishedDate: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			},
			[]string{"Per Alexandersson"},
		},
		{
			Paper{
				ArxivID:       "2301.00002v2",
				Title:         "Chromatic symmetric functions of trees",
				Abstract:      "We study chromatic symmetric functions.",
				PublishedDate: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
				DOI:           "10.1000/xyz",
				JournalRef:    "J. Comb. 1 (2023)",
			},
			[]string{"Alice Smith", "Bob Jones"},
		},
		{
			Paper{
				ArxivID:       "2405.01234",
				Title:         "Lattice paths and q-analogs",
				Abstract:      "Lattice path enumeration with q-analogs.",
				PublishedDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			},
			[]string{"Alice Smith"},
		},
	}
	for i := range papers {
		require.NoError(t, store.AddPaper(ctx, &papers[i].paper, papers[i].authors))
	}
}

func TestStoreStats(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalPapers)
	assert.Equal(t, int64(3), stats.TotalAuthors)
	assert.Equal(t, 2024, stats.LatestPublished.Year())
}

func TestRecentPapersOrder(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	papers, err := store.RecentPapers(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, papers, 3)

	assert.Equal(t, "2405.01234", papers[0].ArxivID, "newest first")

	// Pagination.
	page2, err := store.RecentPapers(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)
}

func TestPaperLookup(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)
	ctx := context.Background()

	p, err := store.PaperByArxivID(ctx, "2301.00001")
	require.NoError(t, err)
	assert.Equal(t, "A new formula for Macdonald polynomials", p.Title)

	// Second lookup is served from the cache and must still be mutable
	// without corrupting it.
	p2, err := store.PaperByArxivID(ctx, "2301.00001")
	require.NoError(t, err)
	p2.Title = "mutated"
	p3, err := store.PaperByArxivID(ctx, "2301.00001")
	require.NoError(t, err)
	assert.Equal(t, "A new formula for Macdonald polynomials", p3.Title)

	_, err = store.PaperByArxivID(ctx, "9999.99999")
	assert.ErrorIs(t, err, ErrNotFound)

	// Version-suffix tolerance in both directions.
	p, err = store.PaperByArxivIDPrefix(ctx, "2301.00002")
	require.NoError(t, err)
	assert.Equal(t, "2301.00002v2", p.ArxivID)
	p, err = store.PaperByArxivIDPrefix(ctx, "2301.00001v5")
	require.NoError(t, err)
	assert.Equal(t, "2301.00001", p.ArxivID)
}

func TestSearch(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)
	ctx := context.Background()

	papers, total, err := store.Search(ctx, "macdonald", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, papers, 1)
	assert.Equal(t, "2301.00001", papers[0].ArxivID)

	// Author name search.
	_, total, err = store.Search(ctx, "Alexandersson", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Short words take the LIKE fallback.
	_, total, err = store.Search(ctx, "q-", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Empty query matches nothing.
	papers, total, err = store.Search(ctx, "   ", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, papers)

	_, total, err = store.Search(ctx, "nonexistentword", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAuthors(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)
	ctx := context.Background()

	author, err := store.AuthorBySlug(ctx, "alice-smith")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", author.Name)

	// Exact-name fallback for old URLs.
	author2, err := store.AuthorBySlug(ctx, "Alice Smith")
	require.NoError(t, err)
	assert.Equal(t, author.ID, author2.ID)

	_, err = store.AuthorBySlug(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	papers, err := store.PapersByAuthor(ctx, author.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, papers, 2)
	assert.Equal(t, "2405.01234", papers[0].ArxivID, "newest first")

	count, err := store.CountPapersByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestAttachAuthorsOrder(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)
	ctx := context.Background()

	papers, err := store.RecentPapers(ctx, 0, 10)
	require.NoError(t, err)
	require.NoError(t, store.AttachAuthors(ctx, papers))

	byID := make(map[string][]string)
	for _, p := range papers {
		byID[p.ArxivID] = p.Authors
	}
	assert.Equal(t, []string{"Alice Smith", "Bob Jones"}, byID["2301.00002v2"], "submission order preserved")
	assert.Equal(t, []string{"Per Alexandersson"}, byID["2301.00001"])
}

func TestBrowse(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)
	ctx := context.Background()

	years, err := store.AvailableYears(ctx)
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.Equal(t, YearCount{Year: 2024, Count: 1}, years[0])
	assert.Equal(t, YearCount{Year: 2023, Count: 2}, years[1])

	counts, err := store.DateCounts(ctx, 2023)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2023-01-02": 2}, counts)

	papers, err := store.PapersOnDate(ctx, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, papers, 2)
}

func TestEachDocument(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	var ids []string
	err := store.EachDocument(context.Background(), func(id, title, abstract string) error {
		ids = append(ids, id)
		assert.NotEmpty(t, title)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2301.00001", "2301.00002v2", "2405.01234"}, ids)
}

func TestAddPaperUpdate(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)
	ctx := context.Background()

	p, err := store.PaperByArxivID(ctx, "2301.00001")
	require.NoError(t, err)
	p.Authors = nil
	p.DOI = "10.2000/abc"
	require.NoError(t, store.AddPaper(ctx, p, []string{"Per Alexandersson", "New Coauthor"}))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPapers, "update does not duplicate")

	got, err := store.PaperByArxivID(ctx, "2301.00001")
	require.NoError(t, err)
	assert.Equal(t, "10.2000/abc", got.DOI, "cache refreshed on update")

	names, err := store.AuthorsForPaper(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Per Alexandersson", "New Coauthor"}, names)
}

func TestEnsureAuthorSlugs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.db.Create(&Author{Name: "Paul Erdős"}).Error)
	require.NoError(t, store.EnsureAuthorSlugs(ctx))

	author, err := store.AuthorBySlug(ctx, "paul-erdos")
	require.NoError(t, err)
	assert.Equal(t, "Paul Erdős", author.Name)
}
