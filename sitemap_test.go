package arxivweb

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSitemapXML(t *testing.T) {
	mod := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	urls := []SitemapURL{
		{Loc: "http://example.com/", ChangeFreq: "daily", Priority: 1.0},
		{Loc: "http://example.com/paper/2301.00001", LastMod: &mod, Priority: 0.8},
		{Loc: "http://example.com/", Priority: 0.5}, // duplicate, dropped
	}

	doc, err := BuildSitemapXML(urls)
	require.NoError(t, err)
	out := string(doc)

	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>http://example.com/paper/2301.00001</loc>")
	assert.Contains(t, out, "<lastmod>2023-01-02T03:04:05Z</lastmod>")
	assert.Contains(t, out, "<changefreq>daily</changefreq>")
	assert.Contains(t, out, "<priority>0.8</priority>")
	assert.Equal(t, 1, strings.Count(out, "<loc>http://example.com/</loc>"))
}

func TestSitemapURLs(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	urls, err := store.SitemapURLs(context.Background(), "http://example.com")
	require.NoError(t, err)

	locs := make(map[string]bool, len(urls))
	for _, u := range urls {
		locs[u.Loc] = true
	}

	assert.True(t, locs["http://example.com/"])
	assert.True(t, locs["http://example.com/browse"])
	assert.True(t, locs["http://example.com/browse?year=2023"])
	assert.True(t, locs["http://example.com/paper/2301.00002"], "version suffix stripped")
	assert.True(t, locs["http://example.com/author/per-alexandersson"])
}
