package arxivweb

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"time"
)

// SitemapURL is a single entry in the generated sitemap.
type SitemapURL struct {
	Loc        string     // absolute URL
	LastMod    *time.Time // optional last modification time
	ChangeFreq string     // optional change frequency hint
	Priority   float32    // optional priority hint between 0.0 and 1.0
}

// SiteBaseURL returns the public base URL for sitemap entries, from the
// ARXIVWEB_SITE_URL environment variable when set.
func SiteBaseURL() string {
	if v := os.Getenv("ARXIVWEB_SITE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

// SitemapURLs collects sitemap entries for the whole catalog: the home
// and browse pages, every paper page, and every author page.
func (s *Store) SitemapURLs(ctx context.Context, baseURL string) ([]SitemapURL, error) {
	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "daily", Priority: 1.0},
		{Loc: baseURL + "/browse", ChangeFreq: "daily", Priority: 0.5},
	}

	years, err := s.AvailableYears(ctx)
	if err != nil {
		return nil, err
	}
	for _, y := range years {
		urls = append(urls, SitemapURL{
			Loc:        fmt.Sprintf("%s/browse?year=%d", baseURL, y.Year),
			ChangeFreq: "weekly",
			Priority:   0.3,
		})
	}

	type paperRow struct {
		ArxivID     string
		UpdatedDate time.Time
	}
	var papers []paperRow
	err = s.db.WithContext(ctx).Model(&Paper{}).
		Select("arxiv_id, updated_date").
		Order("id").
		Scan(&papers).Error
	if err != nil {
		return nil, err
	}
	for _, p := range papers {
		u := SitemapURL{
			Loc:      baseURL + "/paper/" + CleanArxivID(p.ArxivID),
			Priority: 0.8,
		}
		if !p.UpdatedDate.IsZero() {
			mod := p.UpdatedDate
			u.LastMod = &mod
		}
		urls = append(urls, u)
	}

	var slugs []string
	err = s.db.WithContext(ctx).Model(&Author{}).
		Where("slug != ''").
		Order("id").
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, err
	}
	for _, slug := range slugs {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/author/" + slug,
			ChangeFreq: "weekly",
			Priority:   0.4,
		})
	}

	return urls, nil
}

// BuildSitemapXML renders sitemap entries as a sitemaps.org urlset
// document. Duplicate locations are dropped.
func BuildSitemapXML(urls []SitemapURL) ([]byte, error) {
	type xmlURL struct {
		Loc        string  `xml:"loc"`
		LastMod    *string `xml:"lastmod,omitempty"`
		ChangeFreq string  `xml:"changefreq,omitempty"`
		Priority   *string `xml:"priority,omitempty"`
	}

	type urlSet struct {
		XMLName xml.Name `xml:"urlset"`
		Xmlns   string   `xml:"xmlns,attr"`
		URLs    []xmlURL `xml:"url"`
	}

	out := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]xmlURL, 0, len(urls)),
	}

	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if seen[u.Loc] {
			continue
		}
		seen[u.Loc] = true

		xu := xmlURL{
			Loc:        u.Loc,
			ChangeFreq: u.ChangeFreq,
		}
		if u.LastMod != nil {
			s := u.LastMod.UTC().Format(time.RFC3339)
			xu.LastMod = &s
		}
		if u.Priority > 0 {
			s := fmt.Sprintf("%.1f", u.Priority)
			xu.Priority = &s
		}
		out.URLs = append(out.URLs, xu)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
