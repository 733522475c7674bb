package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clmath/arxivweb"
)

const papersPerPage = 20

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"slugify": arxivweb.Slugify,
	"add":     func(a, b int) int { return a + b },
	"sub":     func(a, b int) int { return a - b },
	"longDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}).Parse(`
{{define "head"}}
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>{{.Title}} - Combinatorics on arXiv</title>
	<style>
		* { box-sizing: border-box; }
		body { font-family: system-ui, sans-serif; max-width: 900px; margin: 0 auto; padding: 1rem; line-height: 1.5; color: #1e293b; }
		a { color: #0066cc; }
		.nav { margin-bottom: 1rem; }
		.nav a { margin-right: 1rem; }
		.search-form { margin: 1rem 0; }
		.search-form input[type="text"] { padding: 0.5rem; width: 300px; font-size: 1rem; }
		.search-form button { padding: 0.5rem 1rem; font-size: 1rem; cursor: pointer; }
		.paper { border-bottom: 1px solid #eee; padding: 1rem 0; }
		.paper-id { font-family: monospace; color: #666; }
		.paper-title { font-size: 1.1rem; font-weight: 600; margin: 0.25rem 0; }
		.paper-authors { color: #444; }
		.paper-meta { font-size: 0.9rem; color: #666; margin: 0.5rem 0; }
		.paper-abstract { margin: 1rem 0; white-space: pre-wrap; }
		.badge { display: inline-block; background: #d4edda; color: #166534; padding: 0.1rem 0.4rem; border-radius: 3px; font-size: 0.8rem; margin-left: 0.25rem; }
		.btn { display: inline-block; padding: 0.4rem 0.8rem; background: #0066cc; color: white; text-decoration: none; border-radius: 4px; border: none; cursor: pointer; font-size: 0.9rem; }
		.btn:hover { background: #0052a3; }
		.btn-secondary { background: #6c757d; }
		.btn-secondary:hover { background: #5a6268; }
		.actions { display: flex; gap: 0.5rem; flex-wrap: wrap; margin: 1rem 0; }
		pre { background: #f5f5f5; padding: 1rem; overflow-x: auto; }
		.pagination { margin: 1.5rem 0; display: flex; gap: 0.5rem; align-items: center; }
		.pagination .current { color: #666; }
		.stats { color: #666; font-size: 0.9rem; }
		.year-nav { display: flex; flex-wrap: wrap; gap: 0.5rem; margin: 1rem 0; }
		.year-nav a, .year-nav .current-year { padding: 0.25rem 0.6rem; background: #f1f5f9; border-radius: 4px; text-decoration: none; }
		.year-nav .current-year { background: #0066cc; color: white; }
		.year-count { color: #666; font-size: 0.85em; }
		.months { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; }
		.month { border: 1px solid #eee; border-radius: 4px; padding: 0.5rem; }
		.month h3 { margin: 0 0 0.5rem; font-size: 1rem; text-align: center; }
		.month table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
		.month td { text-align: center; padding: 0.15rem; }
		.month .day-count { display: block; font-size: 0.7rem; color: #0066cc; }
		.month .empty-day { color: #bbb; }
		.tools-form textarea { width: 100%; font-family: monospace; padding: 0.5rem; }
		.error { color: #b91c1c; }
	</style>
</head>
<body>
<div class="nav"><a href="/">Home</a> <a href="/browse">Browse</a> <a href="/random">Random</a> <a href="/tools">Tools</a></div>
{{end}}

{{define "foot"}}
</body>
</html>
{{end}}

{{define "paperitem"}}
<div class="paper">
	<span class="paper-id">{{.CleanID}}</span>
	{{if .Published}}<span class="badge">published</span>{{end}}
	<div class="paper-title"><a href="/paper/{{.CleanID}}">{{.Title}}</a></div>
	<div class="paper-authors">{{range $i, $a := .Authors}}{{if $i}}, {{end}}<a href="/author/{{slugify $a}}">{{$a}}</a>{{end}}</div>
	<div class="paper-meta"><a href="/date/{{.PublishedDate.Format "2006-01-02"}}">{{longDate .PublishedDate}}</a></div>
</div>
{{end}}

{{define "pagination"}}
{{if gt .TotalPages 1}}
<div class="pagination">
	{{if gt .Page 1}}<a href="{{.BaseURL}}page={{sub .Page 1}}">&laquo; Previous</a>{{end}}
	<span class="current">Page {{.Page}} of {{.TotalPages}}</span>
	{{if lt .Page .TotalPages}}<a href="{{.BaseURL}}page={{add .Page 1}}">Next &raquo;</a>{{end}}
</div>
{{end}}
{{end}}

{{define "index"}}
{{template "head" .}}
<h1>Combinatorics on arXiv</h1>
<form class="search-form" action="/search" method="get">
	<input type="text" name="q" placeholder="Search titles, abstracts, authors..." value="">
	<button type="submit">Search</button>
</form>
<p class="stats">{{.Stats.TotalPapers}} papers by {{.Stats.TotalAuthors}} authors{{if not .Stats.LatestPublished.IsZero}}, latest from {{longDate .Stats.LatestPublished}}{{end}}</p>
<h2>Recent Papers</h2>
{{range .Papers}}{{template "paperitem" .}}{{else}}
<p>The catalog is empty.</p>
{{end}}
{{template "pagination" .}}
{{template "foot" .}}
{{end}}

{{define "search"}}
{{template "head" .}}
<h1>Search Results</h1>
<form class="search-form" action="/search" method="get">
	<input type="text" name="q" placeholder="Search titles, abstracts, authors..." value="{{.Query}}">
	<button type="submit">Search</button>
</form>
<p class="stats">{{.Total}} results for &quot;{{.Query}}&quot;</p>
{{range .Papers}}{{template "paperitem" .}}{{else}}
<p>No results found.</p>
{{end}}
{{template "pagination" .}}
{{template "foot" .}}
{{end}}

{{define "paper"}}
{{template "head" .}}
<h1>{{.Paper.Title}}</h1>
<div class="paper-meta">
	<span class="paper-id">{{.Paper.CleanID}}</span> &middot;
	<a href="/date/{{.Paper.PublishedDate.Format "2006-01-02"}}">{{longDate .Paper.PublishedDate}}</a>
	{{if .Paper.Published}}<span class="badge">published</span>{{end}}
</div>
<div class="paper-authors">{{range $i, $a := .Paper.Authors}}{{if $i}}, {{end}}<a href="/author/{{slugify $a}}">{{$a}}</a>{{end}}</div>
<div class="paper-abstract">{{.Paper.Abstract}}</div>
{{if .Paper.JournalRef}}<p class="paper-meta">Journal reference: {{.Paper.JournalRef}}</p>{{end}}
{{if .Paper.Comment}}<p class="paper-meta">Comments: {{.Paper.Comment}}</p>{{end}}
<div class="actions">
	<a class="btn" href="{{.Paper.AbstractURL}}">arXiv</a>
	<a class="btn" href="{{.Paper.PDFURL}}">PDF</a>
	{{if .Paper.DOI}}<a class="btn btn-secondary" href="https://doi.org/{{.Paper.DOI}}">DOI</a>{{end}}
</div>
<h2>BibTeX</h2>
<pre>{{.BibTeX}}</pre>
{{if .Paper.DOI}}
<p><a href="/api/doi-bibtex/{{.Paper.CleanID}}">Published-version BibTeX</a></p>
{{end}}
{{template "foot" .}}
{{end}}

{{define "author"}}
{{template "head" .}}
<h1>{{.Author.Name}}</h1>
<p class="stats">{{.Total}} papers &middot; <a href="/api/author-bibtex/{{.Author.Slug}}">BibTeX for all papers</a></p>
{{range .Papers}}{{template "paperitem" .}}{{end}}
{{template "pagination" .}}
{{template "foot" .}}
{{end}}

{{define "browse"}}
{{template "head" .}}
<h1>Browse by Date</h1>
<div class="year-nav">
{{range .Years}}
	{{if eq .Year $.Year}}<span class="current-year">{{.Year}} <span class="year-count">({{.Count}})</span></span>
	{{else}}<a href="/browse?year={{.Year}}">{{.Year}} <span class="year-count">({{.Count}})</span></a>{{end}}
{{end}}
</div>
<div class="months">
{{range .Months}}
<div class="month">
	<h3>{{.Name}}</h3>
	<table>
		<tr><td>Mo</td><td>Tu</td><td>We</td><td>Th</td><td>Fr</td><td>Sa</td><td>Su</td></tr>
		{{range .Weeks}}
		<tr>
		{{range .}}
			{{if eq .Day 0}}<td></td>
			{{else if gt .Count 0}}<td><a href="/date/{{.Date}}">{{.Day}}</a><span class="day-count">{{.Count}}</span></td>
			{{else}}<td class="empty-day">{{.Day}}</td>{{end}}
		{{end}}
		</tr>
		{{end}}
	</table>
</div>
{{end}}
</div>
{{template "foot" .}}
{{end}}

{{define "date"}}
{{template "head" .}}
<h1>Papers from {{longDate .Day}}</h1>
<p class="stats">{{len .Papers}} papers &middot; <a href="/browse?year={{.Day.Year}}">Back to {{.Day.Year}}</a></p>
{{range .Papers}}{{template "paperitem" .}}{{else}}
<p>No papers on this date.</p>
{{end}}
{{template "foot" .}}
{{end}}

{{define "tools"}}
{{template "head" .}}
<h1>Tools</h1>
<h2>BibTeX Generator</h2>
<p>Paste an arXiv ID, arXiv URL, or DOI to generate a BibTeX entry.</p>
<form class="tools-form" id="bibtex-form">
	<input type="text" id="bibtex-input" size="50" placeholder="2301.00001, arxiv.org/abs/2301.00001, or 10.1000/xyz">
	<button type="submit" class="btn">Generate</button>
</form>
<div id="bibtex-result"></div>
<script>
document.getElementById('bibtex-form').addEventListener('submit', function(e) {
	e.preventDefault();
	var input = document.getElementById('bibtex-input').value;
	var result = document.getElementById('bibtex-result');
	result.innerHTML = '<p>Generating...</p>';
	fetch('/api/generate-bibtex', {
		method: 'POST',
		headers: {'Content-Type': 'application/json'},
		body: JSON.stringify({input: input})
	})
	.then(function(r) { return r.json(); })
	.then(function(data) {
		if (data.error) {
			result.innerHTML = '<p class="error"></p>';
			result.querySelector('p').textContent = data.error;
			return;
		}
		var html = '';
		if (data.arxiv) { html += '<h3>arXiv</h3><pre></pre>'; }
		if (data.published) { html += '<h3>Published</h3><pre></pre>'; }
		result.innerHTML = html;
		var pres = result.querySelectorAll('pre');
		var i = 0;
		if (data.arxiv) { pres[i++].textContent = data.arxiv; }
		if (data.published) { pres[i++].textContent = data.published; }
	})
	.catch(function() {
		result.innerHTML = '<p class="error">Request failed.</p>';
	});
});
</script>
{{template "foot" .}}
{{end}}
`))

func cmdServe(ctx context.Context, dbPath string, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", 8080, "Port to listen on")
	fs.Parse(args)

	store := openStore(dbPath)
	defer store.Close()

	if err := store.EnsureAuthorSlugs(ctx); err != nil {
		log.Fatalf("author slugs: %v", err)
	}

	srv := &server{store: store}
	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleIndex)
	mux.HandleFunc("/search", srv.handleSearch)
	mux.HandleFunc("/paper/", srv.handlePaper)
	mux.HandleFunc("/author/", srv.handleAuthor)
	mux.HandleFunc("/browse", srv.handleBrowse)
	mux.HandleFunc("/date/", srv.handleDate)
	mux.HandleFunc("/random", srv.handleRandom)
	mux.HandleFunc("/tools", srv.handleTools)
	mux.HandleFunc("/sitemap.xml", srv.handleSitemap)
	mux.HandleFunc("/api/bibtex/", srv.handleBibTeX)
	mux.HandleFunc("/api/doi-bibtex/", srv.handleDOIBibTeX)
	mux.HandleFunc("/api/author-bibtex/", srv.handleAuthorBibTeX)
	mux.HandleFunc("/api/generate-bibtex", srv.handleGenerateBibTeX)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Starting server at http://localhost%s", addr)

	httpServer := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

type server struct {
	store *arxivweb.Store
}

// pageParam reads a 1-based page number from the query string.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func totalPages(total int64) int {
	n := int((total + papersPerPage - 1) / papersPerPage)
	if n < 1 {
		n = 1
	}
	return n
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	stats, err := s.store.Stats(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pageParam(r)
	papers, err := s.store.RecentPapers(ctx, (page-1)*papersPerPage, papersPerPage)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.store.AttachAuthors(ctx, papers); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":      "Home",
		"Stats":      stats,
		"Papers":     papers,
		"Page":       page,
		"TotalPages": totalPages(stats.TotalPapers),
		"BaseURL":    "/?",
	}
	templates.ExecuteTemplate(w, "index", data)
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	ctx := r.Context()
	page := pageParam(r)
	papers, total, err := s.store.Search(ctx, query, (page-1)*papersPerPage, papersPerPage)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.store.AttachAuthors(ctx, papers); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":      "Search",
		"Query":      query,
		"Papers":     papers,
		"Total":      total,
		"Page":       page,
		"TotalPages": totalPages(total),
		"BaseURL":    "/search?q=" + template.URLQueryEscaper(query) + "&",
	}
	templates.ExecuteTemplate(w, "search", data)
}

func (s *server) handlePaper(w http.ResponseWriter, r *http.Request) {
	arxivID := strings.TrimPrefix(r.URL.Path, "/paper/")
	if arxivID == "" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	paper, err := s.store.PaperByArxivIDPrefix(ctx, arxivID)
	if errors.Is(err, arxivweb.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	authors, err := s.store.AuthorsForPaper(ctx, paper.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	paper.Authors = authors

	data := map[string]any{
		"Title":  paper.Title,
		"Paper":  paper,
		"BibTeX": paper.ArxivBibTeX(),
	}
	templates.ExecuteTemplate(w, "paper", data)
}

func (s *server) handleAuthor(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/author/")
	if slug == "" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	author, err := s.store.AuthorBySlug(ctx, slug)
	if errors.Is(err, arxivweb.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Old-format URLs (raw names, stale slugs) redirect to the canonical
	// slug.
	if author.Slug != "" && author.Slug != slug {
		http.Redirect(w, r, "/author/"+author.Slug, http.StatusMovedPermanently)
		return
	}

	page := pageParam(r)
	papers, err := s.store.PapersByAuthor(ctx, author.ID, (page-1)*papersPerPage, papersPerPage)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.store.AttachAuthors(ctx, papers); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	total, err := s.store.CountPapersByAuthor(ctx, author.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":      author.Name,
		"Author":     author,
		"Papers":     papers,
		"Total":      total,
		"Page":       page,
		"TotalPages": totalPages(total),
		"BaseURL":    "/author/" + author.Slug + "?",
	}
	templates.ExecuteTemplate(w, "author", data)
}

// calDay is one cell in a browse-page month grid. Day 0 is a blank cell
// padding the first and last weeks.
type calDay struct {
	Day   int
	Count int
	Date  string
}

type calMonth struct {
	Name  string
	Weeks [][]calDay
}

// buildCalendar lays out a year's months as Monday-first week grids,
// annotating each day with its paper count.
func buildCalendar(year int, counts map[string]int) []calMonth {
	months := make([]calMonth, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		daysInMonth := first.AddDate(0, 1, -1).Day()
		lead := (int(first.Weekday()) + 6) % 7

		var weeks [][]calDay
		week := make([]calDay, 0, 7)
		for i := 0; i < lead; i++ {
			week = append(week, calDay{})
		}
		for d := 1; d <= daysInMonth; d++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, int(m), d)
			week = append(week, calDay{Day: d, Count: counts[date], Date: date})
			if len(week) == 7 {
				weeks = append(weeks, week)
				week = make([]calDay, 0, 7)
			}
		}
		if len(week) > 0 {
			for len(week) < 7 {
				week = append(week, calDay{})
			}
			weeks = append(weeks, week)
		}

		months = append(months, calMonth{Name: m.String(), Weeks: weeks})
	}
	return months
}

func (s *server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	years, err := s.store.AvailableYears(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	year := time.Now().Year()
	if len(years) > 0 {
		year = years[0].Year
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = y
	}

	counts, err := s.store.DateCounts(ctx, year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":  fmt.Sprintf("Browse %d", year),
		"Year":   year,
		"Years":  years,
		"Months": buildCalendar(year, counts),
	}
	templates.ExecuteTemplate(w, "browse", data)
}

func (s *server) handleDate(w http.ResponseWriter, r *http.Request) {
	dateStr := strings.TrimPrefix(r.URL.Path, "/date/")
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	papers, err := s.store.PapersOnDate(ctx, day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.store.AttachAuthors(ctx, papers); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":  day.Format("2006-01-02"),
		"Day":    day,
		"Papers": papers,
	}
	templates.ExecuteTemplate(w, "date", data)
}

func (s *server) handleRandom(w http.ResponseWriter, r *http.Request) {
	paper, err := s.store.RandomPaper(r.Context())
	if errors.Is(err, arxivweb.ErrNotFound) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/paper/"+paper.CleanID(), http.StatusFound)
}

func (s *server) handleTools(w http.ResponseWriter, r *http.Request) {
	templates.ExecuteTemplate(w, "tools", map[string]any{"Title": "Tools"})
}

func (s *server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	urls, err := s.store.SitemapURLs(r.Context(), arxivweb.SiteBaseURL())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	doc, err := arxivweb.BuildSitemapXML(urls)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Write(doc)
}

// paperWithAuthors loads a paper plus its author list for the BibTeX
// endpoints.
func (s *server) paperWithAuthors(ctx context.Context, arxivID string) (*arxivweb.Paper, error) {
	paper, err := s.store.PaperByArxivIDPrefix(ctx, arxivID)
	if err != nil {
		return nil, err
	}
	authors, err := s.store.AuthorsForPaper(ctx, paper.ID)
	if err != nil {
		return nil, err
	}
	paper.Authors = authors
	return paper, nil
}

func (s *server) handleBibTeX(w http.ResponseWriter, r *http.Request) {
	arxivID := strings.TrimPrefix(r.URL.Path, "/api/bibtex/")
	paper, err := s.paperWithAuthors(r.Context(), arxivID)
	if errors.Is(err, arxivweb.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, paper.ArxivBibTeX())
}

func (s *server) handleDOIBibTeX(w http.ResponseWriter, r *http.Request) {
	arxivID := strings.TrimPrefix(r.URL.Path, "/api/doi-bibtex/")
	paper, err := s.paperWithAuthors(r.Context(), arxivID)
	if errors.Is(err, arxivweb.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !paper.Published() {
		http.Error(w, "paper has no DOI", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, paper.DOIBibTeX())
}

func (s *server) handleAuthorBibTeX(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/author-bibtex/")
	ctx := r.Context()

	author, err := s.store.AuthorBySlug(ctx, slug)
	if errors.Is(err, arxivweb.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	papers, err := s.store.PapersByAuthor(ctx, author.ID, 0, 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.store.AttachAuthors(ctx, papers); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for i := range papers {
		if i > 0 {
			fmt.Fprint(w, "\n")
		}
		fmt.Fprint(w, papers[i].ArxivBibTeX())
		if papers[i].Published() {
			fmt.Fprint(w, "\n")
			fmt.Fprint(w, papers[i].DOIBibTeX())
		}
	}
}

func (s *server) handleGenerateBibTeX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, map[string]string{"error": "invalid request body"})
		return
	}

	ctx := r.Context()
	arxivID, doi := arxivweb.ParseCitationInput(req.Input)

	switch {
	case arxivID != "":
		paper, err := s.paperWithAuthors(ctx, arxivID)
		if errors.Is(err, arxivweb.ErrNotFound) {
			writeJSON(w, map[string]string{"error": "paper not found in catalog: " + arxivID})
			return
		}
		if err != nil {
			writeJSON(w, map[string]string{"error": err.Error()})
			return
		}
		resp := map[string]string{"arxiv": paper.ArxivBibTeX()}
		if paper.Published() {
			resp["published"] = paper.DOIBibTeX()
		}
		writeJSON(w, resp)

	case doi != "":
		record, err := arxivweb.FetchDOIBibTeX(ctx, doi)
		if err != nil {
			writeJSON(w, map[string]string{"error": "could not resolve DOI: " + doi})
			return
		}
		writeJSON(w, map[string]string{"published": record})

	default:
		writeJSON(w, map[string]string{"error": "unrecognized input; expected an arXiv ID, arXiv URL, or DOI"})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
