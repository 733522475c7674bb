// Package arxivweb provides the catalog layer for a web frontend that
// browses arXiv combinatorics papers.
//
// This package implements:
//   - SQLite-backed storage for papers, authors, and their join table
//   - FTS5 full-text search over titles and abstracts, with a LIKE
//     fallback for short query words
//   - Browse-by-date and per-author queries
//   - BibTeX record generation (arXiv e-print and published/DOI forms)
//
// The companion keywords package mines candidate keyword phrases from
// the catalog's abstracts; cmd/arxivweb ties both together behind a CLI
// with a "serve" web UI.
//
// Basic usage:
//
//	store, err := arxivweb.Open("/path/to/catalog.db")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	papers, total, err := store.Search(ctx, "macdonald polynomials", 0, 20)
package arxivweb
