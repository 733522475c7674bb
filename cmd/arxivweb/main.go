package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/clmath/arxivweb"
	"github.com/clmath/arxivweb/keywords"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Default catalog location
	dbPath := os.Getenv("ARXIVWEB_DB")
	if dbPath == "" {
		home, _ := os.UserHomeDir()
		dbPath = filepath.Join(home, ".local", "share", "arxivweb", "catalog.db")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "serve":
		cmdServe(ctx, dbPath, args)
	case "keywords":
		cmdKeywords(ctx, dbPath, args)
	case "stats":
		cmdStats(ctx, dbPath, args)
	case "search":
		cmdSearch(ctx, dbPath, args)
	case "slugs":
		cmdSlugs(ctx, dbPath, args)
	case "reindex":
		cmdReindex(ctx, dbPath, args)
	case "help":
		usage()
	default:
		log.Fatalf("unknown command: %s", cmd)
	}
}

func usage() {
	fmt.Println(`arxivweb - arXiv combinatorics catalog frontend

Usage: arxivweb <command> [options]

Commands:
  serve      Start the web server
  keywords   Extract keyword candidates from titles and abstracts
  stats      Show catalog statistics
  search     Search the catalog from the command line
  slugs      Backfill author URL slugs
  reindex    Rebuild the full-text search index

Environment:
  ARXIVWEB_DB  Catalog database path (default: ~/.local/share/arxivweb/catalog.db)

Examples:
  arxivweb serve -port 8080
  arxivweb keywords -min-count 3 -max-ngram 4 -output keywords.csv
  arxivweb search "macdonald polynomials"
  arxivweb stats`)
}

func openStore(dbPath string) *arxivweb.Store {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("create catalog dir: %v", err)
	}
	store, err := arxivweb.Open(dbPath)
	if err != nil {
		log.Fatalf("open catalog: %v", err)
	}
	return store
}

func cmdKeywords(ctx context.Context, dbPath string, args []string) {
	fs := flag.NewFlagSet("keywords", flag.ExitOnError)
	minCount := fs.Int("min-count", keywords.DefaultMinCount, "Min papers a phrase must appear in")
	maxNgram := fs.Int("max-ngram", keywords.DefaultMaxNgram, "Max n-gram length in words")
	output := fs.String("output", "keywords.csv", "Output CSV file")
	configPath := fs.String("config", "", "YAML file with extra stopwords and singular overrides")
	fs.Parse(args)

	cfg := keywords.Config{MaxNgram: *maxNgram, MinCount: *minCount}
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("keyword config: %v", err)
		}
	}

	store := openStore(dbPath)
	defer store.Close()

	stats, err := store.Stats(ctx)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	fmt.Printf("Extracting n-grams (1-%d words) from %d papers...\n", *maxNgram, stats.TotalPapers)

	ext := keywords.New(cfg)
	n := 0
	err = store.EachDocument(ctx, func(id, title, abstract string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n > 0 && n%10000 == 0 {
			fmt.Printf("  %d / %d...\n", n, stats.TotalPapers)
		}
		ext.Add(keywords.Document{ID: id, Title: title, Abstract: abstract})
		n++
		return nil
	})
	// Fail outright with no output file rather than writing a partial
	// report.
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	fmt.Printf("  %d unique phrases found.\n", ext.PhraseCount())

	results := ext.Results()
	fmt.Printf("  %d phrases appear in >= %d papers.\n", len(results), *minCount)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()

	if err := keywords.WriteCSV(f, results); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("Done! Written to: %s\n", *output)
}

func cmdStats(ctx context.Context, dbPath string, args []string) {
	store := openStore(dbPath)
	defer store.Close()

	stats, err := store.Stats(ctx)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}

	fmt.Printf("Catalog: %s\n", dbPath)
	fmt.Printf("Papers:  %d\n", stats.TotalPapers)
	fmt.Printf("Authors: %d\n", stats.TotalAuthors)
	if !stats.LatestPublished.IsZero() {
		fmt.Printf("Latest:  %s\n", stats.LatestPublished.Format("2006-01-02"))
	}
}

func cmdSearch(ctx context.Context, dbPath string, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Max results")
	fs.Parse(args)

	if fs.NArg() == 0 {
		log.Fatal("usage: arxivweb search <query>")
	}

	store := openStore(dbPath)
	defer store.Close()

	papers, total, err := store.Search(ctx, fs.Arg(0), 0, *limit)
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	if err := store.AttachAuthors(ctx, papers); err != nil {
		log.Fatalf("attach authors: %v", err)
	}

	if len(papers) == 0 {
		fmt.Println("No results found.")
		return
	}

	fmt.Printf("%d results\n\n", total)
	for _, p := range papers {
		fmt.Printf("[%s] %s\n", p.ArxivID, p.Title)
		for i, a := range p.Authors {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(a)
		}
		fmt.Printf("\n  %s\n\n", p.PublishedDate.Format("2006-01-02"))
	}
}

func cmdSlugs(ctx context.Context, dbPath string, args []string) {
	store := openStore(dbPath)
	defer store.Close()

	fmt.Println("Backfilling author slugs...")
	if err := store.EnsureAuthorSlugs(ctx); err != nil {
		log.Fatalf("slugs: %v", err)
	}
	fmt.Println("Done.")
}

func cmdReindex(ctx context.Context, dbPath string, args []string) {
	store := openStore(dbPath)
	defer store.Close()

	fmt.Println("Rebuilding FTS index...")
	if err := store.RebuildFTSIndex(ctx); err != nil {
		log.Fatalf("reindex: %v", err)
	}
	fmt.Println("Done.")
}
