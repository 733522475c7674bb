// Package keywords extracts candidate keyword phrases from paper titles
// and abstracts.
//
// The pipeline runs per document: strip LaTeX markup and fold accents to
// ASCII, tokenize into lowercase word tokens (hyphenated compounds stay
// whole), singularize each token so plural and singular variants of a term
// merge, then emit every contiguous n-gram up to a configured length.
// Phrases containing a stopword or a single-character word are dropped.
// Each surviving phrase is credited to the set of documents it occurs in,
// so a phrase repeated many times inside one abstract still counts once.
// The ranked report lists phrases appearing in at least a minimum number
// of distinct documents, for manual curation into a keyword tag list.
//
// Known limitations:
//
//   - A stopword anywhere in a phrase rejects it, so legitimate technical
//     phrases containing prepositions ("chain of rings") are lost. This is
//     deliberate: the output feeds a human curator, and precision beats
//     recall here.
//   - Malformed or nested math markup is removed best-effort; residue that
//     survives normalization simply never matches the token pattern.
package keywords

import (
	"sort"
	"strings"
)

// Defaults for the extraction run, matching the report the curation
// workflow was built around.
const (
	DefaultMaxNgram = 4
	DefaultMinCount = 5
)

// Document is one paper's worth of input text. ID is an opaque stable
// identifier (the arXiv ID in practice); Title and Abstract may be empty.
type Document struct {
	ID       string
	Title    string
	Abstract string
}

// Config controls an extraction run. The zero value gives the default
// n-gram length, minimum count, stopword set, and singular overrides.
type Config struct {
	// MaxNgram is the longest phrase length considered, in words.
	MaxNgram int

	// MinCount is the minimum number of distinct documents a phrase must
	// appear in to make the report.
	MinCount int

	// Stopwords disqualify any phrase containing them. Nil means the
	// built-in set; assign a smaller map in tests.
	Stopwords map[string]bool

	// Overrides maps words to their singular form ahead of the general
	// heuristic. Mapping a word to itself pins it against mangling.
	// Nil means the built-in table.
	Overrides map[string]string
}

// Extractor accumulates phrase observations over a corpus. All state is
// owned by the run: create one Extractor per run and discard it afterwards.
// Not safe for concurrent use; the pipeline is a sequential batch job.
type Extractor struct {
	maxNgram  int
	minCount  int
	stopwords map[string]bool
	overrides map[string]string

	// singularCache memoizes singular forms for the run. Pure performance:
	// a corpus revisits common tokens heavily.
	singularCache map[string]string

	// phrasePapers indexes phrase -> set of document IDs.
	phrasePapers map[string]map[string]bool
}

// New returns an Extractor for one run over a corpus.
func New(cfg Config) *Extractor {
	if cfg.MaxNgram <= 0 {
		cfg.MaxNgram = DefaultMaxNgram
	}
	if cfg.MinCount <= 0 {
		cfg.MinCount = DefaultMinCount
	}
	if cfg.Stopwords == nil {
		cfg.Stopwords = defaultStopwords
	}
	if cfg.Overrides == nil {
		cfg.Overrides = singularOverrides
	}
	return &Extractor{
		maxNgram:      cfg.MaxNgram,
		minCount:      cfg.MinCount,
		stopwords:     cfg.Stopwords,
		overrides:     cfg.Overrides,
		singularCache: make(map[string]string),
		phrasePapers:  make(map[string]map[string]bool),
	}
}

// Add processes one document: title and abstract are joined with a space,
// tokenized, and every valid n-gram is credited to the document's ID.
// Repeats within the document are deduplicated before insertion.
func (e *Extractor) Add(doc Document) {
	tokens := e.Tokenize(doc.Title + " " + doc.Abstract)

	seen := make(map[string]bool)
	for phrase := range NGrams(tokens, e.maxNgram) {
		if seen[phrase] || !e.useful(phrase) {
			continue
		}
		seen[phrase] = true
		papers := e.phrasePapers[phrase]
		if papers == nil {
			papers = make(map[string]bool)
			e.phrasePapers[phrase] = papers
		}
		papers[doc.ID] = true
	}
}

// AddAll processes a corpus in order.
func (e *Extractor) AddAll(docs []Document) {
	for _, d := range docs {
		e.Add(d)
	}
}

// useful reports whether a phrase is a plausible keyword candidate.
// Every constituent word is checked: single-character words and stopwords
// anywhere in the phrase (interior positions included) reject it.
func (e *Extractor) useful(phrase string) bool {
	for _, w := range strings.Split(phrase, " ") {
		if len(w) <= 1 {
			return false
		}
		if e.stopwords[w] {
			return false
		}
	}
	return true
}

// PhraseCount returns the number of distinct phrases observed so far.
func (e *Extractor) PhraseCount() int {
	return len(e.phrasePapers)
}

// Result is one row of the ranked report.
type Result struct {
	Phrase     string
	PaperCount int
	WordCount  int
}

// Results returns phrases appearing in at least MinCount distinct
// documents, sorted by paper count descending. Ties are broken by phrase
// text ascending so the report is deterministic across runs.
func (e *Extractor) Results() []Result {
	var results []Result
	for phrase, papers := range e.phrasePapers {
		if len(papers) < e.minCount {
			continue
		}
		results = append(results, Result{
			Phrase:     phrase,
			PaperCount: len(papers),
			WordCount:  1 + strings.Count(phrase, " "),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].PaperCount != results[j].PaperCount {
			return results[i].PaperCount > results[j].PaperCount
		}
		return results[i].Phrase < results[j].Phrase
	})

	return results
}
