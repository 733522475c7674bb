package keywords

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultFor(results []Result, phrase string) (Result, bool) {
	for _, r := range results {
		if r.Phrase == phrase {
			return r, true
		}
	}
	return Result{}, false
}

func TestExtractVertexScenario(t *testing.T) {
	e := New(Config{MaxNgram: 2, MinCount: 2})
	e.AddAll([]Document{
		{ID: "1", Abstract: "vertices of the polytope"},
		{ID: "2", Abstract: "vertex of the graph"},
		{ID: "3", Abstract: "three vertices define a tetrahedron"},
	})
	results := e.Results()

	// Singularization merges "vertices" and "vertex".
	r, ok := resultFor(results, "vertex")
	require.True(t, ok, "vertex should make the report")
	assert.Equal(t, 3, r.PaperCount)
	assert.Equal(t, 1, r.WordCount)

	// "vertex of" contains the stopword "of".
	_, ok = resultFor(results, "vertex of")
	assert.False(t, ok)
}

func TestWithinDocumentDedup(t *testing.T) {
	e := New(Config{MaxNgram: 1, MinCount: 1})
	e.Add(Document{ID: "1", Abstract: "chromatic chromatic chromatic"})

	r, ok := resultFor(e.Results(), "chromatic")
	require.True(t, ok)
	assert.Equal(t, 1, r.PaperCount, "a document counts once per phrase")
}

func TestFilterRejectsInteriorAndTrailingStopwords(t *testing.T) {
	e := New(Config{})
	assert.False(t, e.useful("polytope the"), "stopword in second position")
	assert.False(t, e.useful("sum of squares"), "interior stopword")
	assert.False(t, e.useful("x polytope"), "single-character word")
	assert.True(t, e.useful("symmetric function"))
}

func TestMinCountThreshold(t *testing.T) {
	e := New(Config{MaxNgram: 1, MinCount: 2})
	e.AddAll([]Document{
		{ID: "1", Abstract: "permutation"},
		{ID: "2", Abstract: "permutation matroid"},
	})
	results := e.Results()

	_, ok := resultFor(results, "permutation")
	assert.True(t, ok)
	_, ok = resultFor(results, "matroid")
	assert.False(t, ok, "below threshold")
}

func TestTitleAndAbstractBothCount(t *testing.T) {
	e := New(Config{MaxNgram: 2, MinCount: 1})
	e.Add(Document{ID: "1", Title: "Schur positivity", Abstract: ""})
	e.Add(Document{ID: "2", Title: "", Abstract: "Schur positivity again"})

	r, ok := resultFor(e.Results(), "schur positivity")
	require.True(t, ok)
	assert.Equal(t, 2, r.PaperCount)
}

func TestEmptyDocumentsAccepted(t *testing.T) {
	e := New(Config{MinCount: 1})
	e.Add(Document{ID: "1"})
	assert.Empty(t, e.Results())
}

// Decreasing the max n-gram length only removes longer phrases from the
// report; retained phrases keep their counts.
func TestMaxNgramMonotonicity(t *testing.T) {
	corpus := []Document{
		{ID: "1", Abstract: "symmetric function theory"},
		{ID: "2", Abstract: "symmetric function identity"},
		{ID: "3", Abstract: "symmetric group character"},
	}

	wide := New(Config{MaxNgram: 3, MinCount: 1})
	wide.AddAll(corpus)
	narrow := New(Config{MaxNgram: 2, MinCount: 1})
	narrow.AddAll(corpus)

	wideResults := wide.Results()
	for _, r := range narrow.Results() {
		w, ok := resultFor(wideResults, r.Phrase)
		require.True(t, ok, "phrase %q missing from wider run", r.Phrase)
		assert.Equal(t, w.PaperCount, r.PaperCount)
	}
	for _, r := range wideResults {
		if r.WordCount > 2 {
			_, ok := resultFor(narrow.Results(), r.Phrase)
			assert.False(t, ok, "phrase %q too long for narrow run", r.Phrase)
		}
	}
}

func TestResultsDeterministicOrder(t *testing.T) {
	e := New(Config{MaxNgram: 1, MinCount: 1})
	e.AddAll([]Document{
		{ID: "1", Abstract: "matroid polytope quiver"},
		{ID: "2", Abstract: "matroid"},
	})
	results := e.Results()
	require.Len(t, results, 3)

	assert.Equal(t, "matroid", results[0].Phrase)
	// Equal counts tie-break on phrase text ascending.
	assert.Equal(t, "polytope", results[1].Phrase)
	assert.Equal(t, "quiver", results[2].Phrase)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Result{
		{Phrase: "symmetric function", PaperCount: 12, WordCount: 2},
		{Phrase: "matroid", PaperCount: 7, WordCount: 1},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "phrase,paper_count,word_count", lines[0])
	assert.Equal(t, "symmetric function,12,2", lines[1])
	assert.Equal(t, "matroid,7,1", lines[2])
}
