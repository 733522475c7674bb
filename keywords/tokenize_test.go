package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeShape(t *testing.T) {
	e := New(Config{})
	tokens := e.Tokenize("The $q$-analogs of 3 Macdonald polynomials, q-analogs!")

	for _, tok := range tokens {
		assert.Regexp(t, `^[a-z]+(-[a-z]+)*$`, tok, "token alphabet invariant")
	}
	assert.Contains(t, tokens, "q-analog")
	assert.NotContains(t, tokens, "3")
}

func TestTokenizeSingularizes(t *testing.T) {
	e := New(Config{})
	assert.Equal(t, []string{"polynomial", "graph", "vertex"},
		e.Tokenize("polynomials graphs vertices"))
}

func TestSingularOverridePrecedence(t *testing.T) {
	e := New(Config{})
	// "matrices" has an override; "radius" is pinned to itself because
	// the general heuristic would return "radiu".
	assert.Equal(t, "matrix", e.singular("matrices"))
	assert.Equal(t, "radius", e.singular("radius"))
	assert.Equal(t, "tableau", e.singular("tableaux"))
	assert.Equal(t, "erdos", e.singular("erdos"))
}

func TestSingularStopwordsUntouched(t *testing.T) {
	e := New(Config{})
	// Heuristics corrupt short function words (this -> thi, was -> wa);
	// stopwords must pass through unchanged.
	for _, w := range []string{"this", "was", "its", "has", "thus"} {
		assert.Equal(t, w, e.singular(w))
	}
}

func TestSingularFallback(t *testing.T) {
	e := New(Config{})
	// Already-singular words with no matching rule come back unchanged.
	assert.Equal(t, "graph", e.singular("graph"))
	assert.Equal(t, "tetrahedron", e.singular("tetrahedron"))
}

func TestSingularCacheIsPerRun(t *testing.T) {
	a := New(Config{Overrides: map[string]string{"vertices": "vertex"}})
	assert.Equal(t, "vertex", a.singular("vertices"))

	// A second run with a different override table must not see the
	// first run's cache.
	b := New(Config{Overrides: map[string]string{"vertices": "corner"}})
	assert.Equal(t, "corner", b.singular("vertices"))
}

func TestTokenizeInjectedTables(t *testing.T) {
	e := New(Config{
		Stopwords: map[string]bool{"foo": true},
		Overrides: map[string]string{"bars": "bar"},
	})
	assert.Equal(t, []string{"foo", "bar"}, e.Tokenize("foo bars"))
}
