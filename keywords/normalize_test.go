package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsMath(t *testing.T) {
	out := Normalize("We get $$\\sum_{i=0}^n x_i\n$$ and $k$ colors")
	assert.NotContains(t, out, "$")
	assert.NotContains(t, out, "sum")
	assert.Contains(t, out, "we get")
	assert.Contains(t, out, "colors")
	// Inline math loses its content too, replaced by a space.
	assert.Equal(t, "the  -th polynomial", Normalize("The $n$-th polynomial"))
}

func TestNormalizeAccentCommands(t *testing.T) {
	// Accent commands keep the base letter even though generic commands
	// are stripped wholesale.
	assert.Equal(t, "erdos", Normalize(`Erd\H{o}s`))
	assert.Equal(t, "mobius", Normalize(`M\"{o}bius`))
	assert.Equal(t, "mobius", Normalize(`M\"obius`))
	assert.Equal(t, "cedric", Normalize(`C\'edric`))
}

func TestNormalizeCommands(t *testing.T) {
	assert.Equal(t, "a  graph", Normalize(`a \emph{planar} graph`))
	assert.Equal(t, "a  graph", Normalize(`a \noindent graph`))
	assert.Equal(t, "bound  n ", Normalize(`bound {n}`))
}

func TestNormalizeUnicodeFolding(t *testing.T) {
	assert.Equal(t, "mobius", Normalize("Möbius"))
	assert.Equal(t, "erdos", Normalize("Erdős"))
	// Unmappable characters are dropped, not replaced.
	assert.Equal(t, "a  b", Normalize("a ∑ b"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		`The $q$-analog of M\"{o}bius functions over $$GF(2)$$`,
		"plain lowercase words",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeMalformedMarkup(t *testing.T) {
	// Nested or unbalanced markup is removed best-effort; residue is
	// tolerated because the tokenizer never matches it.
	out := Normalize(`\frac{a}{\sqrt{b}} unbalanced $x`)
	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, "}")
	assert.NotContains(t, out, `\`)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}
