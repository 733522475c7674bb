package keywords

// singularOverrides corrects words the general heuristic gets wrong on
// math-paper vocabulary. Entries mapping a word to itself exist to stop
// the heuristic from treating it as a Latin/Greek plural.
var singularOverrides = map[string]string{
	"tableaux":  "tableau",
	"vertices":  "vertex",
	"matrices":  "matrix",
	"indices":   "index",
	"axes":      "axis",
	"bases":     "basis",
	"simplices": "simplex",
	"radii":     "radius",
	"radius":    "radius", // heuristic mangles this to "radiu"
	"rhombus":   "rhombus",
	"locus":     "locus",
	"foci":      "focus",
	"tori":      "torus",
	"lemmata":   "lemma",
	"automata":  "automaton",
	"criteria":  "criterion",
	"phenomena": "phenomenon",
	"strata":    "stratum",

	// Pinned against the -s/-us/-is suffix rules.
	"axis":          "axis",
	"erdos":         "erdos",
	"calculus":      "calculus",
	"class":         "class",
	"continuous":    "continuous",
	"homogeneous":   "homogeneous",
	"inhomogeneous": "inhomogeneous",
	"mobius":        "mobius",
	"process":       "process",
	"thesis":        "thesis",
}
