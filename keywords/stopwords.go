package keywords

// defaultStopwords holds common English words and math-paper boilerplate
// to ignore as keyword terms. A phrase containing any of these anywhere
// is rejected.
var defaultStopwords = makeSet(
	"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "do", "does", "did", "will",
	"would", "could", "should", "may", "might", "shall", "can", "that",
	"this", "these", "those", "it", "its", "we", "our", "their", "they",
	"which", "who", "when", "where", "how", "if", "then", "than",
	"not", "no", "so", "also", "always", "both", "each", "all", "some", "any",
	"such", "up", "out", "into", "over", "about", "given", "via",
	"show", "shows", "shown", "prove", "proves", "proved", "proven",
	"use", "used", "using", "obtain", "obtained", "consider", "considered",
	"give", "gives", "study", "studies", "studied", "find", "found",
	"introduce", "present", "paper", "work", "result", "results",
	"following", "thus", "hence", "therefore", "let", "note",
	"well", "known", "one", "two", "three", "first", "second", "third",
	"many", "several", "various", "certain", "other", "different",
	"more", "less", "most", "least", "further", "moreover", "however",
	"here", "there", "now", "only", "just", "i", "ii", "iii", "e", "g",
	"new", "natural", "general", "special", "main", "key", "important",
	"corresponding", "associated", "related", "defined", "induced",

	// Curated additions from reviewing early reports.
	"above", "added", "adding", "additionally", "admit", "admitting",
	"acute", "after", "al", "allow", "allowing",
	"almost", "analytic", "analytical", "another", "answer", "apart",
	"application", "approach", "appropriate", "arbitrary", "argument", "arise",
	"asked", "assigned", "assignment", "assume", "assuming", "based",
	"behavior", "behaviour", "behind", "belief", "belonging", "below", "between",
	"active", "acting", "alternately", "adjacent",
	"bijective", "call", "called", "calling", "case", "characterise",
	"characterize", "choose", "chosen", "classical",
	"clear", "combination", "combinatorial", "combine", "combining",
	"common", "compare", "competition",
	"concerning", "conjecture", "conjectured", "connecting",
	"consideration", "consisting",
	"construction", "constructive", "contain", "containing", "conventional",
	"counting", "current", "declaring",
	"deep", "denote", "denoting", "depend", "depending", "describe", "describing",
	"determine", "determined", "determining", "differ", "direction",
	"disjoint", "draw",
	"computing", "condition", "constant", "due", "easier", "easily",
	"effective", "efficient", "efficiently",
	"enumerate", "enumerating", "equal", "equinumerous", "exploit",
	"eventually", "expanding", "explaining", "explicit", "extending",
	"et", "every", "exactly", "example", "excess", "exhibit", "exhibiting",
	"exist", "exists", "expression", "extend", "extension",
	"fairly", "few", "formalism", "full", "furthermore", "gave",
	"generalization", "generalize", "generalized", "generalizing",
	"generalise", "generalised", "generalising", "generating", "generic",
	"having", "her", "hidden", "him", "his", "historic",
	"holding", "holds", "immediate", "immediately", "implicit",
	"improve", "improved", "improving",
	"include", "including", "independent", "independently", "infinite",
	"influence", "initial", "instance", "interest", "intermediate",
	"interesting", "intuition", "investigate", "involving", "large",
	"largest", "lead", "leading", "leads",
	"left", "lemma", "literature", "london", "lying", "math", "me",
	"mentioned", "method", "much",
	"near", "needed", "newly", "next", "nice", "nontrivial", "observe",
	"observing", "occur",
	"often",
	"occurring", "obvious", "parameter", "part", "per", "perhaps",
	"possible", "precisely",
	"preserving", "pretty", "previous", "previously", "probably", "problem",
	"parameterise", "parameterised", "parameterize", "parameterized",
	"parameterizing",
	"parametrise", "parametrised", "parametrize", "parametrized",
	"parametrizing",
	"proc", "procedure", "produced", "producing", "proof", "property",
	"proportion", "quite", "quote", "quoting",
	"rare", "rather", "realized", "realizing", "reasonable", "recall",
	"recalling", "recent", "recently",
	"relation", "relative", "relatively", "remain", "remaining", "require",
	"required", "research", "resp", "respectively", "restricted", "right",
	"robustly",
	"moderate", "opposite",
	"prescribed",
	"same", "satisfy", "satisfied", "satisfying", "say", "saying",
	"seeming", "seems", "select", "setting", "since",
	"slow", "small", "so-called", "solvable", "specified", "staller",
	"stated", "swap", "systematic",
	"straightforward", "structural", "structure", "subject", "successively",
	"sufficiently", "suppose", "supposing",
	"technique", "technology", "them", "theoretic", "thereof", "thereby",
	"thesis", "triangle", "trivial", "typical",
	"under", "underlying", "unexpected", "us", "usual", "variation",
	"verifying",
	"way", "what", "whereas", "whereby", "while", "whose", "without",
	"yield", "yielding",
)

func makeSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
