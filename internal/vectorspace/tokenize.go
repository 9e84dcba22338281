package vectorspace

import (
	"regexp"
	"strings"
)

// tokenPattern matches word tokens of at least two characters, mirroring the
// common vectorizer convention that drops single-character tokens.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// englishStopwords are excluded from the vocabulary. The list covers the
// standard English function words.
var englishStopwords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		a about above after again against all am an and any are aren as at
		be because been before being below between both but by
		can cannot could couldn
		did didn do does doesn doing don down during
		each few for from further
		had hadn has hasn have haven having he her here hers herself him
		himself his how
		i if in into is isn it its itself
		just
		me more most mustn my myself
		no nor not now
		of off on once only or other our ours ourselves out over own
		same shan she should shouldn so some such
		than that the their theirs them themselves then there these they
		this those through to too
		under until up
		very
		was wasn we were weren what when where which while who whom why will
		with won would wouldn
		you your yours yourself yourselves
	`) {
		englishStopwords[w] = true
	}
}

// Tokenize lowercases the text, extracts word tokens, drops English
// stopwords, and appends bigrams formed from the surviving adjacent tokens.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)

	unigrams := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !englishStopwords[tok] {
			unigrams = append(unigrams, tok)
		}
	}

	tokens := make([]string, 0, len(unigrams)*2)
	tokens = append(tokens, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		tokens = append(tokens, unigrams[i]+" "+unigrams[i+1])
	}
	return tokens
}
