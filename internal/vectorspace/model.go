// Package vectorspace builds an immutable TF-IDF vector-space model over a
// document corpus and projects new documents into that space.
package vectorspace

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxFeatures caps the vocabulary when no explicit limit is given.
const DefaultMaxFeatures = 500

// ErrEmptyCorpus is returned by Build when the corpus has no documents.
// Callers should treat it as "serve zero recommendations", not as fatal.
type ErrEmptyCorpus struct{}

func (e *ErrEmptyCorpus) Error() string {
	return "cannot build vector space model from an empty corpus"
}

// Model is a frozen TF-IDF vector space: a bounded vocabulary, per-term IDF
// weights, and one raw weighted vector per corpus document. It is immutable
// after Build and safe for concurrent use; rebuilding requires a full
// re-index into a fresh Model.
type Model struct {
	vocabulary map[string]bool
	idf        map[string]float64
	docVectors []map[string]float64
}

// Build constructs the model from the corpus documents. The vocabulary keeps
// the maxFeatures most frequent terms by global term count (ties broken
// lexicographically for reproducibility); minimum document frequency is 1, so
// any term that appears at all may qualify. Vectors store raw term-count ×
// IDF weights and are normalized on demand by the similarity computation.
func Build(documents []string, maxFeatures int) (*Model, error) {
	if len(documents) == 0 {
		return nil, &ErrEmptyCorpus{}
	}
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	// Tokenization dominates build cost, so it runs in parallel. Workers
	// write into position-indexed slots, keeping the result deterministic.
	tokenized := make([][]string, len(documents))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, doc := range documents {
		g.Go(func() error {
			tokenized[i] = Tokenize(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Global term counts select the vocabulary; document frequencies feed IDF.
	termCounts := make(map[string]int)
	docFrequencies := make(map[string]int)
	for _, tokens := range tokenized {
		seen := make(map[string]bool)
		for _, tok := range tokens {
			termCounts[tok]++
			if !seen[tok] {
				docFrequencies[tok]++
				seen[tok] = true
			}
		}
	}

	terms := make([]string, 0, len(termCounts))
	for term := range termCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termCounts[terms[i]] != termCounts[terms[j]] {
			return termCounts[terms[i]] > termCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocabulary := make(map[string]bool, len(terms))
	idf := make(map[string]float64, len(terms))
	n := float64(len(documents))
	for _, term := range terms {
		vocabulary[term] = true
		// Smoothed IDF: log((1+N)/(1+df)) + 1, never zero so every
		// vocabulary term contributes.
		idf[term] = math.Log((1+n)/(1+float64(docFrequencies[term]))) + 1
	}

	m := &Model{
		vocabulary: vocabulary,
		idf:        idf,
		docVectors: make([]map[string]float64, len(documents)),
	}
	for i, tokens := range tokenized {
		m.docVectors[i] = m.vectorize(tokens)
	}
	return m, nil
}

// vectorize builds a raw term-count × IDF vector from tokens, restricted to
// the frozen vocabulary.
func (m *Model) vectorize(tokens []string) map[string]float64 {
	counts := make(map[string]int)
	for _, tok := range tokens {
		if m.vocabulary[tok] {
			counts[tok]++
		}
	}

	vector := make(map[string]float64, len(counts))
	for term, count := range counts {
		vector[term] = float64(count) * m.idf[term]
	}
	return vector
}

// Transform projects an arbitrary document into the frozen space.
// Out-of-vocabulary terms are ignored, never added. A document sharing no
// vocabulary terms yields an empty (zero) vector, which is valid input for
// similarity computation.
func (m *Model) Transform(text string) map[string]float64 {
	return m.vectorize(Tokenize(text))
}

// DocVector returns the stored vector for the corpus document at position i,
// aligned with the corpus order passed to Build.
func (m *Model) DocVector(i int) map[string]float64 {
	return m.docVectors[i]
}

// NumDocs returns the number of corpus documents in the model.
func (m *Model) NumDocs() int {
	return len(m.docVectors)
}

// VocabularySize returns the number of terms in the frozen vocabulary.
func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}

// InVocabulary reports whether the term survived vocabulary selection.
func (m *Model) InVocabulary(term string) bool {
	return m.vocabulary[term]
}
