// Package vectorizer converts normalized text into fixed-dimension TF-IDF
// feature vectors over a bounded vocabulary learned from the training corpus.
package vectorizer

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultMaxFeatures bounds the vocabulary when no explicit cap is given.
const DefaultMaxFeatures = 1000

// Vectorizer learns a frozen vocabulary and IDF weights from a corpus of
// normalized documents, then maps any document onto that feature space.
// After Fit it is immutable and safe for concurrent Transform calls.
type Vectorizer struct {
	maxFeatures int

	vocab  map[string]int // term → feature index
	terms  []string       // feature index → term
	idf    []float64      // feature index → smoothed IDF weight
	fitted bool
}

// New creates a Vectorizer with the given vocabulary cap.
// A non-positive cap selects DefaultMaxFeatures.
func New(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Fit builds the vocabulary and IDF weights from the given normalized
// documents. When distinct terms exceed the cap, the highest
// document-frequency terms win, ties broken lexicographically. Feature
// indices are assigned in lexicographic term order so fitting the same
// corpus always yields the same layout.
func (v *Vectorizer) Fit(docs []string) error {
	if v.fitted {
		return fmt.Errorf("vectorizer: already fitted")
	}
	if len(docs) == 0 {
		return fmt.Errorf("vectorizer: no documents to fit")
	}

	// Document frequency per distinct term.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range strings.Fields(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	if len(df) == 0 {
		return fmt.Errorf("vectorizer: corpus contains no terms")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}

	if len(terms) > v.maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if df[terms[i]] != df[terms[j]] {
				return df[terms[i]] > df[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(docs))
	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocab[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	v.vocab = vocab
	v.terms = terms
	v.idf = idf
	v.fitted = true
	return nil
}

// Transform maps a normalized document onto the fitted feature space:
// term frequency × IDF, L2-normalized. Out-of-vocabulary terms contribute
// nothing; an empty document yields the zero vector.
func (v *Vectorizer) Transform(doc string) ([]float64, error) {
	if !v.fitted {
		return nil, fmt.Errorf("vectorizer: not fitted")
	}

	vec := make([]float64, len(v.terms))
	for _, term := range strings.Fields(doc) {
		if i, ok := v.vocab[term]; ok {
			vec[i]++
		}
	}

	var sumSq float64
	for i := range vec {
		vec[i] *= v.idf[i]
		sumSq += vec[i] * vec[i]
	}
	if sumSq > 0 {
		inv := 1 / math.Sqrt(sumSq)
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec, nil
}

// NumFeatures returns the fitted vocabulary size, or 0 before Fit.
func (v *Vectorizer) NumFeatures() int {
	return len(v.terms)
}

// Terms returns the fitted vocabulary in feature-index order.
func (v *Vectorizer) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
