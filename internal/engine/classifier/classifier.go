// Package classifier implements a multinomial naive Bayes classifier over
// TF-IDF feature vectors. Training learns per-class priors from label
// frequencies and per-feature likelihoods from summed feature weights, with
// additive smoothing so no feature has zero probability in any class.
package classifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/crimson-sun/triage/internal/model"
)

// DefaultAlpha is the Laplace smoothing constant applied to feature counts.
const DefaultAlpha = 1.0

// Classifier is a fitted multinomial naive Bayes model. After Fit it is
// immutable and safe for concurrent Predict calls.
type Classifier struct {
	alpha float64

	classes  []model.Severity
	logPrior []float64   // per class
	logLik   [][]float64 // [class][feature]
	fitted   bool
}

// New creates a Classifier with the given smoothing constant.
// A non-positive alpha selects DefaultAlpha.
func New(alpha float64) *Classifier {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &Classifier{alpha: alpha}
}

// Fit trains the model on (vector, label) pairs. Every vector must have the
// same dimensionality; classes are taken from the labels and ordered
// deterministically.
func (c *Classifier) Fit(vectors [][]float64, labels []model.Severity) error {
	if c.fitted {
		return fmt.Errorf("classifier: already fitted")
	}
	if len(vectors) == 0 || len(vectors) != len(labels) {
		return fmt.Errorf("classifier: %d vectors for %d labels", len(vectors), len(labels))
	}

	numFeatures := len(vectors[0])
	if numFeatures == 0 {
		return fmt.Errorf("classifier: zero-dimensional feature space")
	}

	// Deterministic class order: sorted by name.
	classIdx := make(map[model.Severity]int)
	var classes []model.Severity
	for _, lbl := range labels {
		if _, ok := classIdx[lbl]; !ok {
			classIdx[lbl] = 0
			classes = append(classes, lbl)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	for i, cls := range classes {
		classIdx[cls] = i
	}

	counts := make([]float64, len(classes))
	featureSum := make([][]float64, len(classes))
	for i := range featureSum {
		featureSum[i] = make([]float64, numFeatures)
	}

	for i, vec := range vectors {
		if len(vec) != numFeatures {
			return fmt.Errorf("classifier: vector %d has %d features, want %d", i, len(vec), numFeatures)
		}
		k := classIdx[labels[i]]
		counts[k]++
		for j, w := range vec {
			featureSum[k][j] += w
		}
	}

	total := float64(len(labels))
	logPrior := make([]float64, len(classes))
	logLik := make([][]float64, len(classes))
	for k := range classes {
		logPrior[k] = math.Log(counts[k] / total)

		var classTotal float64
		for _, w := range featureSum[k] {
			classTotal += w
		}
		denom := math.Log(classTotal + c.alpha*float64(numFeatures))

		logLik[k] = make([]float64, numFeatures)
		for j, w := range featureSum[k] {
			logLik[k][j] = math.Log(w+c.alpha) - denom
		}
	}

	c.classes = classes
	c.logPrior = logPrior
	c.logLik = logLik
	c.fitted = true
	return nil
}

// Predict returns the most probable class for the feature vector, plus the
// softmax-normalized probability per class in Classes() order. A zero vector
// is valid and yields a prior-dominated, low-confidence prediction; the
// probabilities are finite for any finite input.
func (c *Classifier) Predict(vec []float64) (model.Severity, []float64, error) {
	if !c.fitted {
		return model.SeverityUnknown, nil, fmt.Errorf("classifier: not fitted")
	}
	if len(vec) != len(c.logLik[0]) {
		return model.SeverityUnknown, nil, fmt.Errorf("classifier: vector has %d features, want %d", len(vec), len(c.logLik[0]))
	}

	joint := make([]float64, len(c.classes))
	for k := range c.classes {
		score := c.logPrior[k]
		lik := c.logLik[k]
		for j, w := range vec {
			if w != 0 {
				score += w * lik[j]
			}
		}
		joint[k] = score
	}

	probs := softmax(joint)

	best := 0
	for k := 1; k < len(probs); k++ {
		if probs[k] > probs[best] {
			best = k
		}
	}
	return c.classes[best], probs, nil
}

// Classes returns the fitted class labels in prediction-probability order.
func (c *Classifier) Classes() []model.Severity {
	out := make([]model.Severity, len(c.classes))
	copy(out, c.classes)
	return out
}

// softmax converts log scores into a probability distribution. Subtracting
// the max score first keeps the exponentials in range.
func softmax(scores []float64) []float64 {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
