package classifier

import (
	"math"
	"testing"

	"github.com/crimson-sun/triage/internal/model"
)

// fitTestClassifier trains a small two-feature model: feature 0 signals Low,
// feature 1 signals Critical.
func fitTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c := New(0)
	vectors := [][]float64{
		{1, 0},
		{0.9, 0.1},
		{0, 1},
		{0.1, 0.9},
	}
	labels := []model.Severity{
		model.SeverityLow, model.SeverityLow,
		model.SeverityCritical, model.SeverityCritical,
	}
	if err := c.Fit(vectors, labels); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	return c
}

func TestPredictSeparatesClasses(t *testing.T) {
	c := fitTestClassifier(t)

	label, _, err := c.Predict([]float64{1, 0})
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if label != model.SeverityLow {
		t.Errorf("Predict(low signal) = %s, want Low", label)
	}

	label, _, err = c.Predict([]float64{0, 1})
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if label != model.SeverityCritical {
		t.Errorf("Predict(critical signal) = %s, want Critical", label)
	}
}

func TestPredictProbabilitiesWellFormed(t *testing.T) {
	c := fitTestClassifier(t)

	for _, vec := range [][]float64{{1, 0}, {0, 0}, {0.5, 0.5}, {100, 0}} {
		_, probs, err := c.Predict(vec)
		if err != nil {
			t.Fatalf("Predict(%v) error: %v", vec, err)
		}
		if len(probs) != len(c.Classes()) {
			t.Fatalf("got %d probabilities for %d classes", len(probs), len(c.Classes()))
		}

		var sum, best float64
		for _, p := range probs {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				t.Fatalf("Predict(%v): non-finite probability %f", vec, p)
			}
			if p < 0 || p > 1 {
				t.Errorf("Predict(%v): probability %f out of [0,1]", vec, p)
			}
			sum += p
			if p > best {
				best = p
			}
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Predict(%v): probabilities sum to %f", vec, sum)
		}
		// The max of an n-class distribution is at least 1/n.
		if best < 1/float64(len(probs)) {
			t.Errorf("Predict(%v): max probability %f below uniform floor", vec, best)
		}
	}
}

func TestPredictZeroVectorFollowsPriors(t *testing.T) {
	// Three Low examples to one Critical: with no feature evidence, the
	// prediction must fall back to the dominant prior.
	c := New(0)
	vectors := [][]float64{{1, 0}, {0.8, 0}, {0.9, 0.1}, {0, 1}}
	labels := []model.Severity{
		model.SeverityLow, model.SeverityLow, model.SeverityLow,
		model.SeverityCritical,
	}
	if err := c.Fit(vectors, labels); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	label, probs, err := c.Predict([]float64{0, 0})
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if label != model.SeverityLow {
		t.Errorf("Predict(zero vector) = %s, want prior-dominated Low", label)
	}
	for _, p := range probs {
		if math.IsNaN(p) {
			t.Fatal("zero vector produced NaN probability")
		}
	}
}

func TestPredictDeterministic(t *testing.T) {
	c := fitTestClassifier(t)

	vec := []float64{0.3, 0.7}
	firstLabel, firstProbs, _ := c.Predict(vec)
	for i := 0; i < 5; i++ {
		label, probs, _ := c.Predict(vec)
		if label != firstLabel {
			t.Fatalf("label changed between calls: %s then %s", firstLabel, label)
		}
		for j := range probs {
			if probs[j] != firstProbs[j] {
				t.Fatalf("probability %d changed between calls", j)
			}
		}
	}
}

func TestFitErrors(t *testing.T) {
	if err := New(0).Fit(nil, nil); err == nil {
		t.Error("Fit(nil, nil) should fail")
	}
	if err := New(0).Fit([][]float64{{1}}, nil); err == nil {
		t.Error("Fit with mismatched labels should fail")
	}
	if err := New(0).Fit([][]float64{{}}, []model.Severity{model.SeverityLow}); err == nil {
		t.Error("Fit with zero features should fail")
	}
	if err := New(0).Fit([][]float64{{1, 0}, {1}}, []model.Severity{model.SeverityLow, model.SeverityHigh}); err == nil {
		t.Error("Fit with ragged vectors should fail")
	}

	c := fitTestClassifier(t)
	if err := c.Fit([][]float64{{1, 0}}, []model.Severity{model.SeverityLow}); err == nil {
		t.Error("second Fit() should fail; model is frozen")
	}
}

func TestPredictErrors(t *testing.T) {
	if _, _, err := New(0).Predict([]float64{1, 0}); err == nil {
		t.Error("Predict before Fit should fail")
	}

	c := fitTestClassifier(t)
	if _, _, err := c.Predict([]float64{1, 0, 0}); err == nil {
		t.Error("Predict with wrong dimensionality should fail")
	}
}

func TestClassesSortedAndCopied(t *testing.T) {
	c := fitTestClassifier(t)

	classes := c.Classes()
	if len(classes) != 2 {
		t.Fatalf("Classes() = %v, want 2 entries", classes)
	}
	if classes[0] != model.SeverityCritical || classes[1] != model.SeverityLow {
		t.Errorf("Classes() = %v, want sorted [Critical Low]", classes)
	}

	classes[0] = model.SeverityUnknown
	if c.Classes()[0] != model.SeverityCritical {
		t.Error("Classes() exposes internal storage")
	}
}
