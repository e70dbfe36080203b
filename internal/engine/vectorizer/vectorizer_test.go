package vectorizer

import (
	"fmt"
	"math"
	"testing"
)

func fitTestVectorizer(t *testing.T, maxFeatures int, docs []string) *Vectorizer {
	t.Helper()
	v := New(maxFeatures)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	return v
}

func TestFitBuildsSortedVocabulary(t *testing.T) {
	v := fitTestVectorizer(t, 0, []string{
		"mild headache",
		"severe headache",
		"chest pain",
	})

	want := []string{"chest", "headache", "mild", "pain", "severe"}
	got := v.Terms()
	if len(got) != len(want) {
		t.Fatalf("Terms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Terms()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	if err := New(0).Fit(nil); err == nil {
		t.Error("Fit(nil) should fail")
	}
	if err := New(0).Fit([]string{"", "  "}); err == nil {
		t.Error("Fit on termless corpus should fail")
	}
}

func TestFitTwice(t *testing.T) {
	v := fitTestVectorizer(t, 0, []string{"mild headache"})
	if err := v.Fit([]string{"chest pain"}); err == nil {
		t.Error("second Fit() should fail; vocabulary is frozen")
	}
}

func TestVocabularyCap(t *testing.T) {
	// More distinct terms than the cap: vocabulary must be exactly cap-sized,
	// keeping the highest-document-frequency terms.
	docs := []string{
		"fever cough headache",
		"fever cough nausea",
		"fever rash dizziness",
	}
	v := fitTestVectorizer(t, 3, docs)

	if v.NumFeatures() != 3 {
		t.Fatalf("NumFeatures() = %d, want 3", v.NumFeatures())
	}
	vocab := make(map[string]bool)
	for _, term := range v.Terms() {
		vocab[term] = true
	}
	// fever df=3 and cough df=2 must survive; the df=1 tie breaks
	// lexicographically, keeping "dizziness".
	for _, term := range []string{"fever", "cough", "dizziness"} {
		if !vocab[term] {
			t.Errorf("expected %q in capped vocabulary %v", term, v.Terms())
		}
	}
}

func TestTransformL2Normalized(t *testing.T) {
	v := fitTestVectorizer(t, 0, []string{
		"mild headache",
		"severe chest pain",
		"chest pain",
	})

	vec, err := v.Transform("severe chest pain")
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}

	var sumSq float64
	for _, w := range vec {
		if w < 0 {
			t.Errorf("negative weight %f", w)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			t.Fatalf("non-finite weight %f", w)
		}
		sumSq += w * w
	}
	if math.Abs(sumSq-1) > 1e-9 {
		t.Errorf("vector norm² = %f, want 1", sumSq)
	}
}

func TestTransformRarerTermsWeighHigher(t *testing.T) {
	// "pain" appears in every document, "jaw" in one; in a document holding
	// both once, the rarer term must carry the larger weight.
	v := fitTestVectorizer(t, 0, []string{
		"chest pain",
		"abdominal pain",
		"jaw pain",
	})

	vec, err := v.Transform("jaw pain")
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}

	idx := make(map[string]int)
	for i, term := range v.Terms() {
		idx[term] = i
	}
	if vec[idx["jaw"]] <= vec[idx["pain"]] {
		t.Errorf("rare term weight %f not above common term weight %f",
			vec[idx["jaw"]], vec[idx["pain"]])
	}
}

func TestTransformOOVAndEmpty(t *testing.T) {
	v := fitTestVectorizer(t, 0, []string{"mild headache", "chest pain"})

	for _, doc := range []string{"", "completely unseen words"} {
		vec, err := v.Transform(doc)
		if err != nil {
			t.Fatalf("Transform(%q) error: %v", doc, err)
		}
		if len(vec) != v.NumFeatures() {
			t.Fatalf("Transform(%q) len = %d, want %d", doc, len(vec), v.NumFeatures())
		}
		for i, w := range vec {
			if w != 0 {
				t.Errorf("Transform(%q)[%d] = %f, want zero vector", doc, i, w)
			}
		}
	}
}

func TestTransformBeforeFit(t *testing.T) {
	if _, err := New(0).Transform("headache"); err == nil {
		t.Error("Transform before Fit should fail")
	}
}

func TestFitDeterministic(t *testing.T) {
	docs := []string{"mild headache", "severe chest pain", "chest pain", "fever cough"}

	a := fitTestVectorizer(t, 5, docs)
	b := fitTestVectorizer(t, 5, docs)

	if fmt.Sprint(a.Terms()) != fmt.Sprint(b.Terms()) {
		t.Fatalf("vocabularies differ: %v vs %v", a.Terms(), b.Terms())
	}
	va, _ := a.Transform("severe chest pain")
	vb, _ := b.Transform("severe chest pain")
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("weights differ at %d: %f vs %f", i, va[i], vb[i])
		}
	}
}
