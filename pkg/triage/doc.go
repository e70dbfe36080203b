// Package triage provides a symptom-severity classifier that maps free-text
// symptom descriptions to a severity label, confidence score, and
// recommendation.
//
// Quick start:
//
//	tr := triage.New(triage.WithLexiconPath("data/lexicon.txt"))
//
//	a := tr.Assess("severe chest pain radiating to my left arm")
//	fmt.Println(a.Severity) // Critical
//
// The model trains in memory from an embedded corpus on first use; create
// one instance and reuse it across requests. Assess never fails: when the
// model is unavailable it returns the Unknown severity with zero confidence
// instead of an error. Safe for concurrent use.
package triage
