package model

import "time"

// TrainingExample is one labeled corpus entry: a symptom description and the
// severity it teaches. The corpus is embedded and never mutated at runtime.
type TrainingExample struct {
	Text     string
	Severity Severity
}

// Assessment is the engine's output for a single symptom description.
// Severity is Unknown when the engine is degraded or inference failed;
// Confidence is always in [0, 1].
type Assessment struct {
	Severity       Severity
	Recommendation string
	Confidence     float64
}

// AssessmentRecord is a persisted assessment tied to a patient, with its
// staff-review state. Owned by the store; the engine never sees it.
type AssessmentRecord struct {
	ID         string
	PatientID  string
	Symptoms   string
	Assessment Assessment
	CreatedAt  time.Time
	ReviewedBy string // staff identifier, empty until reviewed
	IsReviewed bool
}
