// Package corpus holds the embedded training data for the triage engine.
// The examples cover four severity classes in both lay and clinical phrasing.
// The set is fixed: the engine retrains from it at every process start, so a
// given build always produces the same model.
package corpus

import "github.com/crimson-sun/triage/internal/model"

// layExamples are symptom descriptions in everyday patient language.
var layExamples = []model.TrainingExample{
	// Low severity
	{Text: "I have a mild headache", Severity: model.SeverityLow},
	{Text: "Slight cough for one day", Severity: model.SeverityLow},
	{Text: "Runny nose and sneezing", Severity: model.SeverityLow},
	{Text: "Minor cuts and scrapes", Severity: model.SeverityLow},
	{Text: "Mild sore throat", Severity: model.SeverityLow},
	{Text: "Slight fever below 38°C", Severity: model.SeverityLow},
	{Text: "Mild joint pain", Severity: model.SeverityLow},
	{Text: "Minor skin rash", Severity: model.SeverityLow},

	// Medium severity
	{Text: "Persistent headache for several days", Severity: model.SeverityMedium},
	{Text: "Fever between 38°C and 39°C", Severity: model.SeverityMedium},
	{Text: "Cough with colored phlegm", Severity: model.SeverityMedium},
	{Text: "Dehydration with some dizziness", Severity: model.SeverityMedium},
	{Text: "Persistent vomiting", Severity: model.SeverityMedium},
	{Text: "Flu symptoms with high fever", Severity: model.SeverityMedium},
	{Text: "Ear pain with discharge", Severity: model.SeverityMedium},
	{Text: "Urinary tract infection symptoms", Severity: model.SeverityMedium},

	// High severity
	{Text: "Severe abdominal pain", Severity: model.SeverityHigh},
	{Text: "Difficulty breathing", Severity: model.SeverityHigh},
	{Text: "High fever above 39°C", Severity: model.SeverityHigh},
	{Text: "Chest pain", Severity: model.SeverityHigh},
	{Text: "Severe headache with neck stiffness", Severity: model.SeverityHigh},
	{Text: "Sudden vision changes", Severity: model.SeverityHigh},
	{Text: "Deep cut requiring stitches", Severity: model.SeverityHigh},
	{Text: "Broken bone or suspected fracture", Severity: model.SeverityHigh},

	// Critical severity
	{Text: "Unconsciousness or fainting", Severity: model.SeverityCritical},
	{Text: "Severe chest pain radiating to arm or jaw", Severity: model.SeverityCritical},
	{Text: "Inability to breathe", Severity: model.SeverityCritical},
	{Text: "Severe bleeding that won't stop", Severity: model.SeverityCritical},
	{Text: "Poisoning or overdose", Severity: model.SeverityCritical},
	{Text: "Seizure", Severity: model.SeverityCritical},
	{Text: "Severe burn", Severity: model.SeverityCritical},
	{Text: "Stroke symptoms like facial drooping", Severity: model.SeverityCritical},
}

// clinicalExamples repeat the same classes in clinical terminology so the
// model recognizes staff-entered descriptions as well as patient-entered ones.
var clinicalExamples = []model.TrainingExample{
	// Low severity
	{Text: "Mild rhinitis with nasal discharge", Severity: model.SeverityLow},
	{Text: "Slight pharyngitis with minimal discomfort", Severity: model.SeverityLow},
	{Text: "Minor contusions", Severity: model.SeverityLow},
	{Text: "Localized dermatitis", Severity: model.SeverityLow},

	// Medium severity
	{Text: "Moderate pyrexia with myalgia", Severity: model.SeverityMedium},
	{Text: "Persistent emesis", Severity: model.SeverityMedium},
	{Text: "Otitis media with effusion", Severity: model.SeverityMedium},
	{Text: "Uncomplicated cystitis", Severity: model.SeverityMedium},

	// High severity
	{Text: "Acute dyspnea", Severity: model.SeverityHigh},
	{Text: "Severe cephalgia with photophobia", Severity: model.SeverityHigh},
	{Text: "Suspected appendicitis", Severity: model.SeverityHigh},
	{Text: "Open fracture requiring reduction", Severity: model.SeverityHigh},

	// Critical severity
	{Text: "Syncope with irregular cardiac rhythm", Severity: model.SeverityCritical},
	{Text: "Acute myocardial infarction", Severity: model.SeverityCritical},
	{Text: "Status epilepticus", Severity: model.SeverityCritical},
	{Text: "Cerebrovascular accident with hemiparesis", Severity: model.SeverityCritical},
}

// Examples returns the full training corpus, lay examples first.
// The returned slice is a fresh copy; callers may not affect the corpus.
func Examples() []model.TrainingExample {
	out := make([]model.TrainingExample, 0, len(layExamples)+len(clinicalExamples))
	out = append(out, layExamples...)
	out = append(out, clinicalExamples...)
	return out
}
