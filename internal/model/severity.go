package model

// Severity is the triage severity assigned to a symptom description.
// The four trained classes are ordered semantically (Low < Medium < High <
// Critical), though the classifier treats them as unordered categories.
// Unknown is reserved for degraded or failed assessments and is never a
// training label.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
	SeverityUnknown  Severity = "Unknown"
)

// Classes returns the four trainable severities in their semantic order.
func Classes() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// Valid reports whether s is one of the four trainable severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}
