// Package recommend maps an assessed severity and confidence to fixed
// human-readable guidance. Pure lookup: no randomness, no I/O.
package recommend

import "github.com/crimson-sun/triage/internal/model"

// DefaultThreshold is the confidence below which the disclaimer is appended.
const DefaultThreshold = 0.6

// Disclaimer is appended when the model's confidence falls below the
// threshold.
const Disclaimer = "\n\nNote: This is an initial assessment with limited confidence. A healthcare professional should verify this assessment."

// unknownGuidance covers severities outside the four trained classes.
const unknownGuidance = "Please consult with a healthcare professional for proper evaluation."

var guidance = map[model.Severity]string{
	model.SeverityLow:      "Your symptoms suggest a non-urgent condition. Rest, hydrate, and monitor symptoms. If they persist for more than 2-3 days or worsen, schedule a regular appointment.",
	model.SeverityMedium:   "Your symptoms may require medical attention. Schedule an appointment in the next 1-2 days. Monitor for worsening symptoms.",
	model.SeverityHigh:     "Your symptoms require prompt medical attention. Please schedule an urgent appointment or visit urgent care within 24 hours.",
	model.SeverityCritical: "Your symptoms suggest a potentially life-threatening condition. Seek immediate emergency medical attention or call emergency services.",
}

// For returns the guidance paragraph for the severity, with the disclaimer
// appended when confidence is below the threshold.
func For(severity model.Severity, confidence, threshold float64) string {
	text, ok := guidance[severity]
	if !ok {
		text = unknownGuidance
	}
	if confidence < threshold {
		return text + Disclaimer
	}
	return text
}
