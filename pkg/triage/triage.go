package triage

import (
	"github.com/crimson-sun/triage/internal/engine"
	"github.com/crimson-sun/triage/internal/model"
)

// Severity labels returned by Assess.
const (
	SeverityLow      = string(model.SeverityLow)
	SeverityMedium   = string(model.SeverityMedium)
	SeverityHigh     = string(model.SeverityHigh)
	SeverityCritical = string(model.SeverityCritical)
	SeverityUnknown  = string(model.SeverityUnknown)
)

// Assessment is the stable public result type. Severity is one of the
// Severity* constants; Confidence is in [0, 1].
type Assessment struct {
	Severity       string  `json:"severity"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
}

// Triage is a symptom-severity classifier. Safe for concurrent use.
type Triage struct {
	engine *engine.Engine
}

// New creates a Triage instance. Construction is cheap; the model trains on
// the first Assess call (or an explicit Train).
func New(opts ...Option) *Triage {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Triage{engine: engine.New(engine.Config{
		LexiconPath:         o.lexiconPath,
		MaxFeatures:         o.maxFeatures,
		ConfidenceThreshold: o.confidenceThreshold,
		SmoothingAlpha:      o.smoothingAlpha,
	})}
}

// Train eagerly fits the model and reports whether it is usable. Optional:
// Assess trains on first use anyway, but calling Train at startup surfaces a
// degraded model before the first patient request. Idempotent.
func (t *Triage) Train() bool {
	return t.engine.Init() == engine.StateReady
}

// Assess classifies a free-text symptom description. Total: any input,
// including the empty string, yields a well-formed Assessment, and failures
// map to SeverityUnknown with zero confidence rather than an error.
func (t *Triage) Assess(symptoms string) Assessment {
	a := t.engine.Assess(symptoms)
	return Assessment{
		Severity:       string(a.Severity),
		Recommendation: a.Recommendation,
		Confidence:     a.Confidence,
	}
}
