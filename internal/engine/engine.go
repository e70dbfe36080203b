// Package engine orchestrates the normalize → vectorize → classify →
// recommend pipeline behind a single total Assess call. The model trains
// once, in memory, from the embedded corpus; a process restart retrains from
// scratch, so the fitted model is never persisted.
package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/crimson-sun/triage/internal/engine/classifier"
	"github.com/crimson-sun/triage/internal/engine/corpus"
	"github.com/crimson-sun/triage/internal/engine/normalizer"
	"github.com/crimson-sun/triage/internal/engine/recommend"
	"github.com/crimson-sun/triage/internal/engine/vectorizer"
	"github.com/crimson-sun/triage/internal/model"
)

// State is the engine lifecycle state. The only transitions are
// Uninitialized → Ready and Uninitialized → Degraded; both are permanent for
// the process.
type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDegraded:
		return "degraded"
	default:
		return "uninitialized"
	}
}

// Fixed caller-facing messages for the two failure shapes.
const (
	degradedMessage = "Error in AI model. Please consult with a healthcare professional directly."
	failureMessage  = "An error occurred during assessment. Please consult with a healthcare professional."
)

// Config holds the engine's tunables. Zero values select defaults.
type Config struct {
	LexiconPath         string  // optional linguistic lexicon; empty disables it
	MaxFeatures         int     // vocabulary cap, default vectorizer.DefaultMaxFeatures
	ConfidenceThreshold float64 // disclaimer gate, default recommend.DefaultThreshold
	SmoothingAlpha      float64 // additive smoothing, default classifier.DefaultAlpha

	// Corpus overrides the embedded training data. Intended for tests.
	Corpus []model.TrainingExample
}

// Engine owns the trained model. Training runs at most once, on first need;
// after that the model is read-only and Assess is safe for any number of
// concurrent callers.
type Engine struct {
	cfg  Config
	norm *normalizer.Normalizer

	once  sync.Once
	state atomic.Int32
	vec   *vectorizer.Vectorizer
	cls   *classifier.Classifier
}

// New creates an Engine. Training is deferred until Init or the first
// Assess call.
func New(cfg Config) *Engine {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = recommend.DefaultThreshold
	}
	return &Engine{
		cfg:  cfg,
		norm: normalizer.New(cfg.LexiconPath),
	}
}

// Init trains the model if it has not been trained yet. Idempotent; safe to
// call from concurrent callers; exactly one training run happens. Callers
// that want Degraded logged at startup rather than on first request call
// this eagerly.
func (e *Engine) Init() State {
	e.once.Do(e.train)
	return State(e.state.Load())
}

// State reports the current lifecycle state without triggering training.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Assess maps free-text symptoms to a severity, recommendation, and
// confidence. Total: it never panics and never returns an error, and every
// failure path yields the Unknown/zero-confidence result.
func (e *Engine) Assess(text string) model.Assessment {
	if e.Init() != StateReady {
		return model.Assessment{
			Severity:       model.SeverityUnknown,
			Recommendation: degradedMessage,
			Confidence:     0,
		}
	}

	normalized := e.norm.Normalize(text)

	vec, err := e.vec.Transform(normalized)
	if err != nil {
		slog.Error("triage: vectorization failed", "error", err)
		return failureResult()
	}

	severity, probs, err := e.cls.Predict(vec)
	if err != nil {
		slog.Error("triage: classification failed", "error", err)
		return failureResult()
	}

	confidence := 0.0
	for _, p := range probs {
		if p > confidence {
			confidence = p
		}
	}

	return model.Assessment{
		Severity:       severity,
		Recommendation: recommend.For(severity, confidence, e.cfg.ConfidenceThreshold),
		Confidence:     confidence,
	}
}

// train runs the full fit pipeline over the corpus. Any failure leaves the
// engine permanently Degraded; nothing is retried in-process.
func (e *Engine) train() {
	examples := e.cfg.Corpus
	if examples == nil {
		examples = corpus.Examples()
	}
	if len(examples) == 0 {
		slog.Error("triage: no training examples, entering degraded mode")
		e.state.Store(int32(StateDegraded))
		return
	}

	docs := make([]string, len(examples))
	labels := make([]model.Severity, len(examples))
	for i, ex := range examples {
		docs[i] = e.norm.Normalize(ex.Text)
		labels[i] = ex.Severity
	}

	vec := vectorizer.New(e.cfg.MaxFeatures)
	if err := vec.Fit(docs); err != nil {
		slog.Error("triage: training failed, entering degraded mode", "error", err)
		e.state.Store(int32(StateDegraded))
		return
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		v, err := vec.Transform(doc)
		if err != nil {
			slog.Error("triage: training failed, entering degraded mode", "error", err)
			e.state.Store(int32(StateDegraded))
			return
		}
		vectors[i] = v
	}

	cls := classifier.New(e.cfg.SmoothingAlpha)
	if err := cls.Fit(vectors, labels); err != nil {
		slog.Error("triage: training failed, entering degraded mode", "error", err)
		e.state.Store(int32(StateDegraded))
		return
	}

	e.vec = vec
	e.cls = cls
	e.state.Store(int32(StateReady))
	slog.Info("triage: model trained",
		"examples", len(examples),
		"features", vec.NumFeatures(),
		"classes", len(cls.Classes()))
}

func failureResult() model.Assessment {
	return model.Assessment{
		Severity:       model.SeverityUnknown,
		Recommendation: failureMessage,
		Confidence:     0,
	}
}
