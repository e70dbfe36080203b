package triage

type options struct {
	lexiconPath         string
	maxFeatures         int
	confidenceThreshold float64
	smoothingAlpha      float64
}

// Option configures a Triage instance.
type Option func(*options)

// WithLexiconPath sets the path to the clinical lexicon file used for
// stopword removal and lemmatization. A missing or unreadable file is not an
// error: normalization falls back to a plain regex cleanup.
func WithLexiconPath(path string) Option {
	return func(o *options) {
		o.lexiconPath = path
	}
}

// WithMaxFeatures caps the TF-IDF vocabulary size. Default: 1000.
func WithMaxFeatures(n int) Option {
	return func(o *options) {
		o.maxFeatures = n
	}
}

// WithConfidenceThreshold sets the confidence below which recommendations
// carry a verification disclaimer. Default: 0.6.
func WithConfidenceThreshold(t float64) Option {
	return func(o *options) {
		o.confidenceThreshold = t
	}
}

// WithSmoothingAlpha sets the classifier's additive smoothing constant.
// Default: 1.0.
func WithSmoothingAlpha(a float64) Option {
	return func(o *options) {
		o.smoothingAlpha = a
	}
}

func defaultOptions() options {
	return options{
		lexiconPath: "data/lexicon.txt",
	}
}
