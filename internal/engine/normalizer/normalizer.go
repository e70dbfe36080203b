// Package normalizer turns raw symptom text into a canonical token sequence
// for feature extraction. When the clinical lexicon is available it drops
// stopwords and reduces tokens to base forms; otherwise it falls back to a
// plain regex cleanup. Both paths produce a lower-cased string of
// space-separated tokens, so callers never need to know which path ran.
package normalizer

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	wordRE    = regexp.MustCompile(`\w+`)
	nonWordRE = regexp.MustCompile(`[^\w\s]+`)
)

// Normalizer canonicalizes free text. The zero value is not usable; create
// instances with New. Safe for concurrent use once constructed.
type Normalizer struct {
	lexiconPath string

	once sync.Once
	lex  *lexicon // nil when the lexicon is unavailable
}

// New creates a Normalizer that will try to load the lexicon at the given
// path on first use. An empty path disables the lexicon entirely.
func New(lexiconPath string) *Normalizer {
	return &Normalizer{lexiconPath: lexiconPath}
}

// Normalize canonicalizes text into space-separated lower-case tokens.
// Total: it never fails, and an empty input yields an empty string.
func (n *Normalizer) Normalize(text string) string {
	n.once.Do(n.loadLexicon)

	text = stripAccents(strings.ToLower(text))
	if n.lex != nil {
		return n.annotate(text)
	}
	return fallback(text)
}

// loadLexicon runs at most once per Normalizer. Failure is logged and
// degrades silently to the regex path.
func (n *Normalizer) loadLexicon() {
	if n.lexiconPath == "" {
		return
	}
	lex, err := loadLexicon(n.lexiconPath)
	if err != nil {
		slog.Warn("normalizer: lexicon unavailable, using regex fallback",
			"path", n.lexiconPath, "error", err)
		return
	}
	n.lex = lex
}

// annotate tokenizes, discards stopwords, and maps tokens to their lemmas.
// Punctuation never matches the word pattern, so it is dropped implicitly.
func (n *Normalizer) annotate(text string) string {
	var out []string
	for _, token := range wordRE.FindAllString(text, -1) {
		if n.lex.isStopword(token) {
			continue
		}
		out = append(out, n.lex.lemma(token))
	}
	return strings.Join(out, " ")
}

// fallback strips every rune that is not a word character or whitespace and
// rejoins the remaining words with single spaces.
func fallback(text string) string {
	text = nonWordRE.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// stripAccents removes combining diacritical marks after NFD normalization,
// so "fiévre" and "fievre" normalize identically.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
