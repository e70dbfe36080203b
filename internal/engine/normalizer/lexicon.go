package normalizer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// lexicon holds the optional linguistic annotations: a stopword set and a
// lemma dictionary mapping inflected forms to their base forms.
type lexicon struct {
	stopwords map[string]bool
	lemmas    map[string]string
}

// loadLexicon reads a line-oriented lexicon file. Each non-blank,
// non-comment line is a directive:
//
//	stop <word>
//	lemma <form> <base>
//
// Unknown directives and malformed lines are errors so a corrupt file is
// rejected as a whole rather than half-applied.
func loadLexicon(path string) (*lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer f.Close()

	lex := &lexicon{
		stopwords: make(map[string]bool),
		lemmas:    make(map[string]string),
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "stop":
			if len(fields) != 2 {
				return nil, fmt.Errorf("lexicon: line %d: stop takes one word", lineNo)
			}
			lex.stopwords[fields[1]] = true
		case "lemma":
			if len(fields) != 3 {
				return nil, fmt.Errorf("lexicon: line %d: lemma takes form and base", lineNo)
			}
			lex.lemmas[fields[1]] = fields[2]
		default:
			return nil, fmt.Errorf("lexicon: line %d: unknown directive %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read error: %w", err)
	}
	if len(lex.stopwords) == 0 && len(lex.lemmas) == 0 {
		return nil, fmt.Errorf("lexicon: file is empty: %s", path)
	}

	return lex, nil
}

// isStopword reports whether the token should be discarded.
func (l *lexicon) isStopword(token string) bool {
	return l.stopwords[token]
}

// lemma returns the base form of the token, or the token itself when the
// dictionary has no entry for it.
func (l *lexicon) lemma(token string) string {
	if base, ok := l.lemmas[token]; ok {
		return base
	}
	return token
}
