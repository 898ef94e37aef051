// Text analysis turns raw document or query text into the stemmed terms
// that the dictionary and postings files are keyed on. The same pipeline
// runs on both sides of the index so a query leaf and an indexed document
// term land on an identical string: split on word boundaries, fold case,
// drop anything shorter than MinTokenLength, then stem.
//
// Stopword removal is wired into the pipeline but left off by default:
// this corpus's query vocabulary includes short, common-looking proper
// nouns ("bill", "gates") that an English stopword list would otherwise
// silently swallow, turning a real term into an unknown one.
package boolidx

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// AnalyzerConfig controls which stages of Analyze run.
type AnalyzerConfig struct {
	MinTokenLength  int
	EnableStemming  bool
	EnableStopwords bool
}

// DefaultConfig is the configuration shared by the indexer and the query
// parser: stemming on, stopwords off (see package comment), no minimum
// token length beyond "non-empty".
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MinTokenLength:  1,
		EnableStemming:  true,
		EnableStopwords: false,
	}
}

// Analyze runs DefaultConfig. It is the single entry point shared by the
// indexer and the query tokenizer.
func Analyze(text string) []string {
	return AnalyzeWithConfig(text, DefaultConfig())
}

// AnalyzeWithConfig splits text into words, then filters and normalizes
// each one in a single pass: lowercase, optionally drop stopwords, drop
// anything under MinTokenLength, optionally stem what's left.
func AnalyzeWithConfig(text string, config AnalyzerConfig) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)

		if config.EnableStopwords && stopwords[w] {
			continue
		}
		if len(w) < config.MinTokenLength {
			continue
		}
		if config.EnableStemming {
			w = snowballeng.Stem(w, false)
		}
		out = append(out, w)
	}
	return out
}

// stopwords is a small curated set of connective words worth dropping when
// EnableStopwords is on. It deliberately doesn't chase completeness: the
// full stock English list includes entries ("bill", "fire", "part") that
// collide with ordinary search terms, which is exactly the failure mode
// this package's default configuration avoids.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "of": true, "for": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "as": true, "by": true, "with": true,
}
