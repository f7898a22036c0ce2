package analyze

import (
	_ "embed"
	"sort"
	"strings"
)

//go:embed stopwords_en.txt
var stopwordsEN string

// DefaultStopwords returns the embedded English stopword set. Config can
// swap in a different list via WithStopwords.
func DefaultStopwords() map[string]struct{} {
	return ParseStopwords(stopwordsEN)
}

// ParseStopwords reads one lowercase token per line; blank lines and
// lines starting with # are skipped.
func ParseStopwords(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// CommonWords tokenizes the narrowed, non-media bodies on whitespace,
// case-folds, drops stopwords and media-placeholder tokens, and returns
// the top tokens by count (ties by first appearance). ok is false when
// nothing survives filtering, so callers can tell "no data" apart from a
// valid table.
func (e *Engine) CommonWords(speaker string) (words []KV, ok bool) {
	mediaTokens := make(map[string]struct{})
	for _, t := range strings.Fields(strings.ToLower(e.media)) {
		mediaTokens[t] = struct{}{}
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range e.narrow(speaker) {
		if strings.TrimSpace(r.Body) == e.media {
			continue
		}
		for _, tok := range strings.Fields(r.Body) {
			tok = strings.ToLower(tok)
			if _, stop := e.stop[tok]; stop {
				continue
			}
			if _, media := mediaTokens[tok]; media {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}
	if len(order) == 0 {
		return nil, false
	}

	words = make([]KV, 0, len(order))
	for _, tok := range order {
		words = append(words, KV{Key: tok, Count: counts[tok]})
	}
	sort.SliceStable(words, func(i, j int) bool { return words[i].Count > words[j].Count })
	if len(words) > e.topWords {
		words = words[:e.topWords]
	}
	return words, true
}
