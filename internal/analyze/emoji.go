package analyze

import (
	"sort"

	"github.com/forPelevin/gomoji"
)

// Emoji counts every emoji code point occurring in the narrowed bodies,
// preserving within-body occurrence order for tie-breaking. Results are
// sorted descending by count.
func (e *Engine) Emoji(speaker string) []KV {
	counts := make(map[string]int)
	var order []string
	for _, r := range e.narrow(speaker) {
		for _, ru := range r.Body {
			s := string(ru)
			if _, err := gomoji.GetInfo(s); err != nil {
				continue
			}
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	out := make([]KV, 0, len(order))
	for _, s := range order {
		out = append(out, KV{Key: s, Count: counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
