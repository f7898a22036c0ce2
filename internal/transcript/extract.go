package transcript

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// signature is one candidate timestamp convention. Candidates are tried
// in a fixed priority order and the first one that matches anywhere in
// the transcript wins for the whole document; results from different
// candidates are never merged.
type signature struct {
	name string
	re   *regexp.Regexp
}

var signatures = []signature{
	{"day-first 24h", regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4},\s*\d{1,2}:\d{2})\s*-\s*`)},
	{"day-first 12h", regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4},\s*\d{1,2}:\d{2}\s*[APap][Mm])\s*-\s*`)},
	{"month-first 12h", regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4},\s*\d{1,2}:\d{2}\s*[APap][Mm])\s*-\s*`)},
	{"dotted", regexp.MustCompile(`(\d{1,2}\.\d{1,2}\.\d{2,4},\s*\d{1,2}:\d{2})\s*-\s*`)},
	{"iso", regexp.MustCompile(`(\d{4}-\d{1,2}-\d{1,2},\s*\d{1,2}:\d{2})\s*-\s*`)},
	{"bracketed seconds", regexp.MustCompile(`\[(\d{1,2}/\d{1,2}/\d{2,4},\s*\d{1,2}:\d{2}:\d{2})\]\s*`)},
}

// separators are the speaker/body split conventions, tried per segment.
// Precedence is colon, dash, angle-bracket. A segment containing both a
// colon and a dash always splits on the colon, which can misattribute
// on unusual exports; reorder here if a corpus needs it.
var separators = []*regexp.Regexp{
	regexp.MustCompile(`(?s)^([^:]+):\s*(.*)$`),
	regexp.MustCompile(`(?s)^([^-]+)-\s*(.*)$`),
	regexp.MustCompile(`(?s)^([^>]+)>\s*(.*)$`),
}

// defaultServicePhrases mark a putative speaker as a service line when
// any of them occurs in it (case-insensitive). The list covers the
// English-locale export; other locales extend it through config.
var defaultServicePhrases = []string{
	"you created group",
	"created group",
	"added",
	"removed",
	"left",
	"joined",
	"changed the group",
	"changed this group",
	"security code changed",
	"messages to this group are secured",
	"this message was deleted",
	"you deleted this message",
	"image omitted",
	"video omitted",
	"audio omitted",
	"document omitted",
	"contact omitted",
	"location omitted",
	"sticker omitted",
	"gif omitted",
}

// Extractor finds message boundaries in raw transcript text.
type Extractor struct {
	ServicePhrases []string
}

// NewExtractor returns an Extractor using the default service-phrase
// table plus any extra phrases (already lowercased) from config.
func NewExtractor(extra ...string) *Extractor {
	phrases := make([]string, 0, len(defaultServicePhrases)+len(extra))
	phrases = append(phrases, defaultServicePhrases...)
	phrases = append(phrases, extra...)
	return &Extractor{ServicePhrases: phrases}
}

// Extract splits raw transcript text into entries in document order.
// It returns nil when no timestamp signature matches; callers treat that
// as "no analyzable data", not an error.
func (e *Extractor) Extract(raw string) []Entry {
	for _, sig := range signatures {
		ms := sig.re.FindAllStringSubmatchIndex(raw, -1)
		if len(ms) == 0 {
			continue
		}

		log.Debug().Str("signature", sig.name).Int("matches", len(ms)).Msg("timestamp signature matched")

		entries := make([]Entry, 0, len(ms))
		for i, m := range ms {
			ts := raw[m[2]:m[3]]
			// body segment runs from the end of this match to the start
			// of the next; the text before the first match is discarded
			end := len(raw)
			if i+1 < len(ms) {
				end = ms[i+1][0]
			}
			segment := strings.TrimSpace(raw[m[1]:end])
			speaker, body := e.splitSpeaker(segment)
			entries = append(entries, Entry{TimestampText: ts, Speaker: speaker, Body: body})
		}
		return entries
	}
	return nil
}

// splitSpeaker separates a segment into speaker and body using the first
// matching separator convention. Segments whose speaker portion looks
// like a service notice, and segments no convention matches, keep the
// whole segment as body under the Notification sentinel.
func (e *Extractor) splitSpeaker(segment string) (speaker, body string) {
	for _, sep := range separators {
		m := sep.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		speaker = strings.TrimSpace(m[1])
		if e.isServiceLine(speaker) {
			return Notification, segment
		}
		return speaker, strings.TrimSpace(m[2])
	}
	return Notification, segment
}

func (e *Extractor) isServiceLine(speaker string) bool {
	lower := strings.ToLower(speaker)
	for _, phrase := range e.ServicePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
