package analyze

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/chatlens/chatlens/internal/transcript"
)

// DefaultMediaPlaceholder is the body WhatsApp substitutes when media is
// exported without attachments.
const DefaultMediaPlaceholder = "<Media omitted>"

// KV is one row of a frequency table.
type KV struct {
	Key   string
	Count int
}

// Stats are the basic counters for a narrowed record set.
type Stats struct {
	Messages      int
	Words         int
	Media         int
	Links         int
	Notifications int
}

// TimePoint is one month bucket of the monthly timeline.
type TimePoint struct {
	Label string // e.g. "December-2023"
	Year  int
	Month time.Month
	Count int
}

// DayPoint is one day of the daily timeline.
type DayPoint struct {
	Date  time.Time
	Count int
}

// Heatmap is the fixed weekday-by-hour-bucket activity matrix. Rows run
// Monday..Sunday, columns "00-01".."23-00"; cells with no activity are
// zero.
type Heatmap struct {
	Days    [7]string
	Buckets [24]string
	Cells   [7][24]int
}

// Share is one row of the speaker percentage table.
type Share struct {
	Speaker string
	Percent float64
}

// Engine computes derived statistics over an immutable record set. Every
// method takes a speaker filter ("" = all speakers), never mutates the
// records, and keeps no state between calls, so concurrent calls with
// different filters are safe.
type Engine struct {
	records     []transcript.Record
	media       string
	stop        map[string]struct{}
	threshold   float64
	topWords    int
	topSpeakers int
}

type Option func(*Engine)

func WithMediaPlaceholder(s string) Option {
	return func(e *Engine) { e.media = s }
}

func WithStopwords(set map[string]struct{}) Option {
	return func(e *Engine) { e.stop = set }
}

func WithThreshold(t float64) Option {
	return func(e *Engine) { e.threshold = t }
}

func WithTopWords(n int) Option {
	return func(e *Engine) { e.topWords = n }
}

func WithTopSpeakers(n int) Option {
	return func(e *Engine) { e.topSpeakers = n }
}

func NewEngine(records []transcript.Record, opts ...Option) *Engine {
	e := &Engine{
		records:     records,
		media:       DefaultMediaPlaceholder,
		stop:        DefaultStopwords(),
		threshold:   DefaultThreshold,
		topWords:    20,
		topSpeakers: 5,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Speakers returns the distinct non-notification speakers in first-seen
// order.
func (e *Engine) Speakers() []string {
	seen := make(map[string]struct{})
	var speakers []string
	for _, r := range e.records {
		if r.Speaker == transcript.Notification {
			continue
		}
		if _, ok := seen[r.Speaker]; ok {
			continue
		}
		seen[r.Speaker] = struct{}{}
		speakers = append(speakers, r.Speaker)
	}
	return speakers
}

// narrow applies the speaker filter and drops notification records.
// A speaker absent from the set simply yields an empty slice.
func (e *Engine) narrow(speaker string) []transcript.Record {
	out := make([]transcript.Record, 0, len(e.records))
	for _, r := range e.records {
		if r.Speaker == transcript.Notification {
			continue
		}
		if speaker != "" && r.Speaker != speaker {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Stats computes the basic counters. Notifications counts service lines
// across the whole set and is only meaningful for the all-speakers
// filter.
func (e *Engine) Stats(speaker string) Stats {
	var s Stats
	if speaker == "" {
		for _, r := range e.records {
			if r.Speaker == transcript.Notification {
				s.Notifications++
			}
		}
	}
	for _, r := range e.narrow(speaker) {
		s.Messages++
		s.Words += len(strings.Fields(r.Body))
		if strings.TrimSpace(r.Body) == e.media {
			s.Media++
		}
		s.Links += len(extractLinks(r.Body))
	}
	return s
}

// extractLinks finds URL-like substrings; a body may contribute several.
func extractLinks(body string) []string {
	var urls []string
	for _, part := range strings.Fields(body) {
		lower := strings.ToLower(part)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www.") {
			urls = append(urls, strings.TrimRight(part, ",.;!?)]}"))
		}
	}
	return urls
}

// MonthlyTimeline groups the narrowed set by (year, month), ascending.
func (e *Engine) MonthlyTimeline(speaker string) []TimePoint {
	type ym struct {
		year  int
		month time.Month
	}
	counts := make(map[ym]int)
	for _, r := range e.narrow(speaker) {
		counts[ym{r.Year, time.Month(r.MonthNum)}]++
	}

	points := make([]TimePoint, 0, len(counts))
	for k, c := range counts {
		points = append(points, TimePoint{
			Label: fmt.Sprintf("%s-%d", k.month, k.year),
			Year:  k.year,
			Month: k.month,
			Count: c,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})
	return points
}

// DailyTimeline groups the narrowed set by calendar day, ascending.
func (e *Engine) DailyTimeline(speaker string) []DayPoint {
	counts := make(map[time.Time]int)
	for _, r := range e.narrow(speaker) {
		counts[r.Date]++
	}

	points := make([]DayPoint, 0, len(counts))
	for d, c := range counts {
		points = append(points, DayPoint{Date: d, Count: c})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

var weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WeekdayActivity counts messages per weekday; days without activity are
// omitted.
func (e *Engine) WeekdayActivity(speaker string) []KV {
	counts := make(map[string]int)
	for _, r := range e.narrow(speaker) {
		counts[r.DayName]++
	}
	var out []KV
	for _, d := range weekdays {
		if c := counts[d]; c > 0 {
			out = append(out, KV{Key: d, Count: c})
		}
	}
	return out
}

// MonthActivity counts messages per month name; months without activity
// are omitted.
func (e *Engine) MonthActivity(speaker string) []KV {
	counts := make(map[string]int)
	for _, r := range e.narrow(speaker) {
		counts[r.Month]++
	}
	var out []KV
	for _, m := range months {
		if c := counts[m]; c > 0 {
			out = append(out, KV{Key: m, Count: c})
		}
	}
	return out
}

// ActivityHeatmap pivots the narrowed set into the weekday x hour-bucket
// matrix.
func (e *Engine) ActivityHeatmap(speaker string) Heatmap {
	var h Heatmap
	h.Days = weekdays
	bucketIdx := make(map[string]int, 24)
	for i := 0; i < 24; i++ {
		h.Buckets[i] = transcript.HourBucket(i)
		bucketIdx[h.Buckets[i]] = i
	}
	dayIdx := make(map[string]int, 7)
	for i, d := range weekdays {
		dayIdx[d] = i
	}

	for _, r := range e.narrow(speaker) {
		di, ok := dayIdx[r.DayName]
		if !ok {
			continue
		}
		bi, ok := bucketIdx[r.Period]
		if !ok {
			continue
		}
		h.Cells[di][bi]++
	}
	return h
}

// BusiestSpeakers ranks non-notification speakers by message count. It
// returns the top N plus a full percentage-share table over all
// speakers, rounded to one decimal. Shares sum to ~100% modulo rounding.
func (e *Engine) BusiestSpeakers() ([]KV, []Share) {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, r := range e.narrow("") {
		if _, ok := counts[r.Speaker]; !ok {
			order = append(order, r.Speaker)
		}
		counts[r.Speaker]++
		total++
	}
	if total == 0 {
		return nil, nil
	}

	ranked := make([]KV, 0, len(order))
	for _, s := range order {
		ranked = append(ranked, KV{Key: s, Count: counts[s]})
	}
	// stable keeps first-occurrence order for ties
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	top := ranked
	if len(top) > e.topSpeakers {
		top = top[:e.topSpeakers]
	}

	shares := make([]Share, 0, len(ranked))
	for _, kv := range ranked {
		pct := math.Round(float64(kv.Count)/float64(total)*1000) / 10
		shares = append(shares, Share{Speaker: kv.Key, Percent: pct})
	}
	return top, shares
}
