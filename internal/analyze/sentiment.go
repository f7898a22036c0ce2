package analyze

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/chatlens/chatlens/internal/transcript"
)

// Sentiment labels.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

// DefaultThreshold is the dead-zone around a zero compound score inside
// which a message counts as neutral.
const DefaultThreshold = 0.05

// SentimentShare is one label of the sentiment distribution.
type SentimentShare struct {
	Label   string
	Count   int
	Percent float64
}

// Classify maps a message body onto one of the three sentiment labels
// using the VADER polarity lexicon. It is a pure function: the same body
// always yields the same label.
func Classify(body string, threshold float64) string {
	score := sentitext.PolarityScore(sentitext.Parse(body, lexicon.DefaultLexicon)).Compound
	switch {
	case score > threshold:
		return Positive
	case score < -threshold:
		return Negative
	default:
		return Neutral
	}
}

// Sentiment aggregates per-record labels into a distribution over the
// narrowed set. Records normalized without a classifier are labeled here
// on the fly; the record set itself is never written to.
func (e *Engine) Sentiment(speaker string) []SentimentShare {
	counts := map[string]int{}
	total := 0
	for _, r := range e.narrow(speaker) {
		label := r.Sentiment
		if label == "" {
			label = Classify(r.Body, e.threshold)
		}
		counts[label]++
		total++
	}
	if total == 0 {
		return nil
	}

	shares := make([]SentimentShare, 0, 3)
	for _, label := range []string{Positive, Negative, Neutral} {
		c := counts[label]
		shares = append(shares, SentimentShare{
			Label:   label,
			Count:   c,
			Percent: float64(c) / float64(total) * 100,
		})
	}
	return shares
}

// NewClassifier returns a transcript.Classifier bound to a threshold,
// for labeling records at construction time.
func NewClassifier(threshold float64) transcript.Classifier {
	return func(body string) string { return Classify(body, threshold) }
}
