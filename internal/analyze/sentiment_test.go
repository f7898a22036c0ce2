package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chatlens/chatlens/internal/transcript"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"positive", "I love this, it is wonderful and great", Positive},
		{"negative", "I hate this, it is terrible and awful", Negative},
		{"neutral", "the meeting starts at noon", Neutral},
		{"empty", "", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.body, DefaultThreshold); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	body := "what a great day, I love it"
	first := Classify(body, DefaultThreshold)
	for i := 0; i < 5; i++ {
		if got := Classify(body, DefaultThreshold); got != first {
			t.Fatalf("Classify is not deterministic: %q then %q", first, got)
		}
	}
}

func TestSentimentDistribution(t *testing.T) {
	base := time.Date(2023, 12, 25, 10, 30, 0, 0, time.Local)
	records := []transcript.Record{
		rec("John", "x", base),
		rec("John", "y", base.Add(time.Minute)),
		rec("Jane", "z", base.Add(2*time.Minute)),
		rec(transcript.Notification, "John added Mike", base.Add(3*time.Minute)),
	}
	records[0].Sentiment = Positive
	records[1].Sentiment = Negative
	records[2].Sentiment = Positive

	engine := NewEngine(records)
	shares := engine.Sentiment("")
	require.Len(t, shares, 3)

	byLabel := map[string]SentimentShare{}
	sum := 0.0
	for _, s := range shares {
		byLabel[s.Label] = s
		sum += s.Percent
	}
	require.Equal(t, 2, byLabel[Positive].Count)
	require.Equal(t, 1, byLabel[Negative].Count)
	require.Equal(t, 0, byLabel[Neutral].Count)
	require.InDelta(t, 100.0, sum, 0.01)

	// narrowed to one speaker
	jane := engine.Sentiment("Jane")
	require.Equal(t, 1, jane[0].Count)
	require.Equal(t, Positive, jane[0].Label)
}

func TestSentimentLabelsOnTheFly(t *testing.T) {
	base := time.Date(2023, 12, 25, 10, 30, 0, 0, time.Local)
	// records normalized without a classifier carry no label
	engine := NewEngine([]transcript.Record{
		rec("John", "I love this so much", base),
	})
	shares := engine.Sentiment("")
	byLabel := map[string]int{}
	for _, s := range shares {
		byLabel[s.Label] = s.Count
	}
	require.Equal(t, 1, byLabel[Positive])
}

func TestNewClassifier(t *testing.T) {
	classify := NewClassifier(DefaultThreshold)
	require.Equal(t, Classify("I love it", DefaultThreshold), classify("I love it"))
}
