package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chatlens/chatlens/internal/transcript"
)

func wordRecords(bodies ...string) []transcript.Record {
	base := time.Date(2023, 12, 25, 10, 30, 0, 0, time.Local)
	records := make([]transcript.Record, 0, len(bodies))
	for i, b := range bodies {
		records = append(records, rec("John", b, base.Add(time.Duration(i)*time.Minute)))
	}
	return records
}

func TestCommonWords(t *testing.T) {
	engine := NewEngine(wordRecords(
		"banana apple",
		"the apple and the cherry and banana",
	))

	words, ok := engine.CommonWords("")
	require.True(t, ok)
	// stopwords removed, ties broken by first appearance
	require.Equal(t, []KV{{"banana", 2}, {"apple", 2}, {"cherry", 1}}, words)
}

func TestCommonWordsCaseFolding(t *testing.T) {
	engine := NewEngine(wordRecords("Pizza PIZZA pizza"))
	words, ok := engine.CommonWords("")
	require.True(t, ok)
	require.Equal(t, []KV{{"pizza", 3}}, words)
}

func TestCommonWordsSkipsMedia(t *testing.T) {
	engine := NewEngine(wordRecords("<Media omitted>", "photo <Media omitted> wow"))
	words, ok := engine.CommonWords("")
	require.True(t, ok)
	// the placeholder body contributes nothing; placeholder tokens in
	// normal bodies are dropped too
	require.Equal(t, []KV{{"photo", 1}, {"wow", 1}}, words)
}

func TestCommonWordsNoData(t *testing.T) {
	tests := map[string][]transcript.Record{
		"empty_set":      nil,
		"only_stopwords": wordRecords("the and of"),
		"only_media":     wordRecords("<Media omitted>"),
	}
	for name, records := range tests {
		t.Run(name, func(t *testing.T) {
			words, ok := NewEngine(records).CommonWords("")
			require.False(t, ok)
			require.Empty(t, words)
		})
	}
}

func TestCommonWordsTopLimit(t *testing.T) {
	engine := NewEngine(wordRecords("aa bb cc dd ee"), WithTopWords(3))
	words, ok := engine.CommonWords("")
	require.True(t, ok)
	require.Len(t, words, 3)
}

func TestParseStopwords(t *testing.T) {
	set := ParseStopwords("# comment\nfoo\n\nBar\n")
	require.Len(t, set, 2)
	_, hasFoo := set["foo"]
	_, hasBar := set["bar"]
	require.True(t, hasFoo)
	require.True(t, hasBar)
}

func TestDefaultStopwords(t *testing.T) {
	set := DefaultStopwords()
	for _, w := range []string{"the", "and", "you"} {
		if _, ok := set[w]; !ok {
			t.Errorf("default stopwords missing %q", w)
		}
	}
}
