package analyze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmoji(t *testing.T) {
	engine := NewEngine(wordRecords(
		"good morning 😂😂",
		"nice 👍 really nice 😂",
	))

	emojis := engine.Emoji("")
	require.Equal(t, []KV{{"😂", 3}, {"👍", 1}}, emojis)
}

func TestEmojiNoneFound(t *testing.T) {
	engine := NewEngine(wordRecords("plain text only"))
	require.Empty(t, engine.Emoji(""))
}

func TestEmojiPerSpeaker(t *testing.T) {
	records := wordRecords("😂")
	records = append(records, rec("Jane", "👍", records[0].Timestamp))
	engine := NewEngine(records)

	require.Equal(t, []KV{{"👍", 1}}, engine.Emoji("Jane"))
}
