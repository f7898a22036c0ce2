package transcript

import "time"

// Notification is the sentinel speaker assigned to system/service lines
// (group events, media-omitted notices) instead of a real author.
const Notification = "group_notification"

// Entry is one raw message boundary found in a transcript: the matched
// timestamp text plus the segment that followed it, split into speaker
// and body. Speaker is Notification for service lines.
type Entry struct {
	TimestampText string
	Speaker       string
	Body          string
}

// Record is a normalized message with a resolved timestamp and derived
// calendar fields. A record set is built once per transcript and never
// mutated afterwards; aggregations only filter and group it.
type Record struct {
	Speaker   string
	Body      string
	Timestamp time.Time
	Date      time.Time // midnight of Timestamp's day
	Year      int
	MonthNum  int
	Month     string
	Day       int
	DayName   string
	Hour      int
	Minute    int
	Period    string // hour bucket, e.g. "09-10"; hour 23 wraps to "23-00"
	Sentiment string // "positive", "negative" or "neutral"
}
