package transcript

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog/log"
)

// layouts cover every timestamp signature the extractor recognizes,
// tried in order once permissive inference has failed. Day-first comes
// before month-first, matching the manual format order of the exports
// this tool sees most.
var layouts = []string{
	"2/1/2006, 15:04",
	"2/1/06, 15:04",
	"1/2/2006, 3:04 PM",
	"1/2/06, 3:04 PM",
	"2/1/2006, 3:04 PM",
	"2/1/06, 3:04 PM",
	"2.1.2006, 15:04",
	"2.1.06, 15:04",
	"2006-1-2, 15:04",
	"2/1/2006, 15:04:05",
	"2/1/06, 15:04:05",
}

// Classifier assigns a sentiment label to a message body. It must be a
// pure function of the body text: records carry their label from
// construction so aggregations stay read-only.
type Classifier func(body string) string

// Normalizer resolves entry timestamps and derives calendar fields.
// Location and Layouts are explicit so resolution never depends on
// ambient process state.
type Normalizer struct {
	Location *time.Location
	Layouts  []string
	Classify Classifier
}

func NewNormalizer(classify Classifier) *Normalizer {
	return &Normalizer{
		Location: time.Local,
		Layouts:  layouts,
		Classify: classify,
	}
}

// Normalize converts entries into the record set, preserving document
// order. Entries whose timestamp cannot be resolved by any strategy, or
// whose body trims to nothing, are dropped. An empty result is a normal
// outcome ("no analyzable data"), never an error.
func (n *Normalizer) Normalize(entries []Entry) []Record {
	records := make([]Record, 0, len(entries))
	dropped := 0

	for _, en := range entries {
		ts, ok := n.resolve(en.TimestampText)
		if !ok {
			dropped++
			continue
		}
		if strings.TrimSpace(en.Body) == "" {
			dropped++
			continue
		}

		rec := Record{
			Speaker:   en.Speaker,
			Body:      en.Body,
			Timestamp: ts,
			Date:      time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()),
			Year:      ts.Year(),
			MonthNum:  int(ts.Month()),
			Month:     ts.Month().String(),
			Day:       ts.Day(),
			DayName:   ts.Weekday().String(),
			Hour:      ts.Hour(),
			Minute:    ts.Minute(),
			Period:    HourBucket(ts.Hour()),
		}
		if n.Classify != nil {
			rec.Sentiment = n.Classify(rec.Body)
		}
		records = append(records, rec)
	}

	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("kept", len(records)).Msg("entries dropped during normalization")
	}
	return records
}

// resolve turns timestamp text into a concrete time. Strategy (a) is
// permissive inference via dateparse; strategy (b) walks the explicit
// layout list.
func (n *Normalizer) resolve(s string) (time.Time, bool) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	loc := n.Location
	if loc == nil {
		loc = time.Local
	}

	if t, err := dateparse.ParseIn(s, loc); err == nil {
		return t, true
	}

	// meridiem markers may be lowercase in exports; layouts use "PM"
	up := strings.ToUpper(s)
	for _, layout := range n.Layouts {
		if t, err := time.ParseInLocation(layout, up, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HourBucket labels the one-hour slot a given hour falls in. Hour 23
// wraps to "23-00".
func HourBucket(hour int) string {
	if hour == 23 {
		return "23-00"
	}
	return fmt.Sprintf("%02d-%02d", hour, hour+1)
}
