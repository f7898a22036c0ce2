package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/chatlens/chatlens/internal/analyze"
	"github.com/chatlens/chatlens/internal/render"
)

// barWidth sizes bar charts to half the terminal, falling back to a
// fixed width when stdout is a pipe.
func barWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 80 {
			return w / 2
		}
	}
	return 40
}

func printBasic(e *analyze.Engine, speaker string) {
	stats := e.Stats(speaker)
	rows := [][]string{
		{"Messages", strconv.Itoa(stats.Messages)},
		{"Words", strconv.Itoa(stats.Words)},
		{"Media shared", strconv.Itoa(stats.Media)},
		{"Links shared", strconv.Itoa(stats.Links)},
	}
	if speaker == "" {
		rows = append(rows, []string{"Notifications", strconv.Itoa(stats.Notifications)})
	}
	fmt.Println(render.Title("Basic Statistics"))
	fmt.Println(render.Table([]string{"Metric", "Value"}, rows))
}

func printBusiest(e *analyze.Engine) {
	top, shares := e.BusiestSpeakers()
	if len(top) == 0 {
		return
	}
	labels := make([]string, len(top))
	counts := make([]int, len(top))
	for i, kv := range top {
		labels[i] = kv.Key
		counts[i] = kv.Count
	}
	fmt.Println(render.Title("Most Active Speakers"))
	fmt.Println(render.Bars(labels, counts, barWidth()))

	rows := make([][]string, len(shares))
	for i, s := range shares {
		rows[i] = []string{s.Speaker, fmt.Sprintf("%.1f%%", s.Percent)}
	}
	fmt.Println(render.Table([]string{"Speaker", "Share"}, rows))
}

func printTimeline(e *analyze.Engine, speaker string) {
	monthly := e.MonthlyTimeline(speaker)
	fmt.Println(render.Title("Monthly Timeline"))
	if len(monthly) == 0 {
		fmt.Println("No data for monthly timeline.")
	} else {
		labels := make([]string, len(monthly))
		counts := make([]int, len(monthly))
		for i, p := range monthly {
			labels[i] = p.Label
			counts[i] = p.Count
		}
		fmt.Println(render.Bars(labels, counts, barWidth()))
	}

	daily := e.DailyTimeline(speaker)
	fmt.Println(render.Title("Daily Timeline"))
	if len(daily) == 0 {
		fmt.Println("No data for daily timeline.")
		return
	}
	peak := daily[0]
	for _, p := range daily {
		if p.Count > peak.Count {
			peak = p
		}
	}
	fmt.Printf("%d active days from %s to %s; busiest %s (%d messages)\n\n",
		len(daily),
		daily[0].Date.Format("2006-01-02"),
		daily[len(daily)-1].Date.Format("2006-01-02"),
		peak.Date.Format("2006-01-02"),
		peak.Count,
	)
}

func printActivity(e *analyze.Engine, speaker string) {
	byDay := e.WeekdayActivity(speaker)
	fmt.Println(render.Title("Activity by Weekday"))
	if len(byDay) == 0 {
		fmt.Println("No activity data.")
	} else {
		fmt.Println(render.Bars(keys(byDay), values(byDay), barWidth()))
	}

	byMonth := e.MonthActivity(speaker)
	fmt.Println(render.Title("Activity by Month"))
	if len(byMonth) == 0 {
		fmt.Println("No activity data.")
	} else {
		fmt.Println(render.Bars(keys(byMonth), values(byMonth), barWidth()))
	}

	h := e.ActivityHeatmap(speaker)
	cells := make([][]int, len(h.Cells))
	for i := range h.Cells {
		cells[i] = h.Cells[i][:]
	}
	fmt.Println(render.Title("Weekly Activity Heatmap"))
	fmt.Println(render.HeatGrid(h.Days[:], h.Buckets[:], cells))
}

func printWords(e *analyze.Engine, speaker string) {
	fmt.Println(render.Title("Most Common Words"))
	words, ok := e.CommonWords(speaker)
	if !ok {
		fmt.Println("No words to count.")
		return
	}
	fmt.Println(render.Bars(keys(words), values(words), barWidth()))
}

func printEmoji(e *analyze.Engine, speaker string) {
	fmt.Println(render.Title("Emoji"))
	emojis := e.Emoji(speaker)
	if len(emojis) == 0 {
		fmt.Println("No emoji found.")
		return
	}
	rows := make([][]string, 0, len(emojis))
	for _, kv := range emojis {
		rows = append(rows, []string{kv.Key, strconv.Itoa(kv.Count)})
	}
	fmt.Println(render.Table([]string{"Emoji", "Count"}, rows))
}

func printSentiment(e *analyze.Engine, speaker string) {
	fmt.Println(render.Title("Sentiment"))
	shares := e.Sentiment(speaker)
	if len(shares) == 0 {
		fmt.Println("No messages to classify.")
		return
	}
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{s.Label, strconv.Itoa(s.Count), fmt.Sprintf("%.1f%%", s.Percent)})
	}
	fmt.Println(render.Table([]string{"Sentiment", "Count", "Share"}, rows))
}

func keys(kvs []analyze.KV) []string {
	out := make([]string, len(kvs))
	for i, kv := range kvs {
		out[i] = kv.Key
	}
	return out
}

func values(kvs []analyze.KV) []int {
	out := make([]int, len(kvs))
	for i, kv := range kvs {
		out[i] = kv.Count
	}
	return out
}
