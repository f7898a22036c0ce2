package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Title formats a section heading.
func Title(s string) string {
	return styleTitle.Render("== " + s + " ==")
}

// Table lays out rows under a header, padding columns by display width
// so emoji and CJK cells align.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styleHeader.Render(runewidth.FillRight(h, widths[i])))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i < len(widths) {
				cell = runewidth.FillRight(cell, widths[i])
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Bars renders a horizontal bar chart, one row per label, scaled to fit
// width columns.
func Bars(labels []string, counts []int, width int) string {
	if len(labels) == 0 {
		return ""
	}
	if width <= 0 {
		width = 40
	}

	labelW := 0
	max := 0
	for i, l := range labels {
		if w := runewidth.StringWidth(l); w > labelW {
			labelW = w
		}
		if counts[i] > max {
			max = counts[i]
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for i, l := range labels {
		n := counts[i] * width / max
		if n == 0 && counts[i] > 0 {
			n = 1
		}
		b.WriteString(runewidth.FillRight(l, labelW))
		b.WriteString("  ")
		b.WriteString(styleBar.Render(strings.Repeat("█", n)))
		b.WriteString(fmt.Sprintf(" %d\n", counts[i]))
	}
	return b.String()
}

// HeatGrid renders a labeled matrix with cells colored by intensity
// relative to the grid maximum.
func HeatGrid(rowLabels, colLabels []string, cells [][]int) string {
	rowW := 0
	for _, l := range rowLabels {
		if w := runewidth.StringWidth(l); w > rowW {
			rowW = w
		}
	}
	colW := 0
	for _, l := range colLabels {
		if w := runewidth.StringWidth(l); w > colW {
			colW = w
		}
	}

	max := 0
	for _, row := range cells {
		for _, c := range row {
			if c > max {
				max = c
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowW))
	for _, l := range colLabels {
		b.WriteString(" ")
		b.WriteString(styleHeader.Render(runewidth.FillLeft(l, colW)))
	}
	b.WriteString("\n")

	for i, row := range cells {
		label := ""
		if i < len(rowLabels) {
			label = rowLabels[i]
		}
		b.WriteString(runewidth.FillRight(label, rowW))
		for _, c := range row {
			b.WriteString(" ")
			b.WriteString(heatCell(c, max, colW))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func heatCell(count, max, width int) string {
	s := runewidth.FillLeft(fmt.Sprintf("%d", count), width)
	switch {
	case max == 0 || count == 0:
		return styleHeatLow.Render(s)
	case count*3 >= max*2:
		return styleHeatHigh.Render(s)
	case count*3 >= max:
		return styleHeatMid.Render(s)
	default:
		return s
	}
}
