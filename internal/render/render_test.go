package render

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	out := Table([]string{"Name", "Count"}, [][]string{
		{"John", "2"},
		{"Jane", "1"},
	})
	for _, want := range []string{"Name", "Count", "John", "Jane"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("Table output has %d lines, want 3", got)
	}
}

func TestBars(t *testing.T) {
	out := Bars([]string{"Monday", "Tuesday"}, []int{4, 2}, 8)
	if !strings.Contains(out, "4") || !strings.Contains(out, "2") {
		t.Errorf("Bars output missing counts: %q", out)
	}
	if !strings.Contains(out, "████████") {
		t.Errorf("largest bar should fill the width: %q", out)
	}
}

func TestBarsMinimumVisible(t *testing.T) {
	// a tiny nonzero count still gets one cell
	out := Bars([]string{"a", "b"}, []int{1000, 1}, 10)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.Contains(line, "█") {
			t.Errorf("bar row without any bar: %q", line)
		}
	}
}

func TestBarsEmpty(t *testing.T) {
	if out := Bars(nil, nil, 10); out != "" {
		t.Errorf("Bars(nil) = %q, want empty", out)
	}
}

func TestHeatGrid(t *testing.T) {
	out := HeatGrid(
		[]string{"Monday", "Tuesday"},
		[]string{"00-01", "01-02"},
		[][]int{{0, 3}, {1, 0}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("HeatGrid has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[1], "Monday") || !strings.Contains(lines[1], "3") {
		t.Errorf("row 1 = %q, want Monday with count 3", lines[1])
	}
}
