package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/solidstreak/streak-cli/internal/colors"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name  string
		count int
		max   int
		want  int
	}{
		{"zero count", 0, 5, 0},
		{"zero max", 3, 0, 0},
		{"negative count", -1, 5, 0},
		{"max day gets darkest shade", 8, 8, 4},
		{"single check with busy max", 1, 8, 1},
		{"midrange", 4, 8, 2},
		{"max one still darkest", 1, 1, 4},
		{"count equals levels", 2, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := levelFor(tt.count, tt.max); got != tt.want {
				t.Errorf("levelFor(%d, %d) = %d, want %d", tt.count, tt.max, got, tt.want)
			}
		})
	}
}

func TestRenderHeatmapGrid(t *testing.T) {
	// 2024-03-15 is a Friday.
	end := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	counts := map[string]int{
		"2024-03-11": 2, // Monday of the current week
		"2024-03-15": 1, // end itself
		"2024-03-04": 1, // Monday of the previous week
		"2024-03-16": 9, // after end, must not render
	}

	out := renderHeatmap(counts, end, 2, colors.Green, "en")
	lines := strings.Split(out, "\n")

	// title + 7 weekday rows + legend
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "2") {
		t.Errorf("title does not mention the week count: %q", lines[0])
	}

	// Three in-range days carry checks; the legend adds heatLevels squares.
	if got := strings.Count(out, "■"); got != 3+heatLevels {
		t.Errorf("found %d shaded cells, want %d", got, 3+heatLevels)
	}

	// Saturday and Sunday of the current week fall after end, so those rows
	// are one cell shorter than Monday's row.
	monday := lines[1]
	sunday := lines[7]
	if strings.Count(sunday, "·")+strings.Count(sunday, "■") >= strings.Count(monday, "·")+strings.Count(monday, "■") {
		t.Errorf("days after end should not be rendered:\nmon: %q\nsun: %q", monday, sunday)
	}
}

func TestHeatmapUsesPaletteGradient(t *testing.T) {
	shades := colors.GenerateGradient(colors.Green.Hex200, colors.Green.Hex800, heatLevels)
	if len(shades) != heatLevels {
		t.Fatalf("gradient yielded %d shades, want %d", len(shades), heatLevels)
	}
	if shades[0] != colors.Green.Hex200 || shades[heatLevels-1] != colors.Green.Hex800 {
		t.Errorf("gradient endpoints = %s..%s, want %s..%s",
			shades[0], shades[heatLevels-1], colors.Green.Hex200, colors.Green.Hex800)
	}
}
