package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/solidstreak/streak-cli/internal/colors"
	"github.com/solidstreak/streak-cli/internal/i18n"
	"github.com/solidstreak/streak-cli/internal/store"
	"github.com/solidstreak/streak-cli/internal/utils"
)

// heatLevels is the number of non-empty shades in the heatmap. Shades are
// interpolated between the palette's 200 and 800 stops.
const heatLevels = 4

var heatEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

var heatDayLabels = [7]string{"Mon", "", "Wed", "", "Fri", "", ""}

// Heatmap renders the calendar heatmap for the given per-day counts, one
// column per week ending with the current week.
func Heatmap(activities []store.Activity, weeks int, c colors.Color, lang string) string {
	counts := make(map[string]int, len(activities))
	for _, a := range activities {
		counts[a.Date] = a.Count
	}
	return renderHeatmap(counts, time.Now(), weeks, c, lang)
}

func renderHeatmap(counts map[string]int, end time.Time, weeks int, c colors.Color, lang string) string {
	if weeks < 1 {
		weeks = 1
	}

	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}

	shades := colors.GenerateGradient(c.Hex200, c.Hex800, heatLevels)
	styles := make([]lipgloss.Style, len(shades))
	for i, hex := range shades {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	// Align columns to calendar weeks: the last column is the week that
	// contains end, padded with blanks after end itself.
	weekday := (int(end.Weekday()) + 6) % 7 // Monday = 0
	start := end.AddDate(0, 0, -weekday-(weeks-1)*7)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(i18n.T(lang, "heatmap.title"), weeks))
	b.WriteString("\n")

	for row := 0; row < 7; row++ {
		b.WriteString(fmt.Sprintf("%-4s", heatDayLabels[row]))
		for col := 0; col < weeks; col++ {
			day := start.AddDate(0, 0, col*7+row)
			if utils.IsAfterDay(day, end) {
				b.WriteString("  ")
				continue
			}
			level := levelFor(counts[utils.DateToLocalString(day)], max)
			if level == 0 {
				b.WriteString(heatEmptyStyle.Render("·") + " ")
			} else {
				b.WriteString(styles[level-1].Render("■") + " ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("    " + i18n.T(lang, "heatmap.less") + " ")
	b.WriteString(heatEmptyStyle.Render("·") + " ")
	for _, s := range styles {
		b.WriteString(s.Render("■") + " ")
	}
	b.WriteString(i18n.T(lang, "heatmap.more"))
	return b.String()
}

// levelFor buckets a day's count into 0..heatLevels relative to the
// busiest day in range.
func levelFor(count, max int) int {
	if count <= 0 || max <= 0 {
		return 0
	}
	level := (count*heatLevels + max - 1) / max
	if level > heatLevels {
		level = heatLevels
	}
	if level < 1 {
		level = 1
	}
	return level
}
