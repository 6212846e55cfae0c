package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/riskdash/internal/cli"
	"github.com/theirongolddev/riskdash/internal/portfolio"
	"github.com/theirongolddev/riskdash/internal/risk"
	"github.com/theirongolddev/riskdash/internal/tui/components"
	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	d := a.portfolioData()

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	// Monthly records
	var records strings.Builder
	records.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %14s %14s %14s", "Month", "Default Rate", "Approval Rate", "Avg Score")))
	records.WriteString("\n")
	for _, r := range d.Records {
		records.WriteString(rowStyle.Render(fmt.Sprintf("%-8s %14s %14s %14s",
			truncStr(r.Month, 8),
			cli.FormatPercent(r.DefaultRate),
			cli.FormatPercent(r.ApprovalRate),
			strconv.Itoa(r.AvgRiskScore),
		)))
		records.WriteString("\n")
	}
	records.WriteString(mutedStyle.Render(fmt.Sprintf("%d months", len(d.Records))))

	// Per-series statistics
	trends := portfolio.Analyze(d.Records)
	series := performanceSeries(d)
	decimals := []int{1, 1, 0}

	var stats strings.Builder
	stats.WriteString(headerStyle.Render(fmt.Sprintf("%-16s %8s %8s %8s %8s %8s  ", "Series", "Min", "Max", "Mean", "Last", "Δ")))
	stats.WriteString(headerStyle.Render("Trend"))
	stats.WriteString("\n")
	for i, s := range trends.Series() {
		dec := decimals[i]
		stats.WriteString(rowStyle.Render(fmt.Sprintf("%-16s %8.*f %8.*f %8.1f %8.*f ",
			s.Name, dec, s.Min, dec, s.Max, s.Mean, dec, s.Last)))
		stats.WriteString(deltaStyle(s.Name, s.Delta).Render(fmt.Sprintf("%8s", cli.FormatDelta(s.Delta, dec))))
		stats.WriteString(rowStyle.Render("  "))
		stats.WriteString(components.Sparkline(series[i].Values, series[i].Color))
		stats.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Series Statistics", stats.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Monthly Performance", records.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(metricsFor(d), cw))

	return b.String()
}

// deltaStyle colors a period change: a falling default rate is good, a
// rising approval rate or score is good.
func deltaStyle(series string, delta float64) lipgloss.Style {
	t := theme.Active
	base := lipgloss.NewStyle().Background(t.Surface)
	if delta == 0 {
		return base.Foreground(t.TextMuted)
	}
	good := delta > 0
	if strings.HasPrefix(series, "Default") {
		good = !good
	}
	if good {
		return base.Foreground(t.ForAffinity(risk.AffinityGood))
	}
	return base.Foreground(t.ForAffinity(risk.AffinityDanger))
}
