package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/riskdash/internal/cli"
	"github.com/theirongolddev/riskdash/internal/portfolio"
	"github.com/theirongolddev/riskdash/internal/risk"
	"github.com/theirongolddev/riskdash/internal/tui/components"
	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// labelColumnWidth is the width of the field label column in the form.
const labelColumnWidth = 18

const resultCardTitle = "Risk Assessment Results"

// emptyResultText is shown in the result card until a score is available.
const emptyResultText = "Enter applicant information and calculate risk score"

// formCardWidth returns the outer width of the applicant form card.
func (a App) formCardWidth() int {
	cw := a.contentWidth()
	if a.isCompactLayout() {
		return cw
	}
	return cw * 2 / 5
}

func (a App) renderAssessTab(cw int) string {
	formW := a.formCardWidth()
	resultW := cw
	if !a.isCompactLayout() {
		resultW = cw - formW
	}

	formCard := a.renderFormCard(formW)
	resultCard := a.renderResultCard(resultW)

	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(formCard)
		b.WriteString("\n")
		b.WriteString(resultCard)
	} else {
		b.WriteString(components.CardRow([]string{formCard, resultCard}))
	}
	b.WriteString("\n")
	b.WriteString(renderPerformanceCard(a.portfolioData(), cw))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(metricsFor(a.portfolioData()), cw))

	return b.String()
}

func (a App) renderFormCard(outerW int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	placeholderStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	for i, f := range risk.Fields() {
		focused := a.form.cursor == i
		if focused {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(focusLabelStyle.Render(fmt.Sprintf("%-*s", labelColumnWidth, f.Label())))
			body.WriteString(a.form.inputs[i].View())
		} else {
			body.WriteString(spaceStyle.Render("  "))
			body.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelColumnWidth, f.Label())))
			if v := a.form.value(f); v != "" {
				body.WriteString(valueStyle.Render(truncStr(v, a.formInputWidth())))
			} else {
				body.WriteString(placeholderStyle.Render(f.Placeholder()))
			}
		}
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(renderButton("Calculate Risk", a.form.buttonFocused()))
	body.WriteString("\n\n")
	if a.form.focused() {
		body.WriteString(hintStyle.Render("[tab] next  [enter] confirm  [esc] done"))
	} else {
		body.WriteString(hintStyle.Render("[i] edit form  [^s] calculate  [^r] reset"))
	}

	if a.form.focused() {
		return components.AccentCard("Applicant Information", body.String(), outerW)
	}
	return components.ContentCard("Applicant Information", body.String(), outerW)
}

func renderButton(label string, focused bool) string {
	t := theme.Active
	style := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceBright).
		Padding(0, 2)
	if focused {
		style = style.Foreground(t.Background).Background(t.Accent).Bold(true)
	}
	return style.Render(label)
}

func (a App) renderResultCard(outerW int) string {
	t := theme.Active
	r := a.state.Result()

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var body strings.Builder

	if !r.Score.IsSet() {
		body.WriteString("\n")
		body.WriteString(dimStyle.Render(emptyResultText))
		body.WriteString("\n")
		if r.Err != nil {
			body.WriteString("\n")
			body.WriteString(warnStyle.Render(r.Err.Error()))
			body.WriteString("\n")
		}
		return components.ContentCard(resultCardTitle, body.String(), outerW)
	}

	levelColor := t.ForLevel(r.Level)
	scoreStyle := lipgloss.NewStyle().Foreground(levelColor).Background(t.Surface).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(t.Background).Background(levelColor).Bold(true).Padding(0, 1)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(outerW)
	const metricLabelW = 16

	body.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", metricLabelW, "Risk Score")))
	body.WriteString(spaceStyle.Render(" "))
	body.WriteString(scoreStyle.Render(r.Score.String()))
	body.WriteString(spaceStyle.Render("  "))
	body.WriteString(badgeStyle.Render(r.Level.String()))
	body.WriteString("\n")
	if v, ok := r.Score.Value(); ok {
		body.WriteString(components.ScoreGauge(v, min(innerW, 48)))
		body.WriteString("\n")
	}
	body.WriteString("\n")

	barW := innerW - metricLabelW - 7
	if barW < 10 {
		barW = 10
	}
	body.WriteString(components.ApprovalBar("Approval", r.ApprovalProbability, metricLabelW, barW))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", metricLabelW, "Interest Rate")))
	body.WriteString(spaceStyle.Render(" "))
	body.WriteString(valueStyle.Render(r.RateText()))
	body.WriteString("\n\n")

	body.WriteString(renderBreakdown(r.Breakdown, innerW))

	if a.state.Stale() {
		body.WriteString("\n")
		body.WriteString(warnStyle.Render("Form changed since last calculation. Press ^s to recalculate."))
	}

	return components.ContentCard(resultCardTitle, body.String(), outerW)
}

// renderBreakdown lists how each field moved the score from the base.
func renderBreakdown(b risk.Breakdown, innerW int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	upStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	downStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var s strings.Builder
	s.WriteString(dimStyle.Render(fmt.Sprintf("%-*s %8s", labelColumnWidth, "Base", strconv.Itoa(int(b.Base)))))
	s.WriteString("\n")
	for _, c := range b.Contributions {
		style := upStyle
		if c.Points < 0 {
			style = downStyle
		}
		s.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s ", labelColumnWidth, c.Field.Label())))
		s.WriteString(style.Render(fmt.Sprintf("%8s", cli.FormatPoints(c.Points))))
		s.WriteString("\n")
	}
	total := fmt.Sprintf("%-*s %8s", labelColumnWidth, "Unclamped total", formatTotal(b.Total))
	s.WriteString(dimStyle.Render(truncStr(total, innerW)))
	return s.String()
}

func formatTotal(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// renderPerformanceCard draws the three performance series as bar charts.
func renderPerformanceCard(d portfolio.Dataset, cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	series := performanceSeries(d)
	labels := portfolio.Months(d.Records)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	const chartH = 8

	wide := innerW >= 90
	widths := components.LayoutRow(innerW, len(series))
	charts := make([]string, len(series))
	for i, s := range series {
		w := innerW
		if wide {
			w = widths[i] - 1
		}
		charts[i] = titleStyle.Render(s.Title) + "\n" + components.SeriesChart(s, labels, w, chartH)
	}

	var body strings.Builder
	body.WriteString(components.Legend(components.LegendFor(series)))
	body.WriteString("\n\n")
	if wide {
		for i := range charts {
			charts[i] = lipgloss.NewStyle().Background(t.Surface).Width(widths[i]).Render(charts[i])
		}
		body.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, charts...))
	} else {
		body.WriteString(strings.Join(charts, "\n\n"))
	}

	return components.ContentCard("Portfolio Performance Trends", body.String(), cw)
}

// performanceSeries returns the charted series in display order.
func performanceSeries(d portfolio.Dataset) []components.Series {
	t := theme.Active
	defaults, approvals, scores := portfolio.Values(d.Records)
	return []components.Series{
		{Title: "Default Rate %", Values: defaults, Color: t.ForSeries(theme.SeriesDefaultRate)},
		{Title: "Approval Rate %", Values: approvals, Color: t.ForSeries(theme.SeriesApprovalRate)},
		{Title: "Avg Risk Score", Values: scores, Color: t.ForSeries(theme.SeriesRiskScore), Floor: scoreFloor(scores)},
	}
}

// scoreFloor picks a round axis floor below the lowest risk score so
// month-to-month differences stay visible.
func scoreFloor(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	lo := scores[0]
	for _, v := range scores[1:] {
		lo = math.Min(lo, v)
	}
	floor := math.Floor((lo-20)/50) * 50
	if floor < 0 {
		return 0
	}
	return floor
}

// metricsFor converts the dataset's summary cards into metric cards.
func metricsFor(d portfolio.Dataset) []components.Metric {
	t := theme.Active
	cards := d.Cards()
	metrics := make([]components.Metric, len(cards))
	for i, c := range cards {
		metrics[i] = components.Metric{Label: c.Label, Value: c.Value, Color: t.ForTone(c.Tone)}
	}
	return metrics
}
