package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/riskdash/internal/risk"
	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ApprovalBar renders a labeled bar for an approval probability given in
// whole percent (0-100).
func ApprovalBar(label string, percent int, labelW, barWidth int) string {
	t := theme.Active

	frac := min(max(float64(percent)/100, 0), 1)
	color := t.ForApproval(frac)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3d%%", percent))
}

// ScoreGauge draws the 300-850 score range as three colored level bands
// with a marker line under the given score. It returns two lines.
func ScoreGauge(score, width int) string {
	t := theme.Active
	if width < 10 {
		width = 10
	}

	span := float64(risk.MaxScore - risk.MinScore)
	cellScore := func(i int) int {
		return risk.MinScore + int(float64(i)*span/float64(width-1)+0.5)
	}

	pos := int(float64(score-risk.MinScore)/span*float64(width-1) + 0.5)
	pos = min(max(pos, 0), width-1)

	var band strings.Builder
	for i := 0; i < width; i++ {
		l := risk.LevelFor(cellScore(i))
		glyph := "━"
		if i == pos {
			glyph = "┿"
		}
		band.WriteString(lipgloss.NewStyle().Foreground(t.ForLevel(l)).Background(t.Surface).Render(glyph))
	}

	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	lo, hi := fmt.Sprint(risk.MinScore), fmt.Sprint(risk.MaxScore)
	scale := []rune(strings.Repeat(" ", width))
	scale[pos] = '▲'
	if pos > len(lo) {
		copy(scale, []rune(lo))
	}
	if pos < width-len(hi)-1 {
		copy(scale[width-len(hi):], []rune(hi))
	}

	return band.String() + "\n" + dim.Render(string(scale))
}
