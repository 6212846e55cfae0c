package cli

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/theirongolddev/riskdash/internal/risk"

	"github.com/charmbracelet/lipgloss"
)

// Flexoki Dark, matching the TUI default theme.
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorYellow    = lipgloss.Color("#D0A215")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	barStyle    = lipgloss.NewStyle().Foreground(ColorBlue)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorYellow)
)

// levelStyles colors risk levels by affinity.
var levelStyles = map[risk.Affinity]lipgloss.Style{
	risk.AffinityNeutral: mutedStyle,
	risk.AffinityGood:    lipgloss.NewStyle().Foreground(ColorGreen),
	risk.AffinityCaution: lipgloss.NewStyle().Foreground(ColorYellow),
	risk.AffinityDanger:  lipgloss.NewStyle().Foreground(ColorRed),
}

// Table is a bordered text table. The first column is left-aligned and the
// rest right-aligned. A row holding the single cell "---" draws a rule.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional; measured from the content when nil
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(titleStyle.Render(title))
}

// RenderTable renders t with rounded box-drawing borders.
func RenderTable(t Table) string {
	cols := len(t.Headers)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}
	if cols == 0 {
		return ""
	}
	widths := t.columnWidths(cols)

	rule := func(left, mid, right string) string {
		segs := make([]string, cols)
		for i, w := range widths {
			segs[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(segs, mid)+right) + "\n"
	}
	line := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style.Render(" " + pad(cell, widths[i], i > 0) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		return b.String() + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, headerStyle))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(line(row, valueStyle))
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

func (t Table) columnWidths(cols int) []int {
	widths := make([]int, cols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	measure := func(cells []string) {
		for i, c := range cells {
			if i < cols {
				widths[i] = max(widths[i], utf8.RuneCountInString(c))
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	return widths
}

// pad fills s to w runes. fmt's width verbs count bytes, which misaligns
// cells holding dashes or block glyphs.
func pad(s string, w int, right bool) string {
	fill := strings.Repeat(" ", max(w-utf8.RuneCountInString(s), 0))
	if right {
		return fill + s
	}
	return s + fill
}

// RenderProgressBar renders "[█████░░░] n/total" for batch progress.
func RenderProgressBar(current, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := int(math.Min(float64(current)/float64(total), 1) * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s/%s", mutedStyle.Render(bar), FormatNumber(int64(current)), FormatNumber(int64(total)))
}

// RenderSparkline maps values onto block glyphs between the series minimum
// and maximum. A flat series renders at full height.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	top := len(blocks) - 1

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := top
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(top))
		}
		out[i] = blocks[min(max(idx, 0), top)]
	}
	return string(out)
}

// RenderHorizontalBar renders "  label ████" with the bar scaled to
// value/maxValue of maxWidth. Negative values keep the label only.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return "  " + label
	}
	n := min(max(int(value/maxValue*float64(maxWidth)), 0), maxWidth)
	return "  " + label + " " + barStyle.Render(strings.Repeat("█", n))
}

// RenderLevel colors a risk level by its affinity.
func RenderLevel(l risk.Level) string {
	return levelStyles[l.Affinity()].Render(l.String())
}

// RenderWarning renders a warning line.
func RenderWarning(msg string) string {
	return warnStyle.Render("  ! " + msg)
}
