package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// eighths are the partial-cell glyphs for bar tops, index = filled eighths.
var eighths = []rune(" ▁▂▃▄▅▆▇█")

// Series is one performance series as charted.
type Series struct {
	Title  string
	Values []float64
	Color  lipgloss.Color
	Floor  float64 // axis origin; values at or below it draw no bar
}

// Sparkline renders values as block glyphs scaled between the series
// minimum and maximum. A flat series renders at full height.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := bounds(values)
	top := len(sparkBlocks) - 1

	out := make([]rune, len(values))
	for i, v := range values {
		idx := top
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(top))
		}
		out[i] = sparkBlocks[min(max(idx, 0), top)]
	}
	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(string(out))
}

// LegendItem is one entry of a chart legend.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// LegendFor builds legend entries from the charted series.
func LegendFor(series []Series) []LegendItem {
	items := make([]LegendItem, len(series))
	for i, s := range series {
		items[i] = LegendItem{Label: s.Title, Color: s.Color}
	}
	return items
}

// Legend renders colored swatches with labels on one line.
func Legend(items []LegendItem) string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = lipgloss.NewStyle().Foreground(it.Color).Background(t.Surface).Render("■") +
			textStyle.Render(" "+it.Label)
	}
	return strings.Join(parts, gapStyle.Render("   "))
}

// SeriesChart draws one series as vertical bars over a month axis. When the
// area is too small for bars it falls back to a sparkline; when there are
// more points than columns it keeps the most recent ones.
func SeriesChart(s Series, labels []string, width, height int) string {
	if len(s.Values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(s.Values, s.Color)
	}
	t := theme.Active
	surface := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface)

	_, hi := bounds(s.Values)
	step := chartTickStep(max(hi-s.Floor, 1))
	ceiling := s.Floor + math.Ceil(max(hi-s.Floor, step)/step)*step
	for (ceiling-s.Floor)/step > float64(height) {
		step *= 2
		ceiling = s.Floor + math.Ceil((ceiling-s.Floor)/step)*step
	}

	// Ticks land on the top row, the middle row and the axis.
	ticks := map[int]string{height: formatChartLabel(ceiling)}
	if height >= 6 {
		mid := height / 2
		ticks[mid] = formatChartLabel(s.Floor + (ceiling-s.Floor)*float64(mid)/float64(height))
	}

	axisW := 3
	for _, l := range ticks {
		axisW = max(axisW, len(l))
	}
	axisW = max(axisW, len(formatChartLabel(s.Floor))) + 1
	plotW := width - axisW - 1

	values := s.Values
	if len(labels) != len(values) {
		labels = nil
	}
	// Each bar needs at least two columns plus a one-column gap.
	if fit := max((plotW+1)/3, 1); len(values) > fit {
		values = values[len(values)-fit:]
		if labels != nil {
			labels = labels[len(labels)-fit:]
		}
	}
	n := len(values)
	barW := min(max((plotW-(n-1))/n, 2), 6)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", axisW, ticks[row])))
		for i, v := range values {
			if i > 0 {
				b.WriteString(surface.Render(" "))
			}
			cell := eighthsAt(v, s.Floor, ceiling, row, height)
			if cell == ' ' {
				b.WriteString(surface.Render(strings.Repeat(" ", barW)))
				continue
			}
			b.WriteString(barStyle.Render(strings.Repeat(string(cell), barW)))
		}
		b.WriteString("\n")
	}

	axisLen := n*barW + (n - 1)
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", axisW, formatChartLabel(s.Floor), strings.Repeat("─", axisLen))))

	if labels != nil {
		row := []rune(strings.Repeat(" ", axisLen))
		// Place labels right to left so the latest month always shows.
		limit := axisLen
		for i := len(labels) - 1; i >= 0; i-- {
			lr := []rune(labels[i])
			pos := min(i*(barW+1), axisLen-len(lr))
			if pos < 0 || pos+len(lr) > limit {
				continue
			}
			copy(row[pos:], lr)
			limit = pos - 1
		}
		b.WriteString("\n")
		b.WriteString(surface.Render(strings.Repeat(" ", axisW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(row), " ")))
	}

	return b.String()
}

// eighthsAt returns the glyph for one cell of a bar: full, empty or a
// partial top.
func eighthsAt(v, floor, ceiling float64, row, height int) rune {
	per := (ceiling - floor) / float64(height)
	filled := (v - floor) / per // in rows
	switch {
	case filled >= float64(row):
		return eighths[8]
	case filled <= float64(row-1):
		return eighths[0]
	}
	idx := int((filled - float64(row-1)) * 8)
	return eighths[min(max(idx, 1), 8)]
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// chartTickStep picks a 1/2/5 step giving about five intervals.
func chartTickStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	rough := span / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel prints axis values compactly: whole numbers bare,
// fractions with one decimal (two below one), thousands with a k suffix.
func formatChartLabel(v float64) string {
	switch {
	case math.Abs(v) >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	case math.Abs(v) >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
