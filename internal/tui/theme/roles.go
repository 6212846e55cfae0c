package theme

import (
	"github.com/theirongolddev/riskdash/internal/risk"

	"github.com/charmbracelet/lipgloss"
)

// Series identifies one portfolio performance series.
type Series int

const (
	SeriesDefaultRate Series = iota
	SeriesApprovalRate
	SeriesRiskScore
)

// ForAffinity colors a risk level's tone.
func (t Theme) ForAffinity(a risk.Affinity) lipgloss.Color {
	switch a {
	case risk.AffinityGood:
		return t.Green
	case risk.AffinityCaution:
		return t.Yellow
	case risk.AffinityDanger:
		return t.Red
	default:
		return t.TextMuted
	}
}

// ForLevel colors a risk level.
func (t Theme) ForLevel(l risk.Level) lipgloss.Color {
	return t.ForAffinity(l.Affinity())
}

// ForSeries colors a performance series consistently across charts,
// sparklines and legends.
func (t Theme) ForSeries(s Series) lipgloss.Color {
	switch s {
	case SeriesDefaultRate:
		return t.Red
	case SeriesApprovalRate:
		return t.Green
	default:
		return t.Blue
	}
}

// ForTone colors a summary card by its tone key.
func (t Theme) ForTone(tone string) lipgloss.Color {
	switch tone {
	case "approval":
		return t.ForSeries(SeriesApprovalRate)
	case "default":
		return t.ForSeries(SeriesDefaultRate)
	case "loan":
		return t.Blue
	default:
		return t.Accent
	}
}

// ForApproval grades a 0-1 approval likelihood from red to green.
func (t Theme) ForApproval(frac float64) lipgloss.Color {
	switch {
	case frac >= 0.75:
		return t.Green
	case frac >= 0.5:
		return t.Yellow
	case frac >= 0.25:
		return t.Orange
	default:
		return t.Red
	}
}
