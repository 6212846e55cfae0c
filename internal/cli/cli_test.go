package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/riskdash/internal/risk"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{245000, "245,000"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(245000); got != "$245,000" {
		t.Errorf("FormatMoney(245000) = %q", got)
	}
	if got := FormatMoney(-1500.4); got != "-$1,500" {
		t.Errorf("FormatMoney(-1500.4) = %q", got)
	}
}

func TestFormatPercentAndDelta(t *testing.T) {
	if got := FormatPercent(67.8); got != "67.8%" {
		t.Errorf("FormatPercent(67.8) = %q", got)
	}
	if got := FormatDelta(-0.3, 1); got != "-0.3" {
		t.Errorf("FormatDelta(-0.3, 1) = %q", got)
	}
	if got := FormatDelta(12, 0); got != "+12" {
		t.Errorf("FormatDelta(12, 0) = %q", got)
	}
	if got := FormatPoints(-2.5); got != "-2.5" {
		t.Errorf("FormatPoints(-2.5) = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{720, 715, 705, 725, 718, 730})
	runes := []rune(got)
	if len(runes) != 6 {
		t.Fatalf("sparkline length = %d, want 6", len(runes))
	}
	if runes[2] != '▁' || runes[5] != '█' {
		t.Errorf("sparkline %q should bottom out at the min and peak at the max", got)
	}

	flat := RenderSparkline([]float64{5, 5, 5})
	if flat != "███" {
		t.Errorf("flat sparkline = %q", flat)
	}
	if RenderSparkline(nil) != "" {
		t.Error("empty sparkline should be empty")
	}
}

func TestRenderTableAlignsUnicodeCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Applicant", "Score"},
		Rows: [][]string{
			{"alice", "809"},
			{"bob", "—"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), out)
	}
	for _, want := range []string{"alice", "809", "—"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestRenderLevel(t *testing.T) {
	for _, l := range []risk.Level{risk.NotCalculated, risk.HighRisk, risk.ModerateRisk, risk.LowRisk} {
		if !strings.Contains(RenderLevel(l), l.String()) {
			t.Errorf("RenderLevel(%v) lost its label", l)
		}
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	got := RenderHorizontalBar("Approval", 50, 100, 10)
	if !strings.Contains(got, "Approval") || !strings.Contains(got, strings.Repeat("█", 5)) {
		t.Errorf("RenderHorizontalBar = %q", got)
	}
	if strings.Contains(RenderHorizontalBar("x", -5, 100, 10), "█") {
		t.Error("negative value should draw no bar")
	}
}
