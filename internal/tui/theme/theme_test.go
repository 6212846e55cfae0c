package theme

import (
	"testing"

	"github.com/theirongolddev/riskdash/internal/risk"
)

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("gruvbox-dark"); got.Name != "gruvbox-dark" {
		t.Fatalf("ByName(gruvbox-dark) = %q", got.Name)
	}
	if got := ByName("no-such-theme"); got.Name != DefaultName {
		t.Fatalf("unknown theme should fall back to %q, got %q", DefaultName, got.Name)
	}
}

func TestSetActive(t *testing.T) {
	t.Cleanup(func() { SetActive(DefaultName) })

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Fatalf("Active = %q, want terminal", Active.Name)
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() has %d entries, want %d", len(names), len(All))
	}
	for _, n := range names {
		if !Exists(n) {
			t.Errorf("Exists(%q) = false", n)
		}
	}
	if Exists("") {
		t.Error(`Exists("") = true`)
	}
}

func TestLevelColors(t *testing.T) {
	for _, th := range All {
		if th.ForLevel(risk.LowRisk) != th.Green {
			t.Errorf("%s: low risk should be green", th.Name)
		}
		if th.ForLevel(risk.HighRisk) != th.Red {
			t.Errorf("%s: high risk should be red", th.Name)
		}
		if th.ForLevel(risk.NotCalculated) != th.TextMuted {
			t.Errorf("%s: unset score should be muted", th.Name)
		}
		if th.ForTone("approval") != th.ForSeries(SeriesApprovalRate) {
			t.Errorf("%s: approval card and series colors differ", th.Name)
		}
	}
}

func TestApprovalGrades(t *testing.T) {
	th := FlexokiDark
	tests := map[float64]string{1: "green", 0.6: "yellow", 0.3: "orange", 0: "red"}
	want := map[string]string{"green": string(th.Green), "yellow": string(th.Yellow), "orange": string(th.Orange), "red": string(th.Red)}
	for frac, name := range tests {
		if got := string(th.ForApproval(frac)); got != want[name] {
			t.Errorf("ForApproval(%v) = %s, want %s", frac, got, name)
		}
	}
}
