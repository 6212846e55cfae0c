package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/logging"
	"github.com/theirongolddev/riskdash/internal/tui/components"
	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldDatasetFile
	settingsFieldDatasetDB
	settingsFieldDatasetName
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
	invalid string
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false
	a.settings.invalid = ""

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldDatasetFile:
		ti.Placeholder = "path to a TOML dataset (empty for none)"
		ti.SetValue(a.opts.File)
	case settingsFieldDatasetDB:
		ti.Placeholder = config.DefaultStorePath()
		ti.SetValue(a.opts.DBPath)
	case settingsFieldDatasetName:
		ti.Placeholder = "sample"
		ti.SetValue(a.opts.Name)
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(cfg.Logging.Level)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		reload := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil && a.settings.invalid == ""
		if reload {
			return a, loadDatasetCmd(a.opts)
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave writes the edited field to the config file. It reports
// whether the dataset must be reloaded.
func (a *App) settingsSave() bool {
	cfg, err := config.LoadFile()
	if err != nil {
		// Never overwrite a file we could not read.
		a.settings.saveErr = err
		slog.Warn("settings not saved", "err", err)
		return false
	}
	val := strings.TrimSpace(a.settings.input.Value())
	reload := false

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Exists(val) {
			a.settings.invalid = fmt.Sprintf("unknown theme %q", val)
			return false
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
		a.form.applyStyles()
	case settingsFieldDatasetFile:
		cfg.General.DatasetFile = val
		reload = val != a.opts.File
		a.opts.File = val
	case settingsFieldDatasetDB:
		cfg.General.DatasetDB = val
		reload = val != a.opts.DBPath
		a.opts.DBPath = val
	case settingsFieldDatasetName:
		cfg.General.DatasetName = val
		reload = val != a.opts.Name
		a.opts.Name = val
	case settingsFieldLogLevel:
		cfg.Logging.Level = val
		logging.SetLevel(val)
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr != nil {
		slog.Warn("saving settings", "err", a.settings.saveErr)
	}
	return reload
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	orNotSet := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return s
	}

	fields := []struct {
		label string
		value string
	}{
		{"Theme", theme.Active.Name},
		{"Dataset File", orNotSet(a.opts.File)},
		{"Dataset DB", orNotSet(a.opts.DBPath)},
		{"Dataset Name", orNotSet(a.opts.Name)},
		{"Log Level", cfg.Logging.Level},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	switch {
	case a.settings.invalid != "":
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(a.settings.invalid))
	case a.settings.saveErr != nil:
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	case a.settings.saved:
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Dataset info card
	var infoBody strings.Builder
	if a.dataset != nil {
		ds := a.dataset
		infoBody.WriteString(labelStyle.Render("Dataset:         ") + valueStyle.Render(ds.Dataset.Name) + "\n")
		infoBody.WriteString(labelStyle.Render("Source:          ") + valueStyle.Render(string(ds.Source)) + "\n")
		if ds.Location != "" {
			infoBody.WriteString(labelStyle.Render("Location:        ") + valueStyle.Render(ds.Location) + "\n")
		}
		infoBody.WriteString(labelStyle.Render("Records:         ") + valueStyle.Render(fmt.Sprintf("%d", len(ds.Dataset.Records))) + "\n")
		for _, w := range ds.Warnings {
			infoBody.WriteString(warnStyle.Render(truncStr("! "+w, components.CardInnerWidth(cw))) + "\n")
		}
	}
	infoBody.WriteString(labelStyle.Render("Load time:       ") + valueStyle.Render(fmt.Sprintf("%.1fms", float64(a.loadTime.Microseconds())/1000)) + "\n")
	infoBody.WriteString(labelStyle.Render("Calculations:    ") + valueStyle.Render(fmt.Sprintf("%d", a.state.Calculations())) + "\n")
	if id := a.state.LastID(); id != "" {
		infoBody.WriteString(labelStyle.Render("Last assessment: ") + valueStyle.Render(id) + "\n")
	}
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
