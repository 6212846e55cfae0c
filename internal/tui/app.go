// Package tui provides the interactive Bubble Tea dashboard for riskdash.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theirongolddev/riskdash/internal/assess"
	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/pipeline"
	"github.com/theirongolddev/riskdash/internal/portfolio"
	"github.com/theirongolddev/riskdash/internal/tui/components"
	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// DatasetLoadedMsg is sent when the dataset pipeline finishes.
type DatasetLoadedMsg struct {
	Result   *pipeline.LoadResult
	LoadTime time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	// Assessment
	state assess.State
	form  formState

	// Display data
	dataset  *pipeline.LoadResult
	loaded   bool
	loadTime time.Duration
	opts     pipeline.DatasetOptions

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	scroll    int

	// Per-tab state
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	spinner spinner.Model
}

const (
	tabAssess = iota
	tabTrends
	tabSettings
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	// Scroll navigation
	scrollOverhead    = 4 // tab bar + status bar height for half-page calc
	minHalfPageScroll = 1 // minimum lines for half-page scroll
	minContentHeight  = 5 // minimum content area height
)

// loadConfigOrDefault loads the config file, returning defaults on error.
// Environment overrides are left out: this is what Settings shows and edits.
func loadConfigOrDefault() config.Config {
	cfg, err := config.LoadFile()
	if err != nil {
		slog.Warn("config unreadable, using defaults", "err", err)
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model that shows the dataset resolved from opts.
func NewApp(opts pipeline.DatasetOptions) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		state:     assess.New(),
		form:      newForm(),
		opts:      opts,
		needSetup: !config.Exists(),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDatasetCmd(a.opts),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.setWidth(a.formInputWidth())
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scrollBy(-1)
		case tea.MouseButtonWheelDown:
			a.scrollBy(1)
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.switchTab(tab)
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// A focused form field receives keystrokes
		if a.activeTab == tabAssess && a.form.focused() {
			return a.updateForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "ctrl+s":
			a.calculate()
			return a, nil
		case "ctrl+r":
			a.reset()
			return a, nil
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		if a.activeTab == tabAssess {
			switch key {
			case "i", "enter":
				a.scroll = 0
				return a, a.form.focus(0)
			}
		}

		// Scrolling
		switch key {
		case "j", "down":
			a.scrollBy(1)
			return a, nil
		case "k", "up":
			a.scrollBy(-1)
			return a, nil
		case "g":
			a.scroll = 0
			return a, nil
		case "ctrl+d":
			a.scrollBy(a.halfPage())
			return a, nil
		case "ctrl+u":
			a.scrollBy(-a.halfPage())
			return a, nil
		}

		// Tab navigation
		switch key {
		case "left":
			a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		case "right":
			a.switchTab((a.activeTab + 1) % len(components.Tabs))
		default:
			if r := []rune(key); len(r) == 1 {
				if idx := components.TabIdxByKey(r[0]); idx >= 0 {
					a.switchTab(idx)
				}
			}
		}
		return a, nil

	case DatasetLoadedMsg:
		a.dataset = msg.Result
		a.loaded = true
		a.loadTime = msg.LoadTime

		// Activate first-run setup after data loads
		if a.needSetup && a.setupForm == nil {
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blinks for whichever text input is focused
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	if a.form.focused() {
		return a, a.form.update(msg)
	}

	return a, nil
}

// calculate dispatches a Calculate event with a fresh assessment id.
func (a *App) calculate() {
	id := uuid.NewString()
	a.state = assess.Reduce(a.state, assess.Calculate{ID: id})

	r := a.state.Result()
	slog.Debug("risk calculated",
		"id", id,
		"score", r.Score.String(),
		"level", r.Level.String(),
		"approval", r.ApprovalProbability,
	)
}

// reset clears the form and the displayed score.
func (a *App) reset() {
	a.state = assess.Reduce(a.state, assess.Reset{})
	a.form.clear()
}

func (a *App) switchTab(idx int) {
	if idx == a.activeTab {
		return
	}
	a.activeTab = idx
	a.scroll = 0
	a.form.blur()
}

func (a *App) scrollBy(n int) {
	a.scroll += n
	if a.scroll < 0 {
		a.scroll = 0
	}
}

func (a App) halfPage() int {
	halfPage := (a.height - scrollOverhead) / 2
	if halfPage < minHalfPageScroll {
		halfPage = minHalfPageScroll
	}
	return halfPage
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		reload := a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		if reload {
			return a, loadDatasetCmd(a.opts)
		}
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  riskdash needs at least %d columns.\n  Current width: %d\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ riskdash"))
	b.WriteString(subtitleStyle.Render(" · Loan Risk Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading portfolio data..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"a t x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Scroll"},
			{"^d ^u", "Half-page scroll"},
		}},
		{"Applicant Form", []struct{ key, desc string }{
			{"i Enter", "Edit the form"},
			{"Tab ↑ ↓", "Move between fields"},
			{"Esc", "Leave the form"},
			{"^s", "Calculate risk"},
			{"^r", "Reset form"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header and status bar
	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.statusInfo())

	// 2. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 3. Tab content
	var content string
	switch a.activeTab {
	case tabAssess:
		content = a.renderAssessTab(cw)
	case tabTrends:
		content = a.renderTrendsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 4. Scroll, then truncate + pad to exactly contentH lines
	content = scrollLines(content, a.scroll, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 5. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 6. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	switch {
	case a.activeTab == tabAssess && a.form.focused():
		return "[tab]next  [^s]calculate  [^r]reset  [esc]leave form"
	case a.activeTab == tabAssess:
		return "[i]edit  [^s]calculate  [?]help  [q]uit"
	default:
		return "[?]help  [q]uit"
	}
}

func (a App) statusInfo() string {
	if a.dataset == nil {
		return ""
	}
	info := fmt.Sprintf("dataset: %s (%s)", a.dataset.Dataset.Name, a.dataset.Source)
	if n := a.state.Calculations(); n > 0 {
		info += fmt.Sprintf(" · %d calc", n)
	}
	return info
}

// portfolioData returns the loaded dataset, or the sample before loading.
func (a App) portfolioData() portfolio.Dataset {
	if a.dataset == nil {
		return portfolio.Sample()
	}
	return a.dataset.Dataset
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDatasetCmd resolves the display dataset in the background.
func loadDatasetCmd(opts pipeline.DatasetOptions) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res := pipeline.LoadDataset(opts)
		return DatasetLoadedMsg{Result: res, LoadTime: time.Since(start)}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// scrollLines drops the first offset lines, keeping at least viewH lines
// visible when the content is long enough.
func scrollLines(s string, offset, viewH int) string {
	if offset <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxOffset := len(lines) - viewH
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	return strings.Join(lines[offset:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
