// Package theme defines the color palettes of the riskdash TUI and maps
// risk tones and portfolio series onto them.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is one palette. Layout code reads the surface and text roles;
// domain code should go through the role methods in roles.go.
type Theme struct {
	Name          string
	Background    lipgloss.Color
	Surface       lipgloss.Color // card body
	SurfaceHover  lipgloss.Color // focused input, active tab
	SurfaceBright lipgloss.Color // selected row, button
	Border        lipgloss.Color
	BorderBright  lipgloss.Color
	BorderAccent  lipgloss.Color
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Yellow        lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
}

// DefaultName is the theme used when none is configured.
const DefaultName = "flexoki-dark"

// Active is the palette every renderer reads.
var Active = FlexokiDark

var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    "#100F0F",
	Surface:       "#1C1B1A",
	SurfaceHover:  "#282726",
	SurfaceBright: "#343331",
	Border:        "#403E3C",
	BorderBright:  "#575653",
	BorderAccent:  "#3AA99F",
	TextDim:       "#575653",
	TextMuted:     "#878580",
	TextPrimary:   "#FFFCF0",
	Accent:        "#3AA99F",
	AccentBright:  "#5BC8BE",
	Green:         "#879A39",
	GreenBright:   "#A3B859",
	Yellow:        "#D0A215",
	Orange:        "#DA702C",
	Red:           "#D14D41",
	Blue:          "#4385BE",
}

var FlexokiLight = Theme{
	Name:          "flexoki-light",
	Background:    "#FFFCF0",
	Surface:       "#F2F0E5",
	SurfaceHover:  "#E6E4D9",
	SurfaceBright: "#DAD8CE",
	Border:        "#CECDC3",
	BorderBright:  "#B7B5AC",
	BorderAccent:  "#24837B",
	TextDim:       "#B7B5AC",
	TextMuted:     "#6F6E69",
	TextPrimary:   "#100F0F",
	Accent:        "#24837B",
	AccentBright:  "#1C6C66",
	Green:         "#66800B",
	GreenBright:   "#536907",
	Yellow:        "#AD8301",
	Orange:        "#BC5215",
	Red:           "#AF3029",
	Blue:          "#205EA6",
}

var GruvboxDark = Theme{
	Name:          "gruvbox-dark",
	Background:    "#282828",
	Surface:       "#32302F",
	SurfaceHover:  "#3C3836",
	SurfaceBright: "#504945",
	Border:        "#504945",
	BorderBright:  "#665C54",
	BorderAccent:  "#83A598",
	TextDim:       "#665C54",
	TextMuted:     "#A89984",
	TextPrimary:   "#EBDBB2",
	Accent:        "#83A598",
	AccentBright:  "#8EC07C",
	Green:         "#98971A",
	GreenBright:   "#B8BB26",
	Yellow:        "#FABD2F",
	Orange:        "#FE8019",
	Red:           "#FB4934",
	Blue:          "#458588",
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:          "terminal",
	Background:    "0",
	Surface:       "0",
	SurfaceHover:  "8",
	SurfaceBright: "8",
	Border:        "8",
	BorderBright:  "7",
	BorderAccent:  "6",
	TextDim:       "8",
	TextMuted:     "7",
	TextPrimary:   "15",
	Accent:        "6",
	AccentBright:  "14",
	Green:         "2",
	GreenBright:   "10",
	Yellow:        "11",
	Orange:        "3",
	Red:           "1",
	Blue:          "4",
}

// All lists the themes in display order.
var All = []Theme{FlexokiDark, FlexokiLight, GruvboxDark, Terminal}

// Names lists the available theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	_, ok := lookup(name)
	return ok
}

// ByName returns the named theme, or the default one.
func ByName(name string) Theme {
	if t, ok := lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// SetActive switches the active theme; unknown names select the default.
func SetActive(name string) {
	Active = ByName(name)
}

func lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
