package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockjam/internal/core"
)

// Theme maps screen colors to terminal styles.
type Theme struct {
	Name   string
	Styles map[core.Color]lipgloss.Style
	Help   lipgloss.Style
}

// Style returns the style for a color, falling back to the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Styles[c]; ok {
		return s
	}
	return t.Styles[core.ColorDefault]
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// ClassicTheme uses the basic 16 ANSI colors.
func ClassicTheme() Theme {
	return Theme{
		Name: "classic",
		Styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle(),
			core.ColorRed:       fg("9"),
			core.ColorGreen:     fg("10"),
			core.ColorBlue:      fg("12"),
			core.ColorYellow:    fg("11"),
			core.ColorPurple:    fg("5"),
			core.ColorOrange:    fg("208"),
			core.ColorPink:      fg("13"),
			core.ColorCyan:      fg("14"),
			core.ColorWhite:     fg("15"),
			core.ColorGray:      fg("240"),
			core.ColorDim:       fg("245"),
			core.ColorHighlight: fg("229").Bold(true),
		},
		Help: fg("241"),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	t := ClassicTheme()
	t.Name = "neon"
	t.Styles[core.ColorRed] = fg("197")
	t.Styles[core.ColorGreen] = fg("118")
	t.Styles[core.ColorBlue] = fg("33")
	t.Styles[core.ColorYellow] = fg("227")
	t.Styles[core.ColorPurple] = fg("171")
	t.Styles[core.ColorPink] = fg("199")
	t.Styles[core.ColorCyan] = fg("87")
	t.Styles[core.ColorHighlight] = fg("51").Bold(true)
	return t
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	t := ClassicTheme()
	t.Name = "pastel"
	t.Styles[core.ColorRed] = fg("210")
	t.Styles[core.ColorGreen] = fg("157")
	t.Styles[core.ColorBlue] = fg("111")
	t.Styles[core.ColorYellow] = fg("229")
	t.Styles[core.ColorPurple] = fg("183")
	t.Styles[core.ColorOrange] = fg("216")
	t.Styles[core.ColorPink] = fg("218")
	t.Styles[core.ColorCyan] = fg("123")
	return t
}

// MonoTheme returns a grayscale theme.
func MonoTheme() Theme {
	t := ClassicTheme()
	t.Name = "mono"
	grays := []string{"255", "252", "249", "246", "243", "250", "247", "244"}
	for i, c := range []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow,
		core.ColorPurple, core.ColorOrange, core.ColorPink, core.ColorCyan,
	} {
		t.Styles[c] = fg(grays[i])
	}
	t.Styles[core.ColorHighlight] = fg("255").Bold(true)
	return t
}

var themes = map[string]func() Theme{
	"classic": ClassicTheme,
	"neon":    NeonTheme,
	"pastel":  PastelTheme,
	"mono":    MonoTheme,
}

// ThemeByName returns the named theme. Unknown names yield the classic
// theme and false.
func ThemeByName(name string) (Theme, bool) {
	if f, ok := themes[name]; ok {
		return f(), true
	}
	return ClassicTheme(), false
}

// ThemeNames lists the available themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
