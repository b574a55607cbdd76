package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/salvage/internal/config"
)

// StyleKind selects one of the narration styles.
type StyleKind int

const (
	StyleError StyleKind = iota
	StylePrompt
	StyleDone
	StyleMuted
)

// Palette used by the styles map. ApplyTheme replaces entries from
// the [theme] table and rebuilds the styles.
var (
	ColorRed    = lipgloss.Color("#f38ba8")
	ColorYellow = lipgloss.Color("#f9e2af")
	ColorGreen  = lipgloss.Color("#a6e3a1")
	ColorMuted  = lipgloss.Color("#5a6278")
)

var styles map[StyleKind]lipgloss.Style

func init() {
	rebuildStyles()
}

// rebuildStyles reconstructs all lipgloss styles from the current color vars.
func rebuildStyles() {
	styles = map[StyleKind]lipgloss.Style{
		StyleError:  lipgloss.NewStyle().Bold(true).Foreground(ColorRed),
		StylePrompt: lipgloss.NewStyle().Foreground(ColorYellow),
		StyleDone:   lipgloss.NewStyle().Foreground(ColorGreen),
		StyleMuted:  lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// ApplyTheme overrides palette colors from the config file.
func ApplyTheme(tc config.ThemeConfig) {
	if tc.Error != nil {
		ColorRed = lipgloss.Color(*tc.Error)
	}
	if tc.Prompt != nil {
		ColorYellow = lipgloss.Color(*tc.Prompt)
	}
	if tc.Done != nil {
		ColorGreen = lipgloss.Color(*tc.Done)
	}
	if tc.Muted != nil {
		ColorMuted = lipgloss.Color(*tc.Muted)
	}
	rebuildStyles()
}

// Render applies the style of kind to s.
func Render(kind StyleKind, s string) string {
	st, ok := styles[kind]
	if !ok {
		return s
	}
	return st.Render(s)
}

// PromptStyle returns a prompt renderer, or nil when styled is false.
func PromptStyle(styled bool) func(string) string {
	if !styled {
		return nil
	}
	return func(s string) string { return Render(StylePrompt, s) }
}
