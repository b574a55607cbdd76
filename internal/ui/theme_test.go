package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bamsammich/salvage/internal/config"
)

func TestApplyTheme(t *testing.T) {
	orig := ColorRed
	t.Cleanup(func() {
		ColorRed = orig
		rebuildStyles()
	})

	red := "#ff0000"
	ApplyTheme(config.ThemeConfig{Error: &red})

	assert.Equal(t, lipgloss.Color("#ff0000"), ColorRed)
	assert.Equal(t, lipgloss.Color("#ff0000"), styles[StyleError].GetForeground())
}

func TestRenderKeepsText(t *testing.T) {
	assert.Contains(t, Render(StyleError, "write error"), "write error")
	assert.Equal(t, "plain", Render(StyleKind(99), "plain"))
}

func TestPromptStyle(t *testing.T) {
	assert.Nil(t, PromptStyle(false))
	style := PromptStyle(true)
	if assert.NotNil(t, style) {
		assert.Contains(t, style("Retry?"), "Retry?")
	}
}
