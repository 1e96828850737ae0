package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
)

var breadcrumbPadStyle = lipgloss.NewStyle().Padding(0, 1)

func renderBreadcrumb(segments ...string) string {
	parts := make([]string, 0, len(segments))
	style := activeTheme.HintText.Bold(true)
	for _, seg := range segments {
		parts = append(parts, style.Render(seg))
	}
	return breadcrumbPadStyle.Render(strings.Join(parts, activeTheme.Branch.Render(" > ")))
}

func renderSeparator(width int) string {
	return activeTheme.Branch.Render(strings.Repeat("─", width))
}

func helpStyles(isDark bool) help.Styles {
	s := help.DefaultStyles(isDark)
	s.ShortKey = activeTheme.PrimaryFg
	s.FullKey = activeTheme.PrimaryFg
	return s
}
