package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 54

var (
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(2)
	dividerStyle = lipgloss.NewStyle().Faint(true)
)

// renderPage frames body between dividers under title and lists hotKeys
// below. ctrl+c is always listed.
func renderPage(title, body, hotKeys string) string {
	divider := bodyStyle.Render(dividerStyle.Render(strings.Repeat("─", pageWidth)))
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{
		titleStyle.Render(title),
		divider,
		"",
		bodyStyle.Render(body),
		"",
		divider,
	}
	if strings.TrimSpace(hotKeys) != "" {
		parts = append(parts, bodyStyle.Render(helpStyle.Render(hotKeys)))
	}
	parts = append(parts, bodyStyle.Render(helpStyle.Render("ctrl+c: quit")))

	return strings.Join(parts, "\n")
}

// fitText shortens v to max runes, ending with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
