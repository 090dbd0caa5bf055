package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/termtour/internal/ui"
)

var headerStyle = lipgloss.NewStyle().
	Background(ui.Primary).
	Foreground(ui.Text).
	Bold(true).
	Align(lipgloss.Center)

// Header draws the one-line title bar.
func Header(title, subtitle string, width int) string {
	text := title
	if subtitle != "" {
		text += " · " + subtitle
	}
	if width > 0 {
		return headerStyle.Width(width).Render(text)
	}
	return headerStyle.Render(text)
}

// Footer lists the bindings of km.
func Footer(h help.Model, km help.KeyMap, width int) string {
	h.Width = width
	return h.View(km)
}

// Screen stacks header and body at the top, footer at the bottom, and
// right-aligns toasts just above the footer.
func Screen(width, height int, header, body, toasts, footer string) string {
	top := lipgloss.JoinVertical(lipgloss.Left, header, body)
	if toasts != "" {
		if width > 0 {
			toasts = lipgloss.PlaceHorizontal(width, lipgloss.Right, toasts)
		}
		footer = toasts + "\n" + footer
	}
	if gap := height - lipgloss.Height(top) - lipgloss.Height(footer); gap > 0 {
		top += strings.Repeat("\n", gap)
	}
	return top + "\n" + footer
}
