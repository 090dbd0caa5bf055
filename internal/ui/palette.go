package ui

import "github.com/charmbracelet/lipgloss"

// Design tokens shared by every example.
var (
	Primary     = lipgloss.Color("#0178D4")
	PrimaryDark = lipgloss.Color("#0562A8")
	Accent      = lipgloss.Color("#FFA62B")
	PanelBg     = lipgloss.Color("#2B2B2B")
	Success     = lipgloss.Color("#4EBF71")
	Warning     = lipgloss.Color("#FFA62B")
	Error       = lipgloss.Color("#BA3C5B")
	Text        = lipgloss.Color("#E0E0E0")
	TextMuted   = lipgloss.Color("#8A8A8A")
	Border      = lipgloss.Color("8")
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(Text)
	MutedStyle    = lipgloss.NewStyle().Foreground(TextMuted)
	AccentStyle   = lipgloss.NewStyle().Foreground(Accent)
	SuccessStyle  = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle    = lipgloss.NewStyle().Foreground(Error).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	// BoxStyle frames a block with the muted rounded border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

const (
	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)
