// Package layouts compares vertical and horizontal containers.
package layouts

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/widget"
)

var (
	horizontalBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1).
			Margin(1)
	verticalBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(1).
			Margin(1)
	itemBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("15")).
		Padding(1)
)

// ClickedMessage is the toast text for a pressed button.
func ClickedMessage(id string) string { return "Clicked: " + id }

func items(labels ...string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = itemBox.Render(" " + l)
	}
	return out
}

type keyMap struct {
	Move, Press, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Move, k.Press, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type Model struct {
	frame    app.Frame
	keys     keyMap
	buttons  widget.ButtonRow
	notifier widget.Notifier
	log      *log.Logger
}

func New(env app.Env) tea.Model {
	buttons := widget.NewButtonRow(widget.Horizontal,
		widget.Button{ID: "btn1", Label: "Button 1"},
		widget.Button{ID: "btn2", Label: "Button 2"},
		widget.Button{ID: "btn3", Label: "Button 3"},
	)
	return Model{
		frame:    app.NewFrame("HorizontalLayoutApp", ""),
		buttons:  buttons,
		notifier: env.Notifier(),
		log:      env.Log(),
		keys: keyMap{
			Move:  key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "move")),
			Press: buttons.Keys.Press,
			Quit:  app.QuitKey,
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.notifier.Update(msg) {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame.Resize(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.buttons, cmd = m.buttons.Update(msg)
		return m, cmd
	case widget.Event:
		if msg.Kind == widget.ButtonPressed {
			m.log.Debug("layout button", "id", msg.ID)
			cmd := m.notifier.Notify(ClickedMessage(msg.ID))
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	inner := m.frame.Width - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		"Vertical Layout (top to bottom):",
		verticalBox.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, items("Item 1", "Item 2", "Item 3")...)),
		"Horizontal Layout (left to right):",
		horizontalBox.Width(inner).Render(lipgloss.JoinHorizontal(lipgloss.Top, items("Item A", "Item B", "Item C")...)),
		"Horizontal with Buttons:",
		horizontalBox.Width(inner).Render(m.buttons.View(true)),
	)
	return m.frame.Render(body, m.notifier.View(), m.keys)
}
