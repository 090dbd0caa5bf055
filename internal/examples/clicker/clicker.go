// Package clicker shows the smallest event handler: one button that
// raises a toast.
package clicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/widget"
)

const (
	ButtonID = "click_me"
	Clicked  = "Button was clicked!"
)

type keyMap struct {
	Press key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Press, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type Model struct {
	frame    app.Frame
	keys     keyMap
	button   widget.ButtonRow
	notifier widget.Notifier
	log      *log.Logger
}

func New(env app.Env) tea.Model {
	row := widget.NewButtonRow(widget.Horizontal, widget.Button{ID: ButtonID, Label: "Click Me!"})
	return Model{
		frame:    app.NewFrame("ButtonClickApp", ""),
		keys:     keyMap{Press: row.Keys.Press, Quit: app.QuitKey},
		button:   row,
		notifier: env.Notifier(),
		log:      env.Log(),
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
		m.button, cmd = m.button.Update(msg)
		return m, cmd
	case widget.Event:
		if msg.Kind == widget.ButtonPressed {
			m.log.Debug("button pressed", "id", msg.ID)
			cmd := m.notifier.Notify(Clicked)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		"Click the button below!",
		m.button.View(true),
	)
	return m.frame.Render(body, m.notifier.View(), m.keys)
}
