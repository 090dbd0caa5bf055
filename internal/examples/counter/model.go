package counter

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/ui"
	"github.com/Makepad-fr/termtour/internal/widget"
)

type keyMap struct {
	Inc, Dec, Reset, Move, Press, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inc, k.Dec, k.Reset, k.Press, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp(), {k.Move}} }

type Model struct {
	frame   app.Frame
	keys    keyMap
	buttons widget.ButtonRow
	counter Counter
	display string
	log     *log.Logger
}

var (
	titleStyle   = ui.TitleStyle.Foreground(ui.Accent).MarginBottom(1)
	displayStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.Success).MarginBottom(1)
)

func New(env app.Env) tea.Model {
	buttons := widget.NewButtonRow(widget.Vertical,
		widget.Button{ID: IncID, Label: "➕ Increment", Width: 16},
		widget.Button{ID: DecID, Label: "➖ Decrement", Width: 16},
		widget.Button{ID: ResetID, Label: "Reset", Width: 16},
	)
	m := Model{
		frame:   app.NewFrame("CounterApp", ""),
		buttons: buttons,
		log:     env.Log(),
		keys: keyMap{
			Inc:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
			Dec:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "decrement")),
			Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
			Move:  buttons.Keys.Next,
			Press: buttons.Keys.Press,
			Quit:  app.QuitKey,
		},
	}
	m.updateDisplay()
	return m
}

func (m *Model) updateDisplay() { m.display = m.counter.Label() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame.Resize(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Inc):
			return m, widget.Button{ID: IncID}.Press()
		case key.Matches(msg, m.keys.Dec):
			return m, widget.Button{ID: DecID}.Press()
		case key.Matches(msg, m.keys.Reset):
			return m, widget.Button{ID: ResetID}.Press()
		}
		var cmd tea.Cmd
		m.buttons, cmd = m.buttons.Update(msg)
		return m, cmd
	case widget.Event:
		if msg.Kind != widget.ButtonPressed {
			return m, nil
		}
		m.counter.Apply(msg.ID)
		m.updateDisplay()
		m.log.Debug("counter", "button", msg.ID, "value", m.counter.Value())
	}
	return m, nil
}

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Counter Demo"),
		displayStyle.Render(m.display),
		m.buttons.View(true),
	)
	return m.frame.Render(body, "", m.keys)
}
