// Package greet is the input form example: type a name, get a greeting.
package greet

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/ui"
	"github.com/Makepad-fr/termtour/internal/widget"
)

const (
	InputID  = "name_input"
	SubmitID = "submit_btn"

	Prompt = "Please enter your name first!"
)

// Greeting formats the output label. The name is used as typed.
func Greeting(name string) string {
	if name == "" {
		return Prompt
	}
	return fmt.Sprintf("Hello, %s! 👋", name)
}

type keyMap struct {
	Next, Submit, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Next, k.Submit, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type Model struct {
	frame  app.Frame
	keys   keyMap
	focus  widget.FocusRing
	input  textinput.Model
	submit widget.Button
	output string
	log    *log.Logger
}

var outputStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.Success).MarginTop(1)

func New(env app.Env) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "Type your name here..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return Model{
		frame:  app.NewFrame("InputApp", ""),
		focus:  widget.NewFocusRing(InputID, SubmitID),
		input:  ti,
		submit: widget.Button{ID: SubmitID, Label: "Submit", Variant: widget.Primary},
		log:    env.Log(),
		keys: keyMap{
			Next:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
			Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
			Quit:   app.ForceQuitKey,
		},
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) setFocus(id string) {
	m.focus.Set(id)
	if id == InputID {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame.Resize(msg)
		return m, nil
	case widget.Event:
		if (msg.Kind == widget.ButtonPressed && msg.ID == SubmitID) ||
			(msg.Kind == widget.InputSubmitted && msg.ID == InputID) {
			m.output = Greeting(m.input.Value())
			m.log.Debug("greet", "name", m.input.Value())
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.focus.Next()
			m.setFocus(m.focus.Current())
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			if m.focus.Is(InputID) {
				return m, widget.Submit(InputID, m.input.Value())
			}
			return m, m.submit.Press()
		}
		if !m.focus.Is(InputID) {
			if key.Matches(msg, app.QuitKey) {
				return m, tea.Quit
			}
			if msg.String() == " " {
				return m, m.submit.Press()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		"Enter your name:",
		ui.BoxStyle.Render(m.input.View()),
		m.submit.View(m.focus.Is(SubmitID)),
		outputStyle.Render(m.output),
	)
	return m.frame.Render(body, "", m.keys)
}
