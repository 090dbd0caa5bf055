// Package hello is the smallest possible example: one static line.
package hello

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/termtour/internal/app"
)

const Greeting = "Hello, termtour World!"

type Model struct{}

func New(app.Env) tea.Model { return Model{} }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, app.QuitKey) {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string { return Greeting }
