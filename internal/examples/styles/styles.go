// Package styles is the styled dashboard: a hero banner, feature cards,
// variant buttons and an output line fed from a fixed response table.
package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/ui"
	"github.com/Makepad-fr/termtour/internal/widget"
)

// DefaultResponse answers any button missing from the table.
const DefaultResponse = "Button clicked!"

var responses = map[string]string{
	"btn1": "Primary action executed! ✓",
	"btn2": "Success! Operation completed. ✓",
	"btn3": "Warning: Are you sure? ⚠️",
	"btn4": "Error: Action cancelled! ✗",
}

func ResponseFor(id string) string {
	if r, ok := responses[id]; ok {
		return r
	}
	return DefaultResponse
}

type card struct{ title, content string }

var cards = []card{
	{"Feature 1", "Fast & Responsive"},
	{"Feature 2", "Beautiful Design"},
	{"Feature 3", "Easy to Use"},
}

var (
	heroStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ui.Primary).
			Background(ui.Accent).
			Foreground(ui.Text).
			Bold(true).
			Height(8).
			Align(lipgloss.Center, lipgloss.Center)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Accent).
			Background(ui.PanelBg).
			Padding(1, 2).
			Margin(1, 2).
			Height(6).
			Align(lipgloss.Center, lipgloss.Center)

	cardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)
	cardContentStyle = lipgloss.NewStyle().Foreground(ui.TextMuted).MarginTop(1)

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ui.Success).
			Background(ui.PanelBg).
			Foreground(ui.Success).
			Bold(true).
			Height(3).
			MarginTop(2).
			Align(lipgloss.Center, lipgloss.Center)
)

type keyMap struct {
	Move, Press, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Move, k.Press, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type Model struct {
	frame   app.Frame
	keys    keyMap
	buttons widget.ButtonRow
	output  string
	log     *log.Logger
}

func New(env app.Env) tea.Model {
	buttons := widget.NewButtonRow(widget.Horizontal,
		widget.Button{ID: "btn1", Label: "Primary", Variant: widget.Primary, Width: 16},
		widget.Button{ID: "btn2", Label: "Success", Variant: widget.Success, Width: 16},
		widget.Button{ID: "btn3", Label: "Warning", Variant: widget.Warning, Width: 16},
		widget.Button{ID: "btn4", Label: "Error", Variant: widget.Error, Width: 16},
	)
	return Model{
		frame:   app.NewFrame("StylesApp", "An app demonstrating styling"),
		buttons: buttons,
		log:     env.Log(),
		keys: keyMap{
			Move:  key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "move")),
			Press: buttons.Keys.Press,
			Quit:  app.QuitKey,
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.output = ResponseFor(msg.ID)
			m.log.Debug("styled button", "id", msg.ID, "response", m.output)
		}
	}
	return m, nil
}

func (m Model) View() string {
	w := m.frame.Width
	hero := heroStyle.Width(w - 2).Render("🎨 Textual Styling Demo")

	// three equal cards share the row; frame+margin eat 8 columns each
	cw := max(w/len(cards)-8, 12)
	views := make([]string, len(cards))
	for i, c := range cards {
		views[i] = cardStyle.Width(cw).Render(lipgloss.JoinVertical(lipgloss.Center,
			cardTitleStyle.Render(c.title),
			cardContentStyle.Render(c.content),
		))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	buttons := lipgloss.PlaceHorizontal(w, lipgloss.Center, m.buttons.View(true))
	body := lipgloss.JoinVertical(lipgloss.Left,
		hero,
		row,
		lipgloss.NewStyle().MarginTop(2).Render(buttons),
		outputStyle.Width(w-2).Render(m.output),
	)
	return m.frame.Render(body, "", m.keys)
}
