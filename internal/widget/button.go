package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/termtour/internal/ui"
)

type Variant int

const (
	Default Variant = iota
	Primary
	Success
	Warning
	Error
)

func (v Variant) color() lipgloss.Color {
	switch v {
	case Primary:
		return ui.Primary
	case Success:
		return ui.Success
	case Warning:
		return ui.Warning
	case Error:
		return ui.Error
	}
	return ui.PanelBg
}

type Button struct {
	ID      string
	Label   string
	Variant Variant
	Width   int // 0 sizes to the label
}

// Press emits ButtonPressed for b.
func (b Button) Press() tea.Cmd {
	return emit(Event{Kind: ButtonPressed, ID: b.ID})
}

func (b Button) View(focused bool) string {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Border).
		Background(b.Variant.color()).
		Foreground(ui.Text).
		Padding(0, 1).
		Align(lipgloss.Center)
	if b.Width > 0 {
		s = s.Width(b.Width)
	}
	if focused {
		s = s.Bold(true).BorderForeground(ui.Accent).Reverse(true)
	}
	return s.Render(b.Label)
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// RowKeyMap moves focus within a ButtonRow and presses the focused button.
type RowKeyMap struct {
	Next, Prev, Press key.Binding
}

func rowKeys(o Orientation) RowKeyMap {
	next, prev := []string{"tab", "right"}, []string{"shift+tab", "left"}
	if o == Vertical {
		next, prev = []string{"tab", "down"}, []string{"shift+tab", "up"}
	}
	return RowKeyMap{
		Next:  key.NewBinding(key.WithKeys(next...), key.WithHelp("tab", "next")),
		Prev:  key.NewBinding(key.WithKeys(prev...), key.WithHelp("shift+tab", "prev")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	}
}

// ButtonRow is a group of buttons sharing one focus ring.
type ButtonRow struct {
	Buttons     []Button
	Orientation Orientation
	Gap         int
	Keys        RowKeyMap
	focus       FocusRing
}

func NewButtonRow(o Orientation, buttons ...Button) ButtonRow {
	ids := make([]string, len(buttons))
	for i, b := range buttons {
		ids[i] = b.ID
	}
	return ButtonRow{
		Buttons:     buttons,
		Orientation: o,
		Gap:         1,
		Keys:        rowKeys(o),
		focus:       NewFocusRing(ids...),
	}
}

// Focused returns the focused button; ok is false for an empty row.
func (r ButtonRow) Focused() (Button, bool) {
	id := r.focus.Current()
	for _, b := range r.Buttons {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}

func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch {
	case key.Matches(km, r.Keys.Next):
		r.focus.Next()
	case key.Matches(km, r.Keys.Prev):
		r.focus.Prev()
	case key.Matches(km, r.Keys.Press):
		if b, ok := r.Focused(); ok {
			return r, b.Press()
		}
	}
	return r, nil
}

// View renders the row; active=false draws every button unfocused.
func (r ButtonRow) View(active bool) string {
	views := make([]string, 0, len(r.Buttons))
	for i, b := range r.Buttons {
		v := b.View(active && r.focus.Is(b.ID))
		if i > 0 && r.Orientation == Horizontal && r.Gap > 0 {
			v = lipgloss.NewStyle().MarginLeft(r.Gap).Render(v)
		}
		views = append(views, v)
	}
	if r.Orientation == Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
