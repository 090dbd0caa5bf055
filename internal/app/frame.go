package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/termtour/internal/widget"
)

// Sizes used until the first WindowSizeMsg arrives.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// QuitKey is the binding every example quits on.
var QuitKey = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

// ForceQuitKey still quits while a text field has focus.
var ForceQuitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

// Frame draws the header/footer chrome around an example body.
type Frame struct {
	Title    string
	Subtitle string
	Width    int
	Height   int
	help     help.Model
}

func NewFrame(title, subtitle string) Frame {
	return Frame{
		Title:    title,
		Subtitle: subtitle,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		help:     help.New(),
	}
}

func (f *Frame) Resize(msg tea.WindowSizeMsg) {
	f.Width, f.Height = msg.Width, msg.Height
}

func (f Frame) Render(body, toasts string, km help.KeyMap) string {
	return widget.Screen(f.Width, f.Height,
		widget.Header(f.Title, f.Subtitle, f.Width),
		body,
		toasts,
		widget.Footer(f.help, km, f.Width),
	)
}
