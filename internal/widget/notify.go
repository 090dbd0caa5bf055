package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/termtour/internal/ui"
)

const DefaultNotifyTimeout = 5 * time.Second

type toast struct {
	id   int
	text string
}

type toastExpiredMsg struct{ id int }

// Notifier shows short-lived toasts, newest last.
type Notifier struct {
	timeout time.Duration
	seq     int
	toasts  []toast
}

func NewNotifier(timeout time.Duration) Notifier {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	return Notifier{timeout: timeout}
}

// Notify queues text and returns the command that later expires it.
func (n *Notifier) Notify(text string) tea.Cmd {
	n.seq++
	id := n.seq
	n.toasts = append(n.toasts, toast{id: id, text: text})
	return tea.Tick(n.timeout, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

// Update drops expired toasts and reports whether msg was consumed.
func (n *Notifier) Update(msg tea.Msg) bool {
	exp, ok := msg.(toastExpiredMsg)
	if !ok {
		return false
	}
	for i, t := range n.toasts {
		if t.id == exp.id {
			n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
			break
		}
	}
	return true
}

func (n Notifier) Messages() []string {
	out := make([]string, len(n.toasts))
	for i, t := range n.toasts {
		out[i] = t.text
	}
	return out
}

var toastStyle = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder(), false, false, false, true).
	BorderForeground(ui.Success).
	Background(ui.PanelBg).
	Foreground(ui.Text).
	Padding(0, 1)

func (n Notifier) View() string {
	if len(n.toasts) == 0 {
		return ""
	}
	views := make([]string, len(n.toasts))
	for i, t := range n.toasts {
		views[i] = toastStyle.Render(t.text)
	}
	return lipgloss.JoinVertical(lipgloss.Right, views...)
}
