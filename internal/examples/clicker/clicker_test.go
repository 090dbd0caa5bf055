package clicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/widget"
)

// drive feeds msg into m and then every message its command chain yields,
// skipping timers so toasts stay visible.
func drive(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	var cmd tea.Cmd
	m, cmd = m.Update(msg)
	if cmd == nil {
		return m
	}
	if ev, ok := cmd().(widget.Event); ok {
		m, _ = m.Update(ev)
	}
	return m
}

func TestPressShowsToast(t *testing.T) {
	m := New(app.Env{})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	got := m.(Model).notifier.Messages()
	if len(got) != 1 || got[0] != Clicked {
		t.Fatalf("toasts = %v, want [%q]", got, Clicked)
	}
	if !strings.Contains(m.View(), Clicked) {
		t.Error("toast missing from view")
	}
}

func TestEachPressAddsToast(t *testing.T) {
	m := New(app.Env{})
	for i := 0; i < 3; i++ {
		m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	if n := len(m.(Model).notifier.Messages()); n != 3 {
		t.Errorf("toasts = %d, want 3", n)
	}
}

func TestViewShowsPrompt(t *testing.T) {
	v := New(app.Env{}).View()
	for _, want := range []string{"Click the button below!", "Click Me!", "ButtonClickApp"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
