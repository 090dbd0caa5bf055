package greet

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/widget"
)

func TestGreeting(t *testing.T) {
	tests := []struct{ name, want string }{
		{"", Prompt},
		{"Ann", "Hello, Ann! 👋"},
		{" ", "Hello,  ! 👋"},
	}
	for _, tt := range tests {
		if got := Greeting(tt.name); got != tt.want {
			t.Errorf("Greeting(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// newModel uses a static cursor so no command waits on a blink tick.
func newModel() tea.Model {
	m := New(app.Env{}).(Model)
	m.input.Cursor.SetMode(cursor.CursorStatic)
	return m
}

// send applies msg and feeds back any widget.Event its command returns.
func send(m tea.Model, msg tea.Msg) tea.Model {
	m, cmd := m.Update(msg)
	if cmd != nil {
		if ev, ok := cmd().(widget.Event); ok {
			m, _ = m.Update(ev)
		}
	}
	return m
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_SubmitEmptyShowsPrompt(t *testing.T) {
	m := newModel()
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(Model).output; got != Prompt {
		t.Errorf("output = %q, want %q", got, Prompt)
	}
}

func TestModel_EnterInInputGreets(t *testing.T) {
	m := newModel()
	m = send(m, typed("Ann"))
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(Model).output; got != "Hello, Ann! 👋" {
		t.Errorf("output = %q", got)
	}
	if !strings.Contains(m.View(), "Hello, Ann!") {
		t.Error("greeting missing from view")
	}
}

func TestModel_SubmitButtonGreets(t *testing.T) {
	m := newModel()
	m = send(m, typed("Ann"))
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.(Model).focus.Is(SubmitID) {
		t.Fatalf("focus = %q", m.(Model).focus.Current())
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(Model).output; got != "Hello, Ann! 👋" {
		t.Errorf("output = %q", got)
	}
}

func TestModel_QTypesWhileInputFocused(t *testing.T) {
	m := newModel()
	m, cmd := m.Update(typed("q"))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q quit while typing")
		}
	}
	if v := m.(Model).input.Value(); v != "q" {
		t.Errorf("input = %q, want q", v)
	}
}

func TestModel_QQuitsFromButton(t *testing.T) {
	m := newModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(typed("q"))
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("got %T, want QuitMsg", cmd())
	}
}
