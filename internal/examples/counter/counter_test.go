package counter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/widget"
)

func TestCounter_IncrementDecrementRoundTrip(t *testing.T) {
	for _, start := range []int{0, 5, -3} {
		c := Counter{value: start}
		for _, n := range []int{0, 1, 7, 100} {
			for i := 0; i < n; i++ {
				c.Increment()
			}
			for i := 0; i < n; i++ {
				c.Decrement()
			}
			if c.Value() != start {
				t.Errorf("start %d, n %d: value = %d", start, n, c.Value())
			}
		}
	}
}

func TestCounter_ResetAlwaysZero(t *testing.T) {
	for _, v := range []int{0, 1, -1, 42, -999} {
		c := Counter{value: v}
		c.Reset()
		if c.Value() != 0 {
			t.Errorf("Reset from %d = %d", v, c.Value())
		}
	}
}

func TestCounter_Apply(t *testing.T) {
	tests := []struct {
		id    string
		want  int
		known bool
	}{
		{IncID, 3, true},
		{DecID, 1, true},
		{ResetID, 0, true},
		{"btn_nope", 2, false},
	}
	for _, tt := range tests {
		c := Counter{value: 2}
		if known := c.Apply(tt.id); known != tt.known {
			t.Errorf("Apply(%q) known = %v", tt.id, known)
		}
		if c.Value() != tt.want {
			t.Errorf("Apply(%q) value = %d, want %d", tt.id, c.Value(), tt.want)
		}
	}
}

func TestCounter_Label(t *testing.T) {
	c := Counter{value: -2}
	if got := c.Label(); got != "Count: -2" {
		t.Errorf("Label() = %q", got)
	}
}

func press(t *testing.T, m tea.Model, k tea.KeyMsg) tea.Model {
	t.Helper()
	m, cmd := m.Update(k)
	if cmd == nil {
		t.Fatalf("key %q produced no command", k.String())
	}
	ev, ok := cmd().(widget.Event)
	if !ok {
		t.Fatalf("key %q produced %T", k.String(), cmd())
	}
	m, _ = m.Update(ev)
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_ButtonsUpdateDisplay(t *testing.T) {
	m := New(app.Env{})
	if d := m.(Model).display; d != "Count: 0" {
		t.Fatalf("initial display = %q", d)
	}

	// focused button is Increment
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if d := m.(Model).display; d != "Count: 2" {
		t.Fatalf("after two increments display = %q", d)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if d := m.(Model).display; d != "Count: 1" {
		t.Fatalf("after decrement display = %q", d)
	}

	m = press(t, m, runes("r"))
	if d := m.(Model).display; d != "Count: 0" {
		t.Fatalf("after reset display = %q", d)
	}
	if !strings.Contains(m.View(), "Count: 0") {
		t.Error("view out of sync with display")
	}
}

func TestModel_Shortcuts(t *testing.T) {
	m := New(app.Env{})
	m = press(t, m, runes("+"))
	m = press(t, m, runes("-"))
	m = press(t, m, runes("-"))
	if v := m.(Model).counter.Value(); v != -1 {
		t.Errorf("value = %d, want -1", v)
	}
}

func TestModel_UnknownButtonStillRefreshes(t *testing.T) {
	m := New(app.Env{})
	m, _ = m.Update(widget.Event{Kind: widget.ButtonPressed, ID: "mystery"})
	if d := m.(Model).display; d != "Count: 0" {
		t.Errorf("display = %q", d)
	}
}
