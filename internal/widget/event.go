package widget

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind discriminates widget events.
type Kind int

const (
	ButtonPressed Kind = iota + 1
	CheckboxChanged
	InputSubmitted
)

func (k Kind) String() string {
	switch k {
	case ButtonPressed:
		return "button.pressed"
	case CheckboxChanged:
		return "checkbox.changed"
	case InputSubmitted:
		return "input.submitted"
	}
	return "unknown"
}

// Event is emitted by interactive widgets. ID names the originating widget.
// Value carries input text; Checked carries the checkbox state.
type Event struct {
	Kind    Kind
	ID      string
	Value   string
	Checked bool
}

func emit(e Event) tea.Cmd {
	return func() tea.Msg { return e }
}

// Submit reports that the input with the given id was submitted.
func Submit(id, value string) tea.Cmd {
	return emit(Event{Kind: InputSubmitted, ID: id, Value: value})
}

// IndexedID builds ids such as "del_3".
func IndexedID(prefix string, n int) string {
	return prefix + "_" + strconv.Itoa(n)
}

// ParseIndexedID extracts n from an id built by IndexedID.
func ParseIndexedID(id, prefix string) (int, bool) {
	rest, found := strings.CutPrefix(id, prefix+"_")
	if !found || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
