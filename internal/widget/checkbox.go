package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/termtour/internal/ui"
)

type Checkbox struct {
	ID      string
	Label   string
	Checked bool
}

// Toggle flips the box and emits CheckboxChanged with the new value.
func (c Checkbox) Toggle() (Checkbox, tea.Cmd) {
	c.Checked = !c.Checked
	return c, emit(Event{Kind: CheckboxChanged, ID: c.ID, Checked: c.Checked})
}

func (c Checkbox) View() string {
	if c.Checked {
		return ui.SuccessStyle.Render(ui.BoxChecked) + " " + ui.DoneStyle.Render(c.Label)
	}
	return ui.MutedStyle.Render(ui.BoxUnchecked) + " " + c.Label
}
