package todo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/termtour/internal/model"
	"github.com/Makepad-fr/termtour/internal/ui"
	"github.com/Makepad-fr/termtour/internal/widget"
)

// row adapts a Task to list.Item.
type row struct {
	task model.Task
}

func (r row) FilterValue() string { return r.task.Text }

func (r row) checkbox() widget.Checkbox {
	return widget.Checkbox{
		ID:      widget.IndexedID(checkPrefix, r.task.ID),
		Label:   r.task.Text,
		Checked: r.task.Completed,
	}
}

func (r row) deleteButton() widget.Button {
	return widget.Button{ID: widget.IndexedID(deletePrefix, r.task.ID), Label: "🗑", Variant: widget.Error}
}

func rowsOf(tasks []model.Task) []list.Item {
	out := make([]list.Item, len(tasks))
	for i, t := range tasks {
		out[i] = row{task: t}
	}
	return out
}

// rowDelegate draws one task per line; the cursor only shows while the
// list has focus.
type rowDelegate struct {
	active bool
}

func (d rowDelegate) Height() int                         { return 1 }
func (d rowDelegate) Spacing() int                        { return 0 }
func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	prefix := "  "
	if d.active && index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s  %s", prefix, r.checkbox().View(), ui.MutedStyle.Render(r.deleteButton().Label))
}
