// Package todo is the todo list example: add, toggle, delete and clear
// tasks held in a model.TaskList, with live stats.
package todo

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/model"
	"github.com/Makepad-fr/termtour/internal/ui"
	"github.com/Makepad-fr/termtour/internal/widget"
)

const (
	InputID = "task-input"
	AddID   = "add-button"
	ListID  = "todo-list"

	checkPrefix  = "check"
	deletePrefix = "del"

	containerWidth = 70
)

// Intro and Outro frame the program when launched from the CLI.
var (
	Intro = []string{
		"📝 Starting Your Todo List App!",
		"",
		"✨ Tips:",
		"  - Type a task and press Enter",
		"  - Press space on a task to check it off",
		"  - Press d to delete the selected task",
		"  - Press 'a' to quickly add a new task",
		"  - Press 'c' to clear completed tasks",
		"  - Press 'q' to quit",
	}
	Outro = "👋 Thanks for using the Todo List app!"
)

type keyMap struct {
	Focus  key.Binding
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Clear  key.Binding
	Leave  key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Focus:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		Quit:   app.QuitKey,
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Add, k.Clear, k.Toggle, k.Delete, k.Focus}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp(), {k.Leave}} }

type Model struct {
	frame  app.Frame
	keys   keyMap
	tasks  *model.TaskList
	focus  widget.FocusRing
	input  textinput.Model
	addBtn widget.Button
	list   list.Model
	stats  model.Stats
	log    *log.Logger
}

var (
	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ui.Primary).
			Width(containerWidth)
	titleStyle = lipgloss.NewStyle().
			Background(ui.Primary).
			Foreground(ui.Text).
			Bold(true).
			Padding(1, 2).
			Width(containerWidth).
			Align(lipgloss.Center)
	inputSectionStyle = lipgloss.NewStyle().
				Padding(1, 2).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(ui.Accent)
	listStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle = lipgloss.NewStyle().
			Background(ui.PrimaryDark).
			Foreground(ui.Text).
			Padding(0, 2).
			Width(containerWidth).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ui.Accent)
)

func New(env app.Env) tea.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What do you need to do?"
	ti.CharLimit = 200
	ti.Width = containerWidth - 24

	l := list.New(nil, rowDelegate{}, containerWidth-4, listHeight(app.DefaultHeight))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("task", "tasks")
	l.DisableQuitKeybindings()
	l.Styles.NoItems = ui.MutedStyle

	m := Model{
		frame:  app.NewFrame("TodoApp", ""),
		keys:   defaultKeys(),
		tasks:  model.NewTaskList(),
		focus:  widget.NewFocusRing(InputID, AddID, ListID),
		input:  ti,
		addBtn: widget.Button{ID: AddID, Label: "➕ Add", Variant: widget.Success, Width: 10},
		list:   l,
		log:    env.Log(),
	}
	m.setFocus(InputID)
	m.refresh()
	return m
}

// listHeight leaves room for chrome, title, input and stats sections.
func listHeight(screen int) int {
	return max(screen-19, 3)
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) setFocus(id string) {
	m.focus.Set(id)
	if id == InputID {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.list.SetDelegate(rowDelegate{active: id == ListID})
}

// refresh rebuilds the rows from the task list and recomputes stats.
func (m *Model) refresh() tea.Cmd {
	cmd := m.list.SetItems(rowsOf(m.tasks.Tasks()))
	if n := len(m.list.Items()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.stats = m.tasks.Stats()
	return cmd
}

func (m *Model) addTask() tea.Cmd {
	t, ok := m.tasks.Add(m.input.Value())
	if !ok {
		return nil
	}
	m.log.Debug("task added", "id", t.ID, "text", t.Text)
	m.input.SetValue("")
	m.setFocus(InputID)
	return m.refresh()
}

func (m *Model) deleteTask(id int) tea.Cmd {
	if !m.tasks.Delete(id) {
		return nil
	}
	m.log.Debug("task deleted", "id", id)
	return m.refresh()
}

func (m *Model) setCompleted(id int, completed bool) tea.Cmd {
	if !m.tasks.SetCompleted(id, completed) {
		return nil
	}
	m.log.Debug("task toggled", "id", id, "completed", completed)
	return m.refresh()
}

func (m *Model) clearCompleted() tea.Cmd {
	n := m.tasks.ClearCompleted()
	m.log.Debug("cleared completed", "removed", n, "total", m.tasks.Len())
	return m.refresh()
}

func (m Model) selected() (row, bool) {
	r, ok := m.list.SelectedItem().(row)
	return r, ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame.Resize(msg)
		m.list.SetSize(containerWidth-4, listHeight(msg.Height))
		return m, nil
	case widget.Event:
		cmd := m.handleEvent(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus.Is(InputID) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleEvent(ev widget.Event) tea.Cmd {
	switch ev.Kind {
	case widget.ButtonPressed:
		if ev.ID == AddID {
			return m.addTask()
		}
		if id, ok := widget.ParseIndexedID(ev.ID, deletePrefix); ok {
			return m.deleteTask(id)
		}
	case widget.InputSubmitted:
		if ev.ID == InputID {
			return m.addTask()
		}
	case widget.CheckboxChanged:
		if id, ok := widget.ParseIndexedID(ev.ID, checkPrefix); ok {
			return m.setCompleted(id, ev.Checked)
		}
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, app.ForceQuitKey) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Focus) {
		if msg.String() == "shift+tab" {
			m.focus.Prev()
		} else {
			m.focus.Next()
		}
		m.setFocus(m.focus.Current())
		return m, nil
	}

	if m.focus.Is(InputID) {
		switch msg.String() {
		case "enter":
			return m, widget.Submit(InputID, m.input.Value())
		case "esc":
			m.setFocus(ListID)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// bindings below only fire while the input does not have focus
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.setFocus(InputID)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Clear):
		cmd := m.clearCompleted()
		return m, cmd
	}

	if m.focus.Is(AddID) {
		if msg.String() == "enter" || msg.String() == " " {
			return m, m.addBtn.Press()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.selected(); ok {
			_, cmd := r.checkbox().Toggle()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selected(); ok {
			return m, r.deleteButton().Press()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	title := titleStyle.Render("📝 My Todo List")

	inputBox := ui.BoxStyle.Width(containerWidth - 20).Render(m.input.View())
	inputSection := inputSectionStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		inputBox, " ", m.addBtn.View(m.focus.Is(AddID)),
	))

	tasks := listStyle.Render(m.list.View())

	bar := ui.ProgressBar(m.stats.Completed, m.stats.Total, 16)
	stats := statsStyle.Render(m.stats.String() + "  " + bar)

	container := containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, inputSection, tasks, stats,
	))
	body := lipgloss.PlaceHorizontal(m.frame.Width, lipgloss.Center, container)
	return m.frame.Render(body, "", m.keys)
}
