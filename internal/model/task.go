package model

import (
	"fmt"
	"strings"
)

// Task is the domain model for a todo entry.
type Task struct {
	ID        int
	Text      string
	Completed bool
}

// Stats summarizes a task list.
type Stats struct {
	Total, Completed, Remaining int
}

func (s Stats) String() string {
	return fmt.Sprintf("Total: %d | Completed: %d | Remaining: %d", s.Total, s.Completed, s.Remaining)
}

// TaskList keeps tasks in insertion order with an id index.
// IDs start at 1 and are never reused within a list's lifetime.
type TaskList struct {
	tasks  []Task
	index  map[int]int // id -> position in tasks
	nextID int
}

func NewTaskList() *TaskList {
	return &TaskList{index: map[int]int{}, nextID: 1}
}

// Add appends a task with the trimmed text. Blank text is rejected and
// does not consume an id.
func (l *TaskList) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	t := Task{ID: l.nextID, Text: text}
	l.nextID++
	l.index[t.ID] = len(l.tasks)
	l.tasks = append(l.tasks, t)
	return t, true
}

// Delete removes the task with the given id.
func (l *TaskList) Delete(id int) bool {
	pos, ok := l.index[id]
	if !ok {
		return false
	}
	l.tasks = append(l.tasks[:pos], l.tasks[pos+1:]...)
	l.reindex()
	return true
}

func (l *TaskList) SetCompleted(id int, completed bool) bool {
	pos, ok := l.index[id]
	if !ok {
		return false
	}
	l.tasks[pos].Completed = completed
	return true
}

// Toggle flips the completed flag and reports the new value.
func (l *TaskList) Toggle(id int) (completed, ok bool) {
	pos, ok := l.index[id]
	if !ok {
		return false, false
	}
	l.tasks[pos].Completed = !l.tasks[pos].Completed
	return l.tasks[pos].Completed, true
}

// ClearCompleted drops every completed task and returns how many went.
func (l *TaskList) ClearCompleted() int {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	n := len(l.tasks) - len(kept)
	l.tasks = kept
	l.reindex()
	return n
}

func (l *TaskList) Get(id int) (Task, bool) {
	pos, ok := l.index[id]
	if !ok {
		return Task{}, false
	}
	return l.tasks[pos], true
}

// Tasks returns a copy in insertion order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *TaskList) Len() int { return len(l.tasks) }

func (l *TaskList) Stats() Stats {
	var s Stats
	for _, t := range l.tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Total = len(l.tasks)
	s.Remaining = s.Total - s.Completed
	return s
}

func (l *TaskList) reindex() {
	clear(l.index)
	for i, t := range l.tasks {
		l.index[t.ID] = i
	}
}
