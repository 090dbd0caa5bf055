package model

import "testing"

func assertStats(t *testing.T, got, want Stats) {
	t.Helper()
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

func TestTaskList_AddAssignsSequentialIDs(t *testing.T) {
	l := NewTaskList()
	a, ok := l.Add("Buy milk")
	if !ok || a.ID != 1 {
		t.Fatalf("first add = %+v ok=%v, want id 1", a, ok)
	}
	b, _ := l.Add("  Walk dog  ")
	if b.ID != 2 || b.Text != "Walk dog" {
		t.Errorf("second add = %+v, want id 2 with trimmed text", b)
	}
	assertStats(t, l.Stats(), Stats{Total: 2, Remaining: 2})
}

func TestTaskList_AddRejectsBlank(t *testing.T) {
	l := NewTaskList()
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, ok := l.Add(in); ok {
			t.Errorf("Add(%q) accepted", in)
		}
	}
	if l.Len() != 0 {
		t.Fatalf("len = %d, want 0", l.Len())
	}
	// rejected input must not burn an id
	task, _ := l.Add("real")
	if task.ID != 1 {
		t.Errorf("id = %d, want 1", task.ID)
	}
}

func TestTaskList_IDsNeverReused(t *testing.T) {
	l := NewTaskList()
	l.Add("one")
	two, _ := l.Add("two")
	l.Delete(two.ID)
	three, _ := l.Add("three")
	if three.ID != 3 {
		t.Errorf("id after delete = %d, want 3", three.ID)
	}
}

func TestTaskList_AddUpdatesStats(t *testing.T) {
	l := NewTaskList()
	l.Add("done already")
	l.Toggle(1)
	before := l.Stats()

	l.Add("Buy milk")
	after := l.Stats()
	assertStats(t, after, Stats{
		Total:     before.Total + 1,
		Completed: before.Completed,
		Remaining: before.Remaining + 1,
	})
}

func TestTaskList_Toggle(t *testing.T) {
	l := NewTaskList()
	task, _ := l.Add("Buy milk")

	done, ok := l.Toggle(task.ID)
	if !ok || !done {
		t.Fatalf("Toggle = (%v, %v), want (true, true)", done, ok)
	}
	assertStats(t, l.Stats(), Stats{Total: 1, Completed: 1})

	done, _ = l.Toggle(task.ID)
	if done {
		t.Error("second toggle should clear the flag")
	}
	assertStats(t, l.Stats(), Stats{Total: 1, Remaining: 1})

	if _, ok := l.Toggle(99); ok {
		t.Error("toggle of unknown id reported ok")
	}
}

func TestTaskList_SetCompleted(t *testing.T) {
	l := NewTaskList()
	l.Add("a")
	if !l.SetCompleted(1, true) {
		t.Fatal("SetCompleted(1) = false")
	}
	if got, _ := l.Get(1); !got.Completed {
		t.Error("task 1 not completed")
	}
	if l.SetCompleted(7, true) {
		t.Error("SetCompleted on unknown id reported ok")
	}
}

func TestTaskList_DeleteRemovesExactlyOne(t *testing.T) {
	l := NewTaskList()
	for _, s := range []string{"a", "b", "c"} {
		l.Add(s)
	}
	if !l.Delete(2) {
		t.Fatal("Delete(2) = false")
	}
	tasks := l.Tasks()
	if len(tasks) != 2 || tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Fatalf("tasks = %+v, want ids [1 3]", tasks)
	}
	if l.Delete(2) {
		t.Error("second Delete(2) reported ok")
	}
	// index stays valid after removal
	if got, ok := l.Get(3); !ok || got.Text != "c" {
		t.Errorf("Get(3) = %+v, %v", got, ok)
	}
}

func TestTaskList_ClearCompleted(t *testing.T) {
	l := NewTaskList()
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s)
	}
	l.Toggle(1)
	l.Toggle(3)

	n := l.ClearCompleted()
	if n != 2 {
		t.Fatalf("cleared = %d, want 2", n)
	}
	assertStats(t, l.Stats(), Stats{Total: 2, Remaining: 2})
	for _, task := range l.Tasks() {
		if task.Completed {
			t.Errorf("completed task %d survived", task.ID)
		}
	}
	if l.ClearCompleted() != 0 {
		t.Error("clearing twice removed more tasks")
	}
	if _, ok := l.Get(4); !ok {
		t.Error("task 4 lost from index")
	}
}

func TestTaskList_TasksIsACopy(t *testing.T) {
	l := NewTaskList()
	l.Add("a")
	tasks := l.Tasks()
	tasks[0].Text = "changed"
	if got, _ := l.Get(1); got.Text != "a" {
		t.Errorf("mutating copy leaked into list: %q", got.Text)
	}
}

func TestStats_String(t *testing.T) {
	got := Stats{Total: 3, Completed: 1, Remaining: 2}.String()
	want := "Total: 3 | Completed: 1 | Remaining: 2"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
