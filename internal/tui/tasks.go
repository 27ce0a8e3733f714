package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/okan/focusly/internal/store"
)

type tasksModel struct {
	store  *store.Store
	userID int64
	width  int
	height int

	tasks  []store.Task
	cursor int

	formActive bool
	form       *huh.Form
	newTitle   *string
}

func newTasksModel(s *store.Store, userID int64) tasksModel {
	title := ""
	return tasksModel{
		store:    s,
		userID:   userID,
		newTitle: &title,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, _ := t.store.ListTasks(store.TaskFilter{UserID: t.userID, Limit: 50})
		return tasksDataMsg{tasks: tasks}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		t.tasks = msg.tasks
		if t.cursor >= len(t.tasks) {
			t.cursor = 0
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.tasks)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.New):
			return t.showForm()
		case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
			if t.cursor < len(t.tasks) {
				task := t.tasks[t.cursor]
				t.store.SetTaskCompleted(t.userID, task.ID, !task.Completed)
				return t, t.refresh()
			}
		}
	}
	return t, nil
}

func (t tasksModel) showForm() (tasksModel, tea.Cmd) {
	*t.newTitle = ""
	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task title").Value(t.newTitle),
		).Title("New Task"),
	).WithShowHelp(true).WithShowErrors(true)
	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		title := strings.TrimSpace(*t.newTitle)
		if title != "" {
			t.store.CreateTask(t.userID, title, nil, nil)
		}
		return t, t.refresh()
	}

	return t, cmd
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Tasks"), "", t.form.View()),
		)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Tasks"))
	rows = append(rows, "")

	if len(t.tasks) == 0 {
		rows = append(rows, mutedStyle.Render("No tasks yet. Press n to add one."))
	}

	for i, task := range t.tasks {
		mark := mutedStyle.Render("○")
		if task.Completed {
			mark = successStyle.Render("✓")
		}
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, mark, task.Title)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  c/enter: toggle complete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
