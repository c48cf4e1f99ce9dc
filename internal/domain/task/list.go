// Package task holds household chores and to-dos.
package task

import (
	"errors"
	"strings"
	"time"

	"github.com/hearthhq/hearth/internal/domain/shared"
)

// DateLayout is the due date format
const DateLayout = "2006-01-02"

var (
	ErrTitleRequired   = errors.New("task title is required")
	ErrInvalidCategory = errors.New("unknown task category")
	ErrInvalidDueDate  = errors.New("due date must be YYYY-MM-DD")
	ErrTaskNotFound    = errors.New("task not found")
)

// Category groups tasks
type Category string

const (
	CategoryHome     Category = "Home"
	CategoryWork     Category = "Work"
	CategorySchool   Category = "School"
	CategoryPersonal Category = "Personal"
)

// Categories lists task categories in display order
var Categories = []Category{CategoryHome, CategoryWork, CategorySchool, CategoryPersonal}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Task is one to-do
type Task struct {
	ID         int
	Title      string
	Category   Category
	AssignedTo int
	DueDate    string
	Completed  bool
}

// Overdue reports whether the task is open and due before today
func (t Task) Overdue(today time.Time) bool {
	if t.Completed || t.DueDate == "" {
		return false
	}
	return t.DueDate < today.Format(DateLayout)
}

// List is the task list aggregate
type List struct {
	tasks []Task
}

// NewList wraps existing tasks, keeping their order
func NewList(tasks ...Task) *List {
	l := &List{tasks: make([]Task, len(tasks))}
	copy(l.tasks, tasks)
	return l
}

// Add appends a task. The title is trimmed and required, the category
// defaults to Home and the due date to today.
func (l *List) Add(t Task, today time.Time) (Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return Task{}, ErrTitleRequired
	}
	if t.Category == "" {
		t.Category = CategoryHome
	}
	if !t.Category.IsValid() {
		return Task{}, ErrInvalidCategory
	}
	if t.DueDate == "" {
		t.DueDate = today.Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, t.DueDate); err != nil {
		return Task{}, ErrInvalidDueDate
	}

	ids := make([]int, len(l.tasks))
	for i, existing := range l.tasks {
		ids[i] = existing.ID
	}
	t.ID = shared.NextID(ids)
	t.Completed = false
	l.tasks = append(l.tasks, t)
	return t, nil
}

// Toggle flips the completed flag of task id
func (l *List) Toggle(id int) (Task, error) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			return l.tasks[i], nil
		}
	}
	return Task{}, ErrTaskNotFound
}

// Delete removes task id
func (l *List) Delete(id int) error {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// Filter returns tasks of category; "" and "All" return every task
func (l *List) Filter(category string) []Task {
	out := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if category == "" || category == "All" || string(t.Category) == category {
			out = append(out, t)
		}
	}
	return out
}

// Tasks returns a copy of every task
func (l *List) Tasks() []Task {
	return l.Filter("")
}

// Status is the completed/pending/overdue breakdown
type Status struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// Status counts tasks by state; overdue tasks are not counted as pending
func (l *List) Status(today time.Time) Status {
	var s Status
	for _, t := range l.tasks {
		switch {
		case t.Completed:
			s.Completed++
		case t.Overdue(today):
			s.Overdue++
		default:
			s.Pending++
		}
	}
	return s
}
