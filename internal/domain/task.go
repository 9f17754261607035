package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in left-to-right column order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	return s.index() >= 0
}

func (s Status) index() int {
	for idx, status := range Statuses {
		if status == s {
			return idx
		}
	}
	return -1
}

// Next returns the status one column to the right.
func (s Status) Next() (Status, bool) {
	idx := s.index()
	if idx < 0 || idx+1 >= len(Statuses) {
		return "", false
	}
	return Statuses[idx+1], true
}

// Prev returns the status one column to the left.
func (s Status) Prev() (Status, bool) {
	idx := s.index()
	if idx <= 0 {
		return "", false
	}
	return Statuses[idx-1], true
}

// Moves returns the adjacent targets a task in s may move to, backward first.
func (s Status) Moves() []Status {
	out := make([]Status, 0, 2)
	if prev, ok := s.Prev(); ok {
		out = append(out, prev)
	}
	if next, ok := s.Next(); ok {
		out = append(out, next)
	}
	return out
}

// CanMoveTo reports whether target is adjacent to s.
func (s Status) CanMoveTo(target Status) bool {
	for _, candidate := range s.Moves() {
		if candidate == target {
			return true
		}
	}
	return false
}

// ParseStatus normalizes user/config input into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

type Task struct {
	ID       int
	Title    string
	Category Category
	Status   Status
}

type TaskInput struct {
	ID       int
	Title    string
	Category Category
	Status   Status
}

func NewTask(in TaskInput) (Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.ID <= 0 {
		return Task{}, ErrInvalidID
	}
	if in.Title == "" {
		return Task{}, ErrInvalidTitle
	}
	if in.Status == "" {
		in.Status = StatusTodo
	}
	if !in.Status.Valid() {
		return Task{}, ErrInvalidStatus
	}
	if !in.Category.Valid() {
		return Task{}, ErrInvalidCategory
	}
	return Task{
		ID:       in.ID,
		Title:    in.Title,
		Category: in.Category,
		Status:   in.Status,
	}, nil
}

// WithStatus returns a copy of t moved to status.
func (t Task) WithStatus(status Status) Task {
	t.Status = status
	return t
}
