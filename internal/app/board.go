package app

import (
	"fmt"

	"github.com/evanschultz/kanlite/internal/domain"
)

// Board owns the ordered task list and the creation-dialog flag for one session.
type Board struct {
	tasks         []domain.Task
	dialogVisible bool
}

// NewBoard constructs a board from seed tasks, rejecting invalid or duplicate records.
func NewBoard(seed []domain.Task) (*Board, error) {
	tasks := make([]domain.Task, 0, len(seed))
	seen := map[int]struct{}{}
	for idx, raw := range seed {
		task, err := domain.NewTask(domain.TaskInput(raw))
		if err != nil {
			return nil, fmt.Errorf("seed task %d: %w", idx, err)
		}
		if _, ok := seen[task.ID]; ok {
			return nil, fmt.Errorf("seed task %d: %w: %d", idx, domain.ErrDuplicateID, task.ID)
		}
		seen[task.ID] = struct{}{}
		tasks = append(tasks, task)
	}
	return &Board{tasks: tasks}, nil
}

// Tasks returns a snapshot of the task list in board order.
func (b *Board) Tasks() []domain.Task {
	return append([]domain.Task(nil), b.tasks...)
}

// Len returns the number of tasks on the board.
func (b *Board) Len() int {
	return len(b.tasks)
}

// TaskByID returns the task with the given id.
func (b *Board) TaskByID(taskID int) (domain.Task, bool) {
	idx := b.indexOf(taskID)
	if idx < 0 {
		return domain.Task{}, false
	}
	return b.tasks[idx], true
}

// MoveTask replaces the matching task with a copy carrying status.
// An unknown id or status is ignored and reported through the bool result.
func (b *Board) MoveTask(taskID int, status domain.Status) (domain.Task, bool) {
	idx := b.indexOf(taskID)
	if idx < 0 || !status.Valid() {
		return domain.Task{}, false
	}
	b.tasks[idx] = b.tasks[idx].WithStatus(status)
	return b.tasks[idx], true
}

// CreateTask appends a new TODO task with the next free id.
// Callers guarantee a non-blank title.
func (b *Board) CreateTask(title string, category domain.Category) domain.Task {
	task := domain.Task{
		ID:       b.nextID(),
		Title:    title,
		Category: category,
		Status:   domain.StatusTodo,
	}
	b.tasks = append(b.tasks, task)
	return task
}

func (b *Board) SetDialogVisible(visible bool) {
	b.dialogVisible = visible
}

func (b *Board) DialogVisible() bool {
	return b.dialogVisible
}

func (b *Board) nextID() int {
	maxID := 0
	for _, task := range b.tasks {
		if task.ID > maxID {
			maxID = task.ID
		}
	}
	return maxID + 1
}

func (b *Board) indexOf(taskID int) int {
	for idx, task := range b.tasks {
		if task.ID == taskID {
			return idx
		}
	}
	return -1
}
